package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/sehyunpark/jindo/internal/cli"
	"github.com/sehyunpark/jindo/internal/db"
	"github.com/sehyunpark/jindo/internal/repository"
	"github.com/sehyunpark/jindo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.jindo/jindo.db
	dbPath := os.Getenv("JINDO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".jindo", "jindo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	userRepo := repository.NewSQLiteUserRepo(database)
	sessionRepo := repository.NewSQLiteAuthSessionRepo(database)
	stateRepo := repository.NewSQLiteStateRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Auth:     service.NewAuthService(userRepo, sessionRepo, stateRepo),
		Schedule: service.NewScheduleService(stateRepo, uow),
		Progress: service.NewProgressService(stateRepo),
		Summary:  service.NewSummaryService(stateRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
