package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/sehyunpark/jindo/internal/db"
	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// CreateTestUser inserts a user row directly so state documents can
// reference it. Returns the username.
func CreateTestUser(t *testing.T, database *sql.DB, username string) string {
	t.Helper()
	users := repository.NewSQLiteUserRepo(database)
	err := users.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return username
}
