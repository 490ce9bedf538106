package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sehyunpark/jindo/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth     service.AuthService
	Schedule service.ScheduleService
	Progress service.ProgressService
	Summary  service.SummaryService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the reorder TUI are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "jindo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "jindo",
		Short: "Weekly timetable and lesson progress tracker",
	}

	root.AddCommand(
		newSignupCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newWeekCmd(app),
		newTimetableCmd(app),
		newSlotCmd(app),
		newBaseCmd(app),
		newProgressCmd(app),
		newSummaryCmd(app),
		newSubjectCmd(app),
	)

	return root
}

// addWeekFlag registers the shared --week flag: 0 means "the week containing
// today, else the first week".
func addWeekFlag(flags *pflag.FlagSet, week *int) {
	flags.IntVar(week, "week", 0, "Week number (default: the current week)")
}
