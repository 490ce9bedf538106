package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sehyunpark/jindo/internal/cli/formatter"
)

func newTimetableCmd(app *App) *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:     "timetable",
		Aliases: []string{"tt"},
		Short:   "Show one week's timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			weekID, err := resolveWeek(ctx, app, user, week)
			if err != nil {
				return err
			}
			view, err := app.Schedule.Timetable(ctx, user, weekID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderTimetable(view))
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)

	return cmd
}
