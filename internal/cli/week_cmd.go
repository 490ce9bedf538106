package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sehyunpark/jindo/internal/cli/formatter"
	"github.com/sehyunpark/jindo/internal/rekey"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Manage the week registry",
	}

	cmd.AddCommand(
		newWeekListCmd(app),
		newWeekAddCmd(app),
		newWeekRemoveCmd(app),
	)

	return cmd
}

func newWeekListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			weeks, err := app.Schedule.Weeks(ctx, user)
			if err != nil {
				return err
			}
			current, err := app.Schedule.CurrentWeekID(ctx, user)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderWeekList(weeks, current))
			return nil
		},
	}
}

func newWeekAddCmd(app *App) *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a week before or after the registry",
		Long: `Add a week to the registry. The new week is placed at the head when the
viewed week sits in the front half of the registry, at the tail otherwise,
and its dates are extrapolated from the adjacent week.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			viewed, err := resolveWeek(ctx, app, user, week)
			if err != nil {
				return err
			}
			change, err := app.Schedule.AddWeek(ctx, user, viewed)
			if err != nil {
				return err
			}
			where := "뒤"
			if change.AtHead {
				where = "앞"
			}
			fmt.Printf("%d주차가 %s에 추가되었습니다.\n", change.NewWeekID, where)
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)

	return cmd
}

func newWeekRemoveCmd(app *App) *cobra.Command {
	var week int
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a week and renumber the rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			target, err := resolveWeek(ctx, app, user, week)
			if err != nil {
				return err
			}
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("pass --yes to remove week %d in non-interactive mode", target)
				}
				confirmed := false
				title := fmt.Sprintf("%d주차와 해당 주의 진도 기록을 삭제할까요?", target)
				if err := confirmForm(title, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}
			if err := app.Schedule.RemoveWeek(ctx, user, target); err != nil {
				if errors.Is(err, rekey.ErrLastWeek) {
					fmt.Println(formatter.Dim("마지막 주차는 삭제할 수 없습니다."))
					return nil
				}
				return err
			}
			fmt.Printf("%d주차가 삭제되었습니다.\n", target)
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
