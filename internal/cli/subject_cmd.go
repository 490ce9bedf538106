package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/sehyunpark/jindo/internal/cli/formatter"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "List and filter the subjects shown in progress views",
	}

	cmd.AddCommand(
		newSubjectListCmd(app),
		newSubjectHideCmd(app),
		newSubjectShowCmd(app),
	)

	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all subjects on the timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			subjects, err := app.Progress.Subjects(ctx, user)
			if err != nil {
				return err
			}
			hidden, err := app.Progress.HiddenSubjects(ctx, user)
			if err != nil {
				return err
			}
			if len(subjects) == 0 {
				fmt.Println(formatter.Dim("시간표에 과목이 없습니다."))
				return nil
			}
			for _, s := range subjects {
				if slices.Contains(hidden, s) {
					fmt.Printf("%s %s\n", formatter.Dim(s), formatter.Dim("(숨김)"))
				} else {
					fmt.Println(s)
				}
			}
			return nil
		},
	}
}

func newSubjectHideCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hide <subject>",
		Short: "Hide a subject from progress views",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			subject := args[0]
			hidden, err := app.Progress.HiddenSubjects(ctx, user)
			if err != nil {
				return err
			}
			if slices.Contains(hidden, subject) {
				fmt.Printf("'%s' 과목은 이미 숨김 상태입니다.\n", subject)
				return nil
			}
			hidden = append(hidden, subject)
			if err := app.Progress.SetHiddenSubjects(ctx, user, hidden); err != nil {
				return err
			}
			fmt.Printf("'%s' 과목을 숨겼습니다.\n", subject)
			return nil
		},
	}
}

func newSubjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <subject>",
		Short: "Show a hidden subject again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			subject := args[0]
			hidden, err := app.Progress.HiddenSubjects(ctx, user)
			if err != nil {
				return err
			}
			i := slices.Index(hidden, subject)
			if i < 0 {
				fmt.Printf("'%s' 과목은 숨김 상태가 아닙니다.\n", subject)
				return nil
			}
			hidden = slices.Delete(hidden, i, i+1)
			if err := app.Progress.SetHiddenSubjects(ctx, user, hidden); err != nil {
				return err
			}
			fmt.Printf("'%s' 과목을 다시 표시합니다.\n", subject)
			return nil
		},
	}
}
