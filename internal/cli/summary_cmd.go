package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sehyunpark/jindo/internal/cli/formatter"
)

func newSummaryCmd(app *App) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a subject's progress contents in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			resolved, err := resolveSubject(ctx, app, user, subject)
			if err != nil {
				return err
			}
			contents, err := app.Summary.Summary(ctx, user, resolved)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderSummary(resolved, contents))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject (default: the first visible subject)")
	cmd.AddCommand(newSummaryReorderCmd(app))

	return cmd
}

func newSummaryReorderCmd(app *App) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Rearrange a subject's summary order interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			if !app.interactive() {
				return fmt.Errorf("reorder needs a terminal")
			}
			resolved, err := resolveSubject(ctx, app, user, subject)
			if err != nil {
				return err
			}
			contents, err := app.Summary.Summary(ctx, user, resolved)
			if err != nil {
				return err
			}
			if len(contents) < 2 {
				fmt.Println(formatter.Dim("순서를 바꿀 진도가 2개 이상 필요합니다."))
				return nil
			}

			model := newReorderModel(resolved, contents)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("run reorder ui: %w", err)
			}
			result, ok := final.(*reorderModel)
			if !ok || !result.saved {
				fmt.Println(formatter.Dim("변경을 취소했습니다."))
				return nil
			}
			if err := app.Summary.Reorder(ctx, user, resolved, result.contents); err != nil {
				return err
			}
			fmt.Println("진도 순서가 저장되었습니다.")
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject (default: the first visible subject)")

	return cmd
}
