package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sehyunpark/jindo/internal/cli/formatter"
	"github.com/sehyunpark/jindo/internal/domain"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Record and inspect lesson progress",
	}

	cmd.AddCommand(
		newProgressSetCmd(app),
		newProgressShowCmd(app),
		newProgressTableCmd(app),
	)

	return cmd
}

func newProgressSetCmd(app *App) *cobra.Command {
	var week, day, period int
	var key, content, memo string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record progress for a lesson",
		Long: `Record progress for a lesson, addressed either by --key or by the slot at
--day and --period. Saving an entry with empty content and memo deletes it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			pk, slot, err := resolveProgressKey(ctx, app, user, key, week, day, period)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("content") && !cmd.Flags().Changed("memo") {
				if !app.interactive() {
					return fmt.Errorf("--content or --memo is required in non-interactive mode")
				}
				existing, err := app.Progress.Get(ctx, user, pk)
				if err != nil {
					return err
				}
				content, memo = existing.Content, existing.Memo
				if err := progressForm(&content, &memo).Run(); err != nil {
					return err
				}
			}
			entry := domain.ProgressEntry{Content: content, Memo: memo}
			if err := app.Progress.Set(ctx, user, pk, entry); err != nil {
				return err
			}
			label := pk.String()
			if slot != nil {
				label = fmt.Sprintf("%s %s %d차시", slot.Subject, slot.ClassID, pk.Session)
			}
			if entry.Blank() {
				fmt.Printf("%s 진도 기록이 삭제되었습니다.\n", label)
			} else {
				fmt.Printf("%s 진도가 저장되었습니다.\n", label)
			}
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)
	addProgressAddressFlags(cmd, &key, &day, &period)
	cmd.Flags().StringVar(&content, "content", "", "Lesson content")
	cmd.Flags().StringVar(&memo, "memo", "", "Free-form memo")

	return cmd
}

func newProgressShowCmd(app *App) *cobra.Command {
	var week, day, period int
	var key string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the progress entry for a lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			pk, slot, err := resolveProgressKey(ctx, app, user, key, week, day, period)
			if err != nil {
				return err
			}
			entry, err := app.Progress.Get(ctx, user, pk)
			if err != nil {
				return err
			}
			if slot != nil {
				fmt.Println(formatter.Header(fmt.Sprintf("%s %s %d차시 (%s)",
					slot.Subject, slot.ClassID, pk.Session, domain.WeekLabel(pk.WeekID))))
			} else {
				fmt.Println(formatter.Header(pk.String()))
			}
			if entry.Blank() {
				fmt.Println(formatter.Dim("기록된 진도가 없습니다."))
				return nil
			}
			if entry.Content != "" {
				fmt.Printf("%s %s\n", formatter.Bold("진도:"), entry.Content)
			}
			if entry.Memo != "" {
				fmt.Printf("%s %s\n", formatter.Bold("메모:"), entry.Memo)
			}
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)
	addProgressAddressFlags(cmd, &key, &day, &period)

	return cmd
}

func newProgressTableCmd(app *App) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the cross-week progress table for a subject",
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
			view, err := app.Progress.Table(ctx, user, resolved)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderProgressTable(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject (default: the first visible subject)")

	return cmd
}

func addProgressAddressFlags(cmd *cobra.Command, key *string, day, period *int) {
	cmd.Flags().StringVar(key, "key", "", "Progress key, e.g. w3-c3-2-sub과학-s2")
	cmd.Flags().IntVar(day, "day", 0, "Weekday of the lesson (1=월 .. 5=금)")
	cmd.Flags().IntVar(period, "period", 0, "Period of the lesson (1-7)")
}

// resolveProgressKey addresses a lesson either by an explicit key or by the
// slot occupying (day, period) in the resolved week. The returned slot is nil
// when the key was given directly.
func resolveProgressKey(ctx context.Context, app *App, user, key string, week, day, period int) (domain.ProgressKey, *domain.ScheduleSlot, error) {
	if key != "" {
		pk, err := domain.ParseProgressKey(key)
		if err != nil {
			return domain.ProgressKey{}, nil, err
		}
		return pk, nil, nil
	}
	if day == 0 || period == 0 {
		return domain.ProgressKey{}, nil, fmt.Errorf("either --key or both --day and --period are required")
	}
	weekID, err := resolveWeek(ctx, app, user, week)
	if err != nil {
		return domain.ProgressKey{}, nil, err
	}
	view, err := app.Schedule.Timetable(ctx, user, weekID)
	if err != nil {
		return domain.ProgressKey{}, nil, err
	}
	i, ok := slotAt(view, day, period)
	if !ok {
		return domain.ProgressKey{}, nil, fmt.Errorf("%s %d교시에는 수업이 없습니다", domain.DayNames[day-1], period)
	}
	slot := view.Slots[i]
	pk := domain.ProgressKey{
		WeekID:  weekID,
		ClassID: slot.ClassID,
		Subject: slot.Subject,
		Session: view.Sessions[slot.ID],
	}
	return pk, &slot, nil
}
