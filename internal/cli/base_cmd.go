package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sehyunpark/jindo/internal/cli/formatter"
	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/timetable"
)

func newBaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base",
		Short: "Manage the base timetable used to seed new weeks",
	}

	cmd.AddCommand(
		newBaseShowCmd(app),
		newBaseSetCmd(app),
	)

	return cmd
}

func newBaseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved base timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			slots, err := app.Schedule.BaseSchedule(ctx, user)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Println(formatter.Dim("저장된 기본 시간표가 없습니다. 내장 시간표가 사용됩니다."))
				return nil
			}
			fmt.Print(renderBaseGrid(slots))
			return nil
		},
	}
}

func newBaseSetCmd(app *App) *cobra.Command {
	var week int
	var yes bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save a week's timetable as the base timetable",
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
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("pass --yes to overwrite the base timetable in non-interactive mode")
				}
				confirmed := false
				title := fmt.Sprintf("%s의 시간표를 기본 시간표로 저장할까요?", domain.WeekLabel(weekID))
				if err := confirmForm(title, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}
			changed, err := app.Schedule.SetBaseSchedule(ctx, user, weekID)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Println(formatter.Dim("기본 시간표와 동일하여 변경 사항이 없습니다."))
				return nil
			}
			fmt.Printf("%s의 시간표가 기본 시간표로 저장되었습니다.\n", domain.WeekLabel(weekID))
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// renderBaseGrid renders the base timetable the same way as a weekly grid,
// minus progress markers.
func renderBaseGrid(slots []domain.ScheduleSlot) string {
	sorted := timetable.SortSlots(slots)
	sessions := timetable.Sessions(sorted)

	grid := make(map[int]map[int]domain.ScheduleSlot, domain.MaxDay)
	for _, slot := range sorted {
		if grid[slot.Day] == nil {
			grid[slot.Day] = make(map[int]domain.ScheduleSlot)
		}
		grid[slot.Day][slot.Period] = slot
	}

	headers := append([]string{"교시"}, domain.DayNames...)
	rows := make([][]string, 0, domain.MaxPeriod)
	for period := 1; period <= domain.MaxPeriod; period++ {
		row := []string{fmt.Sprintf("%d (%s)", period, domain.PeriodStartTimes[period-1])}
		for day := 1; day <= domain.MaxDay; day++ {
			slot, ok := grid[day][period]
			if !ok {
				row = append(row, formatter.Dim("·"))
				continue
			}
			row = append(row, fmt.Sprintf("%s %s (%d차시)", slot.Subject, slot.ClassID, sessions[slot.ID]))
		}
		rows = append(rows, row)
	}

	subjects := make(map[string]struct{})
	for _, slot := range sorted {
		if slot.Subject != "" {
			subjects[slot.Subject] = struct{}{}
		}
	}
	names := make([]string, 0, len(subjects))
	for s := range subjects {
		names = append(names, s)
	}
	sort.Strings(names)

	out := formatter.Header("기본 시간표") + "\n" + formatter.RenderTable(headers, rows)
	if len(names) > 0 {
		out += formatter.Dim(fmt.Sprintf("과목: %v", names)) + "\n"
	}
	return out
}
