package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/service"
)

func newSlotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Edit one week's timetable slots",
	}

	cmd.AddCommand(
		newSlotAddCmd(app),
		newSlotEditCmd(app),
		newSlotRemoveCmd(app),
		newSlotMoveCmd(app),
	)

	return cmd
}

func newSlotAddCmd(app *App) *cobra.Command {
	var week, day, period int
	var subject, classID string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a slot to the timetable",
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
			if err := collectSlotFields(app, &day, &period, &subject, &classID); err != nil {
				return err
			}
			view, err := app.Schedule.Timetable(ctx, user, weekID)
			if err != nil {
				return err
			}
			if i, ok := slotAt(view, day, period); ok {
				occupied := view.Slots[i]
				return fmt.Errorf("%s %d교시에는 이미 %s %s 수업이 있습니다",
					domain.DayNames[day-1], period, occupied.Subject, occupied.ClassID)
			}
			slot, err := app.Schedule.SaveSlot(ctx, user, weekID, service.SlotInput{
				Day: day, Period: period, Subject: subject, ClassID: classID,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s %d교시에 %s %s 수업이 추가되었습니다.\n",
				domain.DayNames[slot.Day-1], slot.Period, slot.Subject, slot.ClassID)
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)
	addSlotPositionFlags(cmd, &day, &period)
	cmd.Flags().StringVar(&subject, "subject", "", "Subject name")
	cmd.Flags().StringVar(&classID, "class", "", "Class identifier")

	return cmd
}

func newSlotEditCmd(app *App) *cobra.Command {
	var week, day, period int
	var subject, classID string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the slot at a given day and period",
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
			i, ok := slotAt(view, day, period)
			if !ok {
				return fmt.Errorf("%s %d교시에는 수업이 없습니다", domain.DayNames[day-1], period)
			}
			target := view.Slots[i]
			if subject == "" {
				subject = target.Subject
			}
			if classID == "" {
				classID = target.ClassID
			}
			if app.interactive() && !cmd.Flags().Changed("subject") && !cmd.Flags().Changed("class") {
				newDay, newPeriod := target.Day, target.Period
				if err := slotForm(&newDay, &newPeriod, &subject, &classID).Run(); err != nil {
					return err
				}
				if j, occupied := slotAt(view, newDay, newPeriod); occupied && view.Slots[j].ID != target.ID {
					return fmt.Errorf("%s %d교시에는 이미 수업이 있습니다", domain.DayNames[newDay-1], newPeriod)
				}
				day, period = newDay, newPeriod
			}
			_, err = app.Schedule.SaveSlot(ctx, user, weekID, service.SlotInput{
				ID: target.ID, Day: day, Period: period, Subject: subject, ClassID: classID,
			})
			if err != nil {
				return err
			}
			fmt.Println("수업이 수정되었습니다.")
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)
	addSlotPositionFlags(cmd, &day, &period)
	cmd.MarkFlagRequired("day")
	cmd.MarkFlagRequired("period")
	cmd.Flags().StringVar(&subject, "subject", "", "New subject name")
	cmd.Flags().StringVar(&classID, "class", "", "New class identifier")

	return cmd
}

func newSlotRemoveCmd(app *App) *cobra.Command {
	var week, day, period int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the slot at a given day and period",
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
			i, ok := slotAt(view, day, period)
			if !ok {
				return fmt.Errorf("%s %d교시에는 수업이 없습니다", domain.DayNames[day-1], period)
			}
			target := view.Slots[i]
			if err := app.Schedule.DeleteSlot(ctx, user, weekID, target.ID); err != nil {
				return err
			}
			fmt.Printf("%s %s 수업이 삭제되었습니다.\n", target.Subject, target.ClassID)
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)
	addSlotPositionFlags(cmd, &day, &period)
	cmd.MarkFlagRequired("day")
	cmd.MarkFlagRequired("period")

	return cmd
}

func newSlotMoveCmd(app *App) *cobra.Command {
	var week, day, period, toDay, toPeriod int

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a slot to an empty day and period",
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
			i, ok := slotAt(view, day, period)
			if !ok {
				return fmt.Errorf("%s %d교시에는 수업이 없습니다", domain.DayNames[day-1], period)
			}
			if _, occupied := slotAt(view, toDay, toPeriod); occupied {
				return fmt.Errorf("%s %d교시에는 이미 수업이 있습니다", domain.DayNames[toDay-1], toPeriod)
			}
			target := view.Slots[i]
			if err := app.Schedule.MoveSlot(ctx, user, weekID, target.ID, toDay, toPeriod); err != nil {
				return err
			}
			fmt.Printf("%s %s 수업이 %s %d교시로 이동했습니다.\n",
				target.Subject, target.ClassID, domain.DayNames[toDay-1], toPeriod)
			return nil
		},
	}

	addWeekFlag(cmd.Flags(), &week)
	addSlotPositionFlags(cmd, &day, &period)
	cmd.Flags().IntVar(&toDay, "to-day", 0, "Destination weekday (1=월 .. 5=금)")
	cmd.Flags().IntVar(&toPeriod, "to-period", 0, "Destination period (1-7)")
	cmd.MarkFlagRequired("day")
	cmd.MarkFlagRequired("period")
	cmd.MarkFlagRequired("to-day")
	cmd.MarkFlagRequired("to-period")

	return cmd
}

func addSlotPositionFlags(cmd *cobra.Command, day, period *int) {
	cmd.Flags().IntVar(day, "day", 0, "Weekday (1=월 .. 5=금)")
	cmd.Flags().IntVar(period, "period", 0, "Period (1-7)")
}

// collectSlotFields fills missing slot fields from an interactive form, or
// fails when not attached to a terminal.
func collectSlotFields(app *App, day, period *int, subject, classID *string) error {
	if *day >= 1 && *period >= 1 && *subject != "" && *classID != "" {
		return nil
	}
	if !app.interactive() {
		return fmt.Errorf("--day, --period, --subject, and --class are required in non-interactive mode")
	}
	if *day == 0 {
		*day = 1
	}
	if *period == 0 {
		*period = 1
	}
	return slotForm(day, period, subject, classID).Run()
}
