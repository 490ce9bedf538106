package formatter

import (
	"fmt"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/service"
)

// RenderTimetable renders one week's grid: periods as rows, weekdays as
// columns. Each occupied cell shows "subject class (n차시)"; cells with a
// progress entry get a green marker, a memo-only entry a yellow one.
func RenderTimetable(view *service.TimetableView) string {
	headers := make([]string, 0, domain.MaxDay+1)
	headers = append(headers, "교시")
	headers = append(headers, domain.DayNames...)

	grid := make(map[int]map[int]domain.ScheduleSlot, domain.MaxDay)
	for _, slot := range view.Slots {
		if grid[slot.Day] == nil {
			grid[slot.Day] = make(map[int]domain.ScheduleSlot)
		}
		grid[slot.Day][slot.Period] = slot
	}

	rows := make([][]string, 0, domain.MaxPeriod)
	for period := 1; period <= domain.MaxPeriod; period++ {
		row := make([]string, 0, domain.MaxDay+1)
		row = append(row, fmt.Sprintf("%d (%s)", period, domain.PeriodStartTimes[period-1]))
		for day := 1; day <= domain.MaxDay; day++ {
			slot, ok := grid[day][period]
			if !ok {
				row = append(row, Dim("·"))
				continue
			}
			cell := fmt.Sprintf("%s %s (%d차시)", slot.Subject, slot.ClassID, view.Sessions[slot.ID])
			if entry, ok := view.Progress[slot.ID]; ok {
				switch {
				case entry.Content != "":
					cell = StyleGreen.Render("●") + " " + cell
				case entry.Memo != "":
					cell = StyleYellow.Render("●") + " " + cell
				}
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	title := fmt.Sprintf("%s (%s)", view.Week.Label, view.Week.Dates)
	return Header(title) + "\n" + RenderTable(headers, rows)
}
