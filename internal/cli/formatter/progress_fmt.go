package formatter

import (
	"fmt"
	"strings"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/service"
)

// RenderProgressTable renders the cross-week progress table for one subject:
// one row per class, one column per (week, session). Sessions a class does
// not have that week render as a dash; empty but available cells as dots.
func RenderProgressTable(view *service.ProgressTableView) string {
	if len(view.Classes) == 0 {
		return Dim(fmt.Sprintf("'%s' 과목이 배정된 반이 없습니다.", view.Subject)) + "\n"
	}

	total := 0
	for _, w := range view.Weeks {
		if n := view.MaxSessions[w.ID]; n > 0 {
			total += n
		} else {
			total++
		}
	}
	if total == 0 {
		return Dim(fmt.Sprintf("'%s' 과목은 시간표에 없습니다.", view.Subject)) + "\n"
	}

	headers := make([]string, 0, total+1)
	headers = append(headers, "반")
	for _, w := range view.Weeks {
		start, _, _ := strings.Cut(w.Dates, "~")
		max := view.MaxSessions[w.ID]
		if max == 0 {
			headers = append(headers, fmt.Sprintf("%s (%s) -", w.Label, strings.TrimSpace(start)))
			continue
		}
		for session := 1; session <= max; session++ {
			headers = append(headers, fmt.Sprintf("%s %d차시", w.Label, session))
		}
	}

	rows := make([][]string, 0, len(view.Classes))
	for _, classID := range view.Classes {
		row := make([]string, 0, total+1)
		row = append(row, Bold(classID))
		for _, w := range view.Weeks {
			max := view.MaxSessions[w.ID]
			if max == 0 {
				row = append(row, Dim("-"))
				continue
			}
			have := view.Counts[w.ID][classID]
			for session := 1; session <= max; session++ {
				if session > have {
					row = append(row, Dim("-"))
					continue
				}
				key := domain.ProgressKey{WeekID: w.ID, ClassID: classID, Subject: view.Subject, Session: session}
				if entry, ok := view.Cells[key.String()]; ok && entry.Content != "" {
					row = append(row, entry.Content)
				} else {
					row = append(row, Dim("…"))
				}
			}
		}
		rows = append(rows, row)
	}

	return Header(view.Subject+" 수업진도표") + "\n" + RenderTable(headers, rows)
}

// RenderSummary renders a subject's ordered distinct progress contents.
func RenderSummary(subject string, contents []string) string {
	var b strings.Builder
	b.WriteString(Header(subject + " 진도 요약"))
	b.WriteString("\n")
	if len(contents) == 0 {
		b.WriteString(Dim("기록된 진도가 없습니다."))
		b.WriteString("\n")
		return b.String()
	}
	for i, content := range contents {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleBlue.Render(fmt.Sprintf("%2d.", i+1)), content))
	}
	return b.String()
}

// RenderWeekList renders the week registry, marking the current calendar
// week and the viewed week.
func RenderWeekList(weeks []domain.Week, currentID int) string {
	headers := []string{"", "주차", "기간"}
	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		marker := " "
		if w.ID == currentID {
			marker = StyleGreen.Render("▶")
		}
		rows = append(rows, []string{marker, w.Label, w.Dates})
	}
	return RenderTable(headers, rows)
}
