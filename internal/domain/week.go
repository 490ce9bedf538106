package domain

import (
	"fmt"
	"strings"
	"time"
)

// Week is one row of the week registry. IDs are 1-based, dense, and always
// match the week's position in the registry slice (position+1); any
// structural mutation renumbers the whole registry.
type Week struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Dates string `json:"dates"`
}

// dateRangeSep separates the start and end of a week's date range.
const dateRangeSep = " ~ "

// WeekLabel returns the display label for a week id, e.g. "01주" for 1.
func WeekLabel(id int) string {
	return fmt.Sprintf("%02d주", id)
}

// ParseDateRange parses a "MM-DD ~ MM-DD" range into start/end dates in the
// given year, truncated to midnight.
func ParseDateRange(dates string, year int) (start, end time.Time, err error) {
	parts := strings.Split(dates, dateRangeSep)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("date range %q: want start ~ end", dates)
	}
	start, err = parseMonthDay(parts[0], year)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date range %q: %w", dates, err)
	}
	end, err = parseMonthDay(parts[1], year)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date range %q: %w", dates, err)
	}
	return start, end, nil
}

func parseMonthDay(s string, year int) (time.Time, error) {
	var month, day int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d-%d", &month, &day); err != nil {
		return time.Time{}, fmt.Errorf("parsing %q as MM-DD: %w", s, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("parsing %q as MM-DD: out of range", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// FormatDateRange renders two dates as a "MM-DD ~ MM-DD" range.
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%02d-%02d%s%02d-%02d",
		int(start.Month()), start.Day(), dateRangeSep, int(end.Month()), end.Day())
}

// CurrentWeekID returns the id of the week whose date range contains now,
// interpreting ranges in now's year. Weeks with unparseable ranges are
// skipped, not fatal. Returns 0 when no week matches.
func CurrentWeekID(weeks []Week, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	for _, w := range weeks {
		start, end, err := ParseDateRange(w.Dates, today.Year())
		if err != nil {
			continue
		}
		if !today.Before(start) && !today.After(end) {
			return w.ID
		}
	}
	return 0
}

// PrecedingDateRange derives the range for a week inserted before the given
// first week: the new range ends 3 days before firstDates begins and spans 5
// calendar days (Mon-Fri against a Mon-Sat range, matching the seed weeks).
func PrecedingDateRange(firstDates string, year int) (string, error) {
	start, _, err := ParseDateRange(firstDates, year)
	if err != nil {
		return "", err
	}
	end := start.AddDate(0, 0, -3)
	return FormatDateRange(end.AddDate(0, 0, -4), end), nil
}

// FollowingDateRange derives the range for a week appended after the given
// last week: it starts 3 days after lastDates ends and spans 5 calendar days.
func FollowingDateRange(lastDates string, year int) (string, error) {
	_, end, err := ParseDateRange(lastDates, year)
	if err != nil {
		return "", err
	}
	start := end.AddDate(0, 0, 3)
	return FormatDateRange(start, start.AddDate(0, 0, 4)), nil
}
