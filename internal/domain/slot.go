package domain

import (
	"fmt"
	"strings"
)

// ScheduleSlot is one scheduled class occurrence at a specific day/period
// within a specific week. At most one slot may occupy a (day, period) cell
// in a week's slot list.
//
// The ID embeds the owning week ("w3-...") for traceability only; ownership
// is positional — whichever week's slot list contains the slot owns it.
type ScheduleSlot struct {
	ID      string `json:"id"`
	Day     int    `json:"day"`    // 1..5, Monday..Friday
	Period  int    `json:"period"` // 1..7
	Subject string `json:"subject"`
	ClassID string `json:"classId"`
}

// SlotID builds a slot id for the given week from an id suffix.
func SlotID(weekID int, suffix string) string {
	return fmt.Sprintf("w%d-%s", weekID, suffix)
}

// SlotIDSuffix returns everything after the week segment of a slot id.
// "w3-s17" yields "s17"; an id without a separator yields "".
func SlotIDSuffix(id string) string {
	_, suffix, _ := strings.Cut(id, "-")
	return suffix
}

// DayNames are the Korean weekday headers for slot days 1..5.
var DayNames = []string{"월", "화", "수", "목", "금"}

// PeriodStartTimes are the class start times for periods 1..7.
var PeriodStartTimes = []string{"08:50", "09:45", "10:40", "11:35", "13:30", "14:25", "15:20"}

// MaxDay and MaxPeriod bound the timetable grid.
const (
	MaxDay    = 5
	MaxPeriod = 7
)
