// Package timetable derives per-week session numbers from schedule slots.
//
// A session is the Nth calendar occurrence of a (subject, class) pairing
// within one week: slots are walked in (day, period) order and each pairing
// keeps a running counter starting at 1. The derivation is pure and
// recomputed on demand; session numbers are never stored.
package timetable

import (
	"sort"

	"github.com/sehyunpark/jindo/internal/domain"
)

// pairing groups slots that share a subject and class. Empty subject or
// class strings are legal and simply form their own group.
type pairing struct {
	subject string
	classID string
}

// SortSlots returns a copy of slots in calendar order: day ascending, then
// period ascending. The sort is stable, though (day, period) is unique
// within a valid week.
func SortSlots(slots []domain.ScheduleSlot) []domain.ScheduleSlot {
	sorted := make([]domain.ScheduleSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day < sorted[j].Day
		}
		return sorted[i].Period < sorted[j].Period
	})
	return sorted
}

// Sessions maps each slot id to its session number for one week's slot list.
// The result depends only on the slot multiset, not input order.
func Sessions(slots []domain.ScheduleSlot) map[string]int {
	sessions := make(map[string]int, len(slots))
	counters := make(map[pairing]int)
	for _, slot := range SortSlots(slots) {
		p := pairing{subject: slot.Subject, classID: slot.ClassID}
		counters[p]++
		sessions[slot.ID] = counters[p]
	}
	return sessions
}

// Counts tallies how many sessions each (subject, class) pairing has in one
// week's slot list: subject -> classID -> count. Slots with an empty subject
// or class are left out, matching the progress-table layout rules.
func Counts(slots []domain.ScheduleSlot) map[string]map[string]int {
	counts := make(map[string]map[string]int)
	for _, slot := range slots {
		if slot.Subject == "" || slot.ClassID == "" {
			continue
		}
		byClass := counts[slot.Subject]
		if byClass == nil {
			byClass = make(map[string]int)
			counts[slot.Subject] = byClass
		}
		byClass[slot.ClassID]++
	}
	return counts
}
