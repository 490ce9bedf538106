// Package summary derives the ordered list of distinct progress contents for
// a subject across all weeks.
//
// The default order follows a "reference class": the class that has logged
// the most progress for the subject acts as the timing backbone, and every
// content string is placed at its first occurrence in that class's timeline.
// Contents the reference class never saw fall back to their own chronology.
// A user-saved manual order is then merged on top.
package summary

import (
	"sort"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/timetable"
)

// Entry is one non-empty progress content joined back to the slot that
// produced it.
type Entry struct {
	WeekID  int
	ClassID string
	Day     int
	Period  int
	Subject string
	Content string
}

// stamp is a chronological position: week, then day, then period.
type stamp struct {
	weekID int
	day    int
	period int
}

func (s stamp) before(o stamp) bool {
	if s.weekID != o.weekID {
		return s.weekID < o.weekID
	}
	if s.day != o.day {
		return s.day < o.day
	}
	return s.period < o.period
}

func entryStamp(e Entry) stamp {
	return stamp{weekID: e.WeekID, day: e.Day, period: e.Period}
}

// Collect walks every week in ascending id order and, within each week, every
// slot in calendar order, deriving session numbers as it goes. Slots whose
// progress entry has non-empty content yield an Entry. The result is in
// chronological order by construction.
func Collect(schedules map[int][]domain.ScheduleSlot, progress domain.ProgressMap) []Entry {
	weekIDs := make([]int, 0, len(schedules))
	for id := range schedules {
		weekIDs = append(weekIDs, id)
	}
	sort.Ints(weekIDs)

	var entries []Entry
	for _, weekID := range weekIDs {
		sessions := timetable.Sessions(schedules[weekID])
		for _, slot := range timetable.SortSlots(schedules[weekID]) {
			key := domain.ProgressKey{
				WeekID:  weekID,
				ClassID: slot.ClassID,
				Subject: slot.Subject,
				Session: sessions[slot.ID],
			}
			entry, ok := progress[key.String()]
			if !ok || entry.Content == "" {
				continue
			}
			entries = append(entries, Entry{
				WeekID:  weekID,
				ClassID: slot.ClassID,
				Day:     slot.Day,
				Period:  slot.Period,
				Subject: slot.Subject,
				Content: entry.Content,
			})
		}
	}
	return entries
}

// ReferenceClass picks the class with the most entries among the given
// (already subject-filtered) entries. Ties go to the class whose first entry
// is chronologically earlier; first timestamps are unique across classes
// since a slot belongs to exactly one class. Returns "" for no entries.
func ReferenceClass(entries []Entry) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, e := range entries {
		if _, ok := firstSeen[e.ClassID]; !ok {
			firstSeen[e.ClassID] = i
		}
		counts[e.ClassID]++
	}

	var best string
	bestCount := 0
	for classID, count := range counts {
		switch {
		case count > bestCount:
			best, bestCount = classID, count
		case count == bestCount && firstSeen[classID] < firstSeen[best]:
			best = classID
		}
	}
	return best
}

// DefaultOrder returns the distinct contents for the subject in the derived
// default order. Entries must be chronological (as produced by Collect).
func DefaultOrder(entries []Entry, subject string) []string {
	var subjectEntries []Entry
	for _, e := range entries {
		if e.Subject == subject {
			subjectEntries = append(subjectEntries, e)
		}
	}
	if len(subjectEntries) == 0 {
		return nil
	}

	reference := ReferenceClass(subjectEntries)
	if reference == "" {
		sort.SliceStable(subjectEntries, func(i, j int) bool {
			return entryStamp(subjectEntries[i]).before(entryStamp(subjectEntries[j]))
		})
		return dedupeContents(subjectEntries)
	}

	// First occurrence of each distinct content in the reference class's
	// timeline.
	refStamp := make(map[string]stamp)
	for _, e := range subjectEntries {
		if e.ClassID != reference {
			continue
		}
		if _, ok := refStamp[e.Content]; !ok {
			refStamp[e.Content] = entryStamp(e)
		}
	}

	sort.SliceStable(subjectEntries, func(i, j int) bool {
		a, b := subjectEntries[i], subjectEntries[j]
		effA, effB := entryStamp(a), entryStamp(b)
		if s, ok := refStamp[a.Content]; ok {
			effA = s
		}
		if s, ok := refStamp[b.Content]; ok {
			effB = s
		}
		if effA != effB {
			return effA.before(effB)
		}
		return entryStamp(a).before(entryStamp(b))
	})

	return dedupeContents(subjectEntries)
}

// Merge applies a stored manual order on top of the derived default order:
// stored contents that are still derivable keep their stored positions, and
// newly derivable contents are appended in default order. Every derivable
// content appears exactly once.
func Merge(defaultOrder, stored []string) []string {
	if len(stored) == 0 {
		return defaultOrder
	}

	derivable := make(map[string]bool, len(defaultOrder))
	for _, c := range defaultOrder {
		derivable[c] = true
	}

	out := make([]string, 0, len(defaultOrder))
	kept := make(map[string]bool, len(stored))
	for _, c := range stored {
		if derivable[c] && !kept[c] {
			out = append(out, c)
			kept[c] = true
		}
	}
	for _, c := range defaultOrder {
		if !kept[c] {
			out = append(out, c)
		}
	}
	return out
}

func dedupeContents(entries []Entry) []string {
	seen := make(map[string]bool, len(entries))
	var out []string
	for _, e := range entries {
		if !seen[e.Content] {
			seen[e.Content] = true
			out = append(out, e.Content)
		}
	}
	return out
}
