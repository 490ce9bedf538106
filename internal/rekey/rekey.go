// Package rekey restructures the week registry and keeps the schedule store
// and progress store consistent with the new week ids.
//
// Week ids are dense 1..N and double as positions, so inserting or removing
// a week renumbers everything after it. Every slot id and every progress key
// embeds its week id; rekeying rewrites both through an old->new id map so
// that no surviving entry is duplicated or lost.
package rekey

import (
	"errors"

	"github.com/sehyunpark/jindo/internal/domain"
)

// ErrLastWeek is returned when a caller tries to remove the only remaining
// week. The operation is blocked and nothing is mutated.
var ErrLastWeek = errors.New("cannot remove the last remaining week")

// State bundles the three stores that must move in lockstep.
type State struct {
	Weeks     []domain.Week
	Schedules map[int][]domain.ScheduleSlot
	Progress  domain.ProgressMap
}

// InsertWeekAtHead prepends a new week 1 with the given date range, shifting
// every existing week's id by one. The new week is seeded from seed (the base
// schedule, or the viewed week's slots); seeded slots keep their id suffix
// under "w1-" and carry no progress.
func InsertWeekAtHead(s State, newDates string, seed []domain.ScheduleSlot) State {
	idMap := make(map[int]int, len(s.Weeks))
	weeks := make([]domain.Week, 0, len(s.Weeks)+1)
	weeks = append(weeks, domain.Week{ID: 1, Label: domain.WeekLabel(1), Dates: newDates})
	for i, w := range s.Weeks {
		newID := i + 2
		idMap[w.ID] = newID
		weeks = append(weeks, domain.Week{ID: newID, Label: domain.WeekLabel(newID), Dates: w.Dates})
	}

	schedules := remapSchedules(s.Schedules, idMap)
	schedules[1] = reownSlots(seed, 1)

	return State{
		Weeks:     weeks,
		Schedules: schedules,
		Progress:  remapProgress(s.Progress, idMap),
	}
}

// AppendWeek adds a new tail week with the given date range. No renumbering
// happens; existing schedules and progress are returned unchanged (copied),
// and the new week is seeded like InsertWeekAtHead's week 1.
func AppendWeek(s State, newDates string, seed []domain.ScheduleSlot) State {
	newID := 1
	if n := len(s.Weeks); n > 0 {
		newID = s.Weeks[n-1].ID + 1
	}

	weeks := make([]domain.Week, 0, len(s.Weeks)+1)
	weeks = append(weeks, s.Weeks...)
	weeks = append(weeks, domain.Week{ID: newID, Label: domain.WeekLabel(newID), Dates: newDates})

	schedules := make(map[int][]domain.ScheduleSlot, len(s.Schedules)+1)
	for id, slots := range s.Schedules {
		schedules[id] = copySlots(slots)
	}
	schedules[newID] = reownSlots(seed, newID)

	progress := make(domain.ProgressMap, len(s.Progress))
	for k, v := range s.Progress {
		progress[k] = v
	}

	return State{Weeks: weeks, Schedules: schedules, Progress: progress}
}

// RemoveWeek deletes the week with the given id and compacts the ids of all
// later weeks by one. The removed week's slots and progress entries are
// dropped; everything else is remapped. Removing the only remaining week is
// rejected with ErrLastWeek and the input state is returned untouched.
func RemoveWeek(s State, weekID int) (State, error) {
	if len(s.Weeks) <= 1 {
		return s, ErrLastWeek
	}

	idMap := make(map[int]int, len(s.Weeks)-1)
	var weeks []domain.Week
	for _, w := range s.Weeks {
		if w.ID == weekID {
			continue
		}
		newID := len(weeks) + 1
		idMap[w.ID] = newID
		weeks = append(weeks, domain.Week{ID: newID, Label: domain.WeekLabel(newID), Dates: w.Dates})
	}
	if len(weeks) == len(s.Weeks) {
		// Unknown week id: nothing to remove.
		return s, nil
	}

	return State{
		Weeks:     weeks,
		Schedules: remapSchedules(s.Schedules, idMap),
		Progress:  remapProgress(s.Progress, idMap),
	}, nil
}

// remapSchedules moves every week's slot list to its mapped id and rewrites
// the slot ids to reference the new owning week. Weeks absent from the map
// (the removed week) are dropped.
func remapSchedules(schedules map[int][]domain.ScheduleSlot, idMap map[int]int) map[int][]domain.ScheduleSlot {
	out := make(map[int][]domain.ScheduleSlot, len(schedules))
	for oldID, slots := range schedules {
		newID, ok := idMap[oldID]
		if !ok {
			continue
		}
		out[newID] = reownSlots(slots, newID)
	}
	return out
}

// remapProgress re-encodes every parseable progress key through the id map,
// carrying the entry over unchanged. Entries with unparseable keys or keys
// pointing at an unmapped week are dropped.
func remapProgress(progress domain.ProgressMap, idMap map[int]int) domain.ProgressMap {
	out := make(domain.ProgressMap, len(progress))
	for raw, entry := range progress {
		key, err := domain.ParseProgressKey(raw)
		if err != nil {
			continue
		}
		newID, ok := idMap[key.WeekID]
		if !ok {
			continue
		}
		key.WeekID = newID
		out[key.String()] = entry
	}
	return out
}

// reownSlots copies slots under a new owning week id, preserving each slot's
// id suffix.
func reownSlots(slots []domain.ScheduleSlot, weekID int) []domain.ScheduleSlot {
	out := make([]domain.ScheduleSlot, len(slots))
	for i, slot := range slots {
		slot.ID = domain.SlotID(weekID, domain.SlotIDSuffix(slot.ID))
		out[i] = slot
	}
	return out
}

func copySlots(slots []domain.ScheduleSlot) []domain.ScheduleSlot {
	out := make([]domain.ScheduleSlot, len(slots))
	copy(out, slots)
	return out
}
