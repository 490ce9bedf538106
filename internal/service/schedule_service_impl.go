package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sehyunpark/jindo/internal/db"
	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/rekey"
	"github.com/sehyunpark/jindo/internal/repository"
	"github.com/sehyunpark/jindo/internal/timetable"
)

type scheduleService struct {
	stateStore
	uow db.UnitOfWork
	now func() time.Time
}

func NewScheduleService(states repository.StateRepo, uow db.UnitOfWork) ScheduleService {
	return &scheduleService{stateStore: stateStore{states: states}, uow: uow, now: time.Now}
}

func (s *scheduleService) Weeks(ctx context.Context, user string) ([]domain.Week, error) {
	return s.loadWeeks(ctx, user), nil
}

func (s *scheduleService) CurrentWeekID(ctx context.Context, user string) (int, error) {
	return domain.CurrentWeekID(s.loadWeeks(ctx, user), s.now()), nil
}

func (s *scheduleService) Timetable(ctx context.Context, user string, weekID int) (*TimetableView, error) {
	weeks := s.loadWeeks(ctx, user)
	idx := weekIndex(weeks, weekID)
	if idx < 0 {
		return nil, fmt.Errorf("week %d: no such week", weekID)
	}

	base := s.loadBase(ctx, user)
	slots := s.loadSchedules(ctx, user, weeks, base)[weekID]
	sessions := timetable.Sessions(slots)
	progress := s.loadProgress(ctx, user)

	bySlot := make(map[string]domain.ProgressEntry, len(slots))
	for _, slot := range slots {
		key := domain.ProgressKey{
			WeekID:  weekID,
			ClassID: slot.ClassID,
			Subject: slot.Subject,
			Session: sessions[slot.ID],
		}
		if entry, ok := progress[key.String()]; ok {
			bySlot[slot.ID] = entry
		}
	}

	return &TimetableView{
		Week:     weeks[idx],
		Slots:    timetable.SortSlots(slots),
		Sessions: sessions,
		Progress: bySlot,
	}, nil
}

// AddWeek inserts at the head when the viewed week sits in the front half of
// the registry, otherwise appends at the tail. The new week is seeded from
// the base schedule when one is set, else from the viewed week, and starts
// with no progress.
func (s *scheduleService) AddWeek(ctx context.Context, user string, viewedWeekID int) (*WeekChange, error) {
	weeks := s.loadWeeks(ctx, user)
	idx := weekIndex(weeks, viewedWeekID)
	if idx < 0 {
		return nil, fmt.Errorf("week %d: no such week", viewedWeekID)
	}

	base := s.loadBase(ctx, user)
	state := rekey.State{
		Weeks:     weeks,
		Schedules: s.loadSchedules(ctx, user, weeks, base),
		Progress:  s.loadProgress(ctx, user),
	}

	seed := base
	if seed == nil {
		seed = state.Schedules[viewedWeekID]
	}

	// Head when the viewed week sits in the front half, including the exact
	// middle of an odd-length registry (index 1 of 3 inserts at the head).
	atHead := idx*2 < len(weeks)
	var next rekey.State
	var change WeekChange
	if atHead {
		dates, err := domain.PrecedingDateRange(weeks[0].Dates, s.now().Year())
		if err != nil {
			return nil, fmt.Errorf("deriving dates for new first week: %w", err)
		}
		next = rekey.InsertWeekAtHead(state, dates, seed)
		change = WeekChange{NewWeekID: 1, AtHead: true}
	} else {
		dates, err := domain.FollowingDateRange(weeks[len(weeks)-1].Dates, s.now().Year())
		if err != nil {
			return nil, fmt.Errorf("deriving dates for new last week: %w", err)
		}
		next = rekey.AppendWeek(state, dates, seed)
		change = WeekChange{NewWeekID: next.Weeks[len(next.Weeks)-1].ID}
	}

	s.saveState(ctx, user, next)
	return &change, nil
}

func (s *scheduleService) RemoveWeek(ctx context.Context, user string, weekID int) error {
	weeks := s.loadWeeks(ctx, user)
	base := s.loadBase(ctx, user)
	state := rekey.State{
		Weeks:     weeks,
		Schedules: s.loadSchedules(ctx, user, weeks, base),
		Progress:  s.loadProgress(ctx, user),
	}

	next, err := rekey.RemoveWeek(state, weekID)
	if err != nil {
		return err
	}

	s.saveState(ctx, user, next)
	return nil
}

// saveState writes the three restructured documents in one transaction.
// A failed write is logged and swallowed like any other save.
func (s *scheduleService) saveState(ctx context.Context, user string, state rekey.State) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		states := repository.NewSQLiteStateRepo(tx)
		if err := states.Save(ctx, user, repository.NSWeeks, state.Weeks); err != nil {
			return err
		}
		if err := states.Save(ctx, user, repository.NSSchedules, state.Schedules); err != nil {
			return err
		}
		return states.Save(ctx, user, repository.NSProgress, state.Progress)
	})
	if err != nil {
		slog.Error("saving restructured weeks", "user", user, "error", err)
	}
}

func (s *scheduleService) SaveSlot(ctx context.Context, user string, weekID int, input SlotInput) (*domain.ScheduleSlot, error) {
	weeks := s.loadWeeks(ctx, user)
	if weekIndex(weeks, weekID) < 0 {
		return nil, fmt.Errorf("week %d: no such week", weekID)
	}
	schedules := s.loadSchedules(ctx, user, weeks, s.loadBase(ctx, user))
	slots := schedules[weekID]

	var saved domain.ScheduleSlot
	if input.ID != "" {
		idx := slotIndex(slots, input.ID)
		if idx < 0 {
			return nil, fmt.Errorf("slot %s: not found in week %d", input.ID, weekID)
		}
		slots[idx].Day = input.Day
		slots[idx].Period = input.Period
		slots[idx].Subject = input.Subject
		slots[idx].ClassID = input.ClassID
		saved = slots[idx]
	} else {
		saved = domain.ScheduleSlot{
			ID:      domain.SlotID(weekID, "s"+uuid.New().String()[:8]),
			Day:     input.Day,
			Period:  input.Period,
			Subject: input.Subject,
			ClassID: input.ClassID,
		}
		slots = append(slots, saved)
	}

	schedules[weekID] = slots
	s.save(ctx, user, repository.NSSchedules, schedules)
	return &saved, nil
}

func (s *scheduleService) DeleteSlot(ctx context.Context, user string, weekID int, slotID string) error {
	weeks := s.loadWeeks(ctx, user)
	schedules := s.loadSchedules(ctx, user, weeks, s.loadBase(ctx, user))

	slots := schedules[weekID]
	idx := slotIndex(slots, slotID)
	if idx < 0 {
		return fmt.Errorf("slot %s: not found in week %d", slotID, weekID)
	}
	schedules[weekID] = append(slots[:idx], slots[idx+1:]...)
	s.save(ctx, user, repository.NSSchedules, schedules)
	return nil
}

func (s *scheduleService) MoveSlot(ctx context.Context, user string, weekID int, slotID string, day, period int) error {
	weeks := s.loadWeeks(ctx, user)
	schedules := s.loadSchedules(ctx, user, weeks, s.loadBase(ctx, user))

	slots := schedules[weekID]
	idx := slotIndex(slots, slotID)
	if idx < 0 {
		return fmt.Errorf("slot %s: not found in week %d", slotID, weekID)
	}
	slots[idx].Day = day
	slots[idx].Period = period
	s.save(ctx, user, repository.NSSchedules, schedules)
	return nil
}

// SetBaseSchedule saves the given week's slots as the template for future
// weeks. Returns false without saving when the week already matches the
// stored base.
func (s *scheduleService) SetBaseSchedule(ctx context.Context, user string, weekID int) (bool, error) {
	weeks := s.loadWeeks(ctx, user)
	if weekIndex(weeks, weekID) < 0 {
		return false, fmt.Errorf("week %d: no such week", weekID)
	}
	base := s.loadBase(ctx, user)
	slots := s.loadSchedules(ctx, user, weeks, base)[weekID]

	if sameTimetable(slots, base) {
		return false, nil
	}

	s.save(ctx, user, repository.NSBaseSchedule, slots)
	return true, nil
}

func (s *scheduleService) BaseSchedule(ctx context.Context, user string) ([]domain.ScheduleSlot, error) {
	return s.loadBase(ctx, user), nil
}

func slotIndex(slots []domain.ScheduleSlot, id string) int {
	for i, slot := range slots {
		if slot.ID == id {
			return i
		}
	}
	return -1
}

// sameTimetable compares two slot lists ignoring ids: same multiset of
// (day, period, subject, class).
func sameTimetable(a, b []domain.ScheduleSlot) bool {
	if len(a) != len(b) {
		return false
	}
	return timetableFingerprint(a) == timetableFingerprint(b)
}

func timetableFingerprint(slots []domain.ScheduleSlot) string {
	lines := make([]string, len(slots))
	for i, slot := range slots {
		lines[i] = fmt.Sprintf("%d|%d|%s|%s", slot.Day, slot.Period, slot.Subject, slot.ClassID)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
