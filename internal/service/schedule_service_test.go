package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/repository"
	"github.com/sehyunpark/jindo/internal/testutil"
)

// fixedNow keeps week resolution deterministic: a Wednesday inside the first
// default week.
var fixedNow = time.Date(2025, 8, 27, 10, 0, 0, 0, time.Local)

func newScheduleFixture(t *testing.T) (*scheduleService, ProgressService, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	user := testutil.CreateTestUser(t, database, "sehyun")
	states := repository.NewSQLiteStateRepo(database)
	svc := &scheduleService{
		stateStore: stateStore{states: states},
		uow:        testutil.NewTestUoW(database),
		now:        func() time.Time { return fixedNow },
	}
	return svc, NewProgressService(states), user
}

func TestScheduleService_Weeks_DefaultsForFreshUser(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	weeks, err := svc.Weeks(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeeks(), weeks)

	current, err := svc.CurrentWeekID(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 1, current)
}

func TestScheduleService_Timetable_DerivesSessions(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	view, err := svc.Timetable(ctx, user, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, view.Week.ID)
	assert.Len(t, view.Slots, 19)
	// Monday p1 is 3-5's first 과학A session; Tuesday p6 its second.
	assert.Equal(t, 1, view.Sessions["w1-s1"])
	assert.Equal(t, 2, view.Sessions["w1-s6"])
}

func TestScheduleService_Timetable_UnknownWeek(t *testing.T) {
	svc, _, user := newScheduleFixture(t)

	_, err := svc.Timetable(context.Background(), user, 42)
	assert.Error(t, err)
}

func TestScheduleService_AddWeek_FrontHalfInsertsAtHead(t *testing.T) {
	svc, progress, user := newScheduleFixture(t)
	ctx := context.Background()

	key := domain.ProgressKey{WeekID: 1, ClassID: "3-5", Subject: "과학A", Session: 1}
	require.NoError(t, progress.Set(ctx, user, key, domain.ProgressEntry{Content: "1단원"}))

	change, err := svc.AddWeek(ctx, user, 1)
	require.NoError(t, err)
	assert.True(t, change.AtHead)
	assert.Equal(t, 1, change.NewWeekID)

	weeks, err := svc.Weeks(ctx, user)
	require.NoError(t, err)
	require.Len(t, weeks, 4)
	assert.Equal(t, "08-18 ~ 08-22", weeks[0].Dates)
	assert.Equal(t, "08-25 ~ 08-30", weeks[1].Dates)

	// The entry followed its week from id 1 to id 2.
	shifted := domain.ProgressKey{WeekID: 2, ClassID: "3-5", Subject: "과학A", Session: 1}
	entry, err := progress.Get(ctx, user, shifted)
	require.NoError(t, err)
	assert.Equal(t, "1단원", entry.Content)

	old, err := progress.Get(ctx, user, key)
	require.NoError(t, err)
	assert.True(t, old.Blank())
}

func TestScheduleService_AddWeek_MiddleOfOddRegistryInsertsAtHead(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	// Index 1 of 3 sits in the front half (1 < 3/2), so the new week goes
	// to the head, not the tail.
	change, err := svc.AddWeek(ctx, user, 2)
	require.NoError(t, err)
	assert.True(t, change.AtHead)
	assert.Equal(t, 1, change.NewWeekID)

	weeks, err := svc.Weeks(ctx, user)
	require.NoError(t, err)
	require.Len(t, weeks, 4)
	assert.Equal(t, "08-18 ~ 08-22", weeks[0].Dates)
	assert.Equal(t, "09-08 ~ 09-13", weeks[3].Dates)
}

func TestScheduleService_AddWeek_BackHalfAppends(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	change, err := svc.AddWeek(ctx, user, 3)
	require.NoError(t, err)
	assert.False(t, change.AtHead)
	assert.Equal(t, 4, change.NewWeekID)

	weeks, err := svc.Weeks(ctx, user)
	require.NoError(t, err)
	require.Len(t, weeks, 4)
	assert.Equal(t, "09-16 ~ 09-20", weeks[3].Dates)

	// The new week is seeded from the viewed week's timetable.
	view, err := svc.Timetable(ctx, user, 4)
	require.NoError(t, err)
	assert.Len(t, view.Slots, 19)
	assert.Empty(t, view.Progress)
}

func TestScheduleService_RemoveWeek_PersistsCompactedState(t *testing.T) {
	svc, progress, user := newScheduleFixture(t)
	ctx := context.Background()

	key3 := domain.ProgressKey{WeekID: 3, ClassID: "3-5", Subject: "과학A", Session: 1}
	require.NoError(t, progress.Set(ctx, user, key3, domain.ProgressEntry{Content: "3단원"}))

	require.NoError(t, svc.RemoveWeek(ctx, user, 2))

	weeks, err := svc.Weeks(ctx, user)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, "09-08 ~ 09-13", weeks[1].Dates)

	moved := domain.ProgressKey{WeekID: 2, ClassID: "3-5", Subject: "과학A", Session: 1}
	entry, err := progress.Get(ctx, user, moved)
	require.NoError(t, err)
	assert.Equal(t, "3단원", entry.Content)
}

func TestScheduleService_RemoveWeek_LastWeekBlocked(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.RemoveWeek(ctx, user, 1))
	require.NoError(t, svc.RemoveWeek(ctx, user, 1))

	err := svc.RemoveWeek(ctx, user, 1)
	assert.Error(t, err)

	weeks, werr := svc.Weeks(ctx, user)
	require.NoError(t, werr)
	assert.Len(t, weeks, 1)
}

func TestScheduleService_SaveSlot_AddAndEdit(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	added, err := svc.SaveSlot(ctx, user, 1, SlotInput{Day: 1, Period: 3, Subject: "수학", ClassID: "2-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "w1-", added.ID[:3])

	view, err := svc.Timetable(ctx, user, 1)
	require.NoError(t, err)
	assert.Len(t, view.Slots, 20)

	edited, err := svc.SaveSlot(ctx, user, 1, SlotInput{
		ID: added.ID, Day: 1, Period: 3, Subject: "수학", ClassID: "2-7",
	})
	require.NoError(t, err)
	assert.Equal(t, added.ID, edited.ID)
	assert.Equal(t, "2-7", edited.ClassID)
}

func TestScheduleService_SaveSlot_UnknownID(t *testing.T) {
	svc, _, user := newScheduleFixture(t)

	_, err := svc.SaveSlot(context.Background(), user, 1, SlotInput{ID: "w1-missing", Day: 1, Period: 1})
	assert.Error(t, err)
}

func TestScheduleService_DeleteAndMoveSlot(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.MoveSlot(ctx, user, 1, "w1-s1", 1, 4))
	view, err := svc.Timetable(ctx, user, 1)
	require.NoError(t, err)
	i := slotIndex(view.Slots, "w1-s1")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 4, view.Slots[i].Period)

	require.NoError(t, svc.DeleteSlot(ctx, user, 1, "w1-s1"))
	view, err = svc.Timetable(ctx, user, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, slotIndex(view.Slots, "w1-s1"))
	assert.Len(t, view.Slots, 18)
}

func TestScheduleService_SetBaseSchedule_NoChangeDetected(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	changed, err := svc.SetBaseSchedule(ctx, user, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	// Week 1 already matches the stored base.
	changed, err = svc.SetBaseSchedule(ctx, user, 1)
	require.NoError(t, err)
	assert.False(t, changed)

	// Editing week 2 makes it differ from the base again.
	_, err = svc.SaveSlot(ctx, user, 2, SlotInput{Day: 1, Period: 3, Subject: "수학", ClassID: "2-1"})
	require.NoError(t, err)
	changed, err = svc.SetBaseSchedule(ctx, user, 2)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestScheduleService_AddWeek_SeedsFromBaseWhenSet(t *testing.T) {
	svc, _, user := newScheduleFixture(t)
	ctx := context.Background()

	// Shrink week 1 to a single slot and make it the base.
	view, err := svc.Timetable(ctx, user, 1)
	require.NoError(t, err)
	for _, slot := range view.Slots[1:] {
		require.NoError(t, svc.DeleteSlot(ctx, user, 1, slot.ID))
	}
	changed, err := svc.SetBaseSchedule(ctx, user, 1)
	require.NoError(t, err)
	require.True(t, changed)

	change, err := svc.AddWeek(ctx, user, 3)
	require.NoError(t, err)

	newView, err := svc.Timetable(ctx, user, change.NewWeekID)
	require.NoError(t, err)
	assert.Len(t, newView.Slots, 1)
}
