package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehyunpark/jindo/internal/domain"
)

func entry(weekID int, classID string, day, period int, content string) Entry {
	return Entry{WeekID: weekID, ClassID: classID, Day: day, Period: period, Subject: "과학A", Content: content}
}

func TestCollect_ChronologicalNonEmptyOnly(t *testing.T) {
	schedules := map[int][]domain.ScheduleSlot{
		2: {
			{ID: "w2-s1", Day: 1, Period: 1, Subject: "과학A", ClassID: "3-5"},
		},
		1: {
			{ID: "w1-s2", Day: 3, Period: 2, Subject: "과학A", ClassID: "3-5"},
			{ID: "w1-s1", Day: 1, Period: 1, Subject: "과학A", ClassID: "3-5"},
		},
	}
	progress := domain.ProgressMap{
		"w1-c3-5-sub과학A-s1": {Content: "1단원"},
		"w1-c3-5-sub과학A-s2": {Memo: "메모만 있음"},
		"w2-c3-5-sub과학A-s1": {Content: "2단원"},
	}

	entries := Collect(schedules, progress)

	require.Len(t, entries, 2)
	assert.Equal(t, "1단원", entries[0].Content)
	assert.Equal(t, 1, entries[0].WeekID)
	assert.Equal(t, "2단원", entries[1].Content)
	assert.Equal(t, 2, entries[1].WeekID)
}

func TestReferenceClass_MostEntriesWins(t *testing.T) {
	entries := []Entry{
		entry(1, "3-1", 1, 1, "a"),
		entry(1, "3-2", 1, 2, "a"),
		entry(1, "3-2", 2, 1, "b"),
	}
	assert.Equal(t, "3-2", ReferenceClass(entries))
}

func TestReferenceClass_TieGoesToEarlierFirstEntry(t *testing.T) {
	entries := []Entry{
		entry(1, "3-4", 1, 3, "a"),
		entry(1, "3-1", 1, 5, "a"),
		entry(1, "3-4", 2, 1, "b"),
		entry(1, "3-1", 2, 2, "b"),
	}
	assert.Equal(t, "3-4", ReferenceClass(entries))
}

func TestReferenceClass_Empty(t *testing.T) {
	assert.Equal(t, "", ReferenceClass(nil))
}

func TestDefaultOrder_FollowsReferenceTimeline(t *testing.T) {
	// 3-5 is the reference (3 entries). 3-3 logged "2단원" before the
	// reference did, but the reference's timeline decides its position.
	entries := []Entry{
		entry(1, "3-5", 1, 1, "1단원"),
		entry(1, "3-3", 1, 2, "2단원"),
		entry(1, "3-5", 2, 6, "2단원"),
		entry(2, "3-5", 1, 1, "3단원"),
	}

	assert.Equal(t, []string{"1단원", "2단원", "3단원"}, DefaultOrder(entries, "과학A"))
}

func TestDefaultOrder_NonReferenceContentFallsBackToOwnStamp(t *testing.T) {
	// "보강" never appears in the reference class; it slots in by its own
	// chronology between the reference contents.
	entries := []Entry{
		entry(1, "3-5", 1, 1, "1단원"),
		entry(1, "3-3", 2, 1, "보강"),
		entry(1, "3-5", 3, 1, "2단원"),
		entry(1, "3-5", 4, 1, "3단원"),
	}

	assert.Equal(t, []string{"1단원", "보강", "2단원", "3단원"}, DefaultOrder(entries, "과학A"))
}

func TestDefaultOrder_FiltersSubject(t *testing.T) {
	entries := []Entry{
		entry(1, "3-5", 1, 1, "1단원"),
		{WeekID: 1, ClassID: "3-6", Day: 1, Period: 2, Subject: "자율", Content: "학급회의"},
	}

	assert.Equal(t, []string{"1단원"}, DefaultOrder(entries, "과학A"))
	assert.Equal(t, []string{"학급회의"}, DefaultOrder(entries, "자율"))
}

func TestDefaultOrder_Empty(t *testing.T) {
	assert.Nil(t, DefaultOrder(nil, "과학A"))
}

func TestDefaultOrder_AppendKeepsExistingPrefix(t *testing.T) {
	entries := []Entry{
		entry(1, "3-5", 1, 1, "A"),
		entry(1, "3-5", 2, 1, "B"),
		entry(1, "3-5", 3, 1, "C"),
	}
	before := DefaultOrder(entries, "과학A")
	require.Equal(t, []string{"A", "B", "C"}, before)

	appended := append(entries, entry(2, "3-5", 1, 1, "D"))
	after := DefaultOrder(appended, "과학A")

	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, []string{"A", "B", "C", "D"}, after)
}

func TestMerge_StoredOrderWinsForSurvivors(t *testing.T) {
	got := Merge([]string{"A", "B", "C"}, []string{"C", "A"})
	assert.Equal(t, []string{"C", "A", "B"}, got)
}

func TestMerge_DropsStoredContentsNoLongerDerivable(t *testing.T) {
	got := Merge([]string{"A", "B"}, []string{"X", "B", "A"})
	assert.Equal(t, []string{"B", "A"}, got)
}

func TestMerge_EmptyStoredIsDefault(t *testing.T) {
	got := Merge([]string{"A", "B"}, nil)
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestMerge_IgnoresDuplicateStoredEntries(t *testing.T) {
	got := Merge([]string{"A", "B"}, []string{"B", "B", "A"})
	assert.Equal(t, []string{"B", "A"}, got)
}

func TestCollectAndOrder_TemplateScenario(t *testing.T) {
	// Two weeks on the built-in timetable; 3-5 logs both its sessions in
	// week 1 while the others trail behind.
	schedules := map[int][]domain.ScheduleSlot{
		1: domain.DefaultTemplate(1),
		2: domain.DefaultTemplate(2),
	}
	progress := domain.ProgressMap{
		"w1-c3-5-sub과학A-s1":  {Content: "1. 힘과 에너지"},
		"w1-c3-5-sub과학A-s2":  {Content: "2. 운동량"},
		"w1-c3-3-sub과학A-s1":  {Content: "1. 힘과 에너지"},
		"w2-c3-5-sub과학A-s1":  {Content: "3. 충격량"},
		"w2-c3-10-sub과학A-s1": {Content: "2. 운동량"},
	}

	entries := Collect(schedules, progress)
	order := DefaultOrder(entries, "과학A")

	assert.Equal(t, []string{"1. 힘과 에너지", "2. 운동량", "3. 충격량"}, order)
}
