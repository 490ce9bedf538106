package domain

import "strconv"

// DefaultWeeks returns the three-week registry a new user starts with.
func DefaultWeeks() []Week {
	return []Week{
		{ID: 1, Label: "01주", Dates: "08-25 ~ 08-30"},
		{ID: 2, Label: "02주", Dates: "09-01 ~ 09-06"},
		{ID: 3, Label: "03주", Dates: "09-08 ~ 09-13"},
	}
}

// DefaultHiddenSubjects returns the subjects hidden from summary and progress
// views until the user says otherwise.
func DefaultHiddenSubjects() []string {
	return []string{"자율"}
}

// defaultTemplate is the built-in weekly timetable used to seed a new user's
// schedule when no base schedule has been saved.
var defaultTemplate = []ScheduleSlot{
	{Day: 1, Period: 1, Subject: "과학A", ClassID: "3-5"},
	{Day: 1, Period: 2, Subject: "과학A", ClassID: "3-3"},
	{Day: 1, Period: 5, Subject: "과학A", ClassID: "3-6"},
	{Day: 2, Period: 4, Subject: "과학A", ClassID: "3-9"},
	{Day: 2, Period: 5, Subject: "과학A", ClassID: "3-7"},
	{Day: 2, Period: 6, Subject: "과학A", ClassID: "3-5"},
	{Day: 2, Period: 7, Subject: "과학A", ClassID: "3-10"},
	{Day: 3, Period: 1, Subject: "과학A", ClassID: "3-10"},
	{Day: 3, Period: 3, Subject: "과학A", ClassID: "3-8"},
	{Day: 3, Period: 5, Subject: "과학A", ClassID: "3-2"},
	{Day: 3, Period: 6, Subject: "과학A", ClassID: "3-4"},
	{Day: 4, Period: 1, Subject: "과학A", ClassID: "3-7"},
	{Day: 4, Period: 2, Subject: "과학A", ClassID: "3-8"},
	{Day: 4, Period: 5, Subject: "과학A", ClassID: "3-6"},
	{Day: 4, Period: 6, Subject: "과학A", ClassID: "3-2"},
	{Day: 5, Period: 2, Subject: "과학A", ClassID: "3-3"},
	{Day: 5, Period: 4, Subject: "과학A", ClassID: "3-4"},
	{Day: 5, Period: 5, Subject: "과학A", ClassID: "3-9"},
	{Day: 5, Period: 7, Subject: "자율", ClassID: "3-6"},
}

// DefaultTemplate returns a copy of the built-in timetable template with
// slot ids assigned for the given week.
func DefaultTemplate(weekID int) []ScheduleSlot {
	slots := make([]ScheduleSlot, len(defaultTemplate))
	for i, s := range defaultTemplate {
		s.ID = SlotID(weekID, "s"+strconv.Itoa(i+1))
		slots[i] = s
	}
	return slots
}

// DefaultSchedules builds the initial per-week schedule map for the given
// weeks, seeding each from base when provided, else the built-in template.
func DefaultSchedules(weeks []Week, base []ScheduleSlot) map[int][]ScheduleSlot {
	schedules := make(map[int][]ScheduleSlot, len(weeks))
	for _, w := range weeks {
		if base == nil {
			schedules[w.ID] = DefaultTemplate(w.ID)
			continue
		}
		slots := make([]ScheduleSlot, len(base))
		for i, s := range base {
			s.ID = SlotID(w.ID, "s"+strconv.Itoa(i+1))
			slots[i] = s
		}
		schedules[w.ID] = slots
	}
	return schedules
}
