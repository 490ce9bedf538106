package service

import (
	"context"
	"sort"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/repository"
	"github.com/sehyunpark/jindo/internal/timetable"
)

type progressService struct {
	stateStore
}

func NewProgressService(states repository.StateRepo) ProgressService {
	return &progressService{stateStore: stateStore{states: states}}
}

func (s *progressService) Get(ctx context.Context, user string, key domain.ProgressKey) (domain.ProgressEntry, error) {
	return s.loadProgress(ctx, user)[key.String()], nil
}

// Set stores the entry under the key, or deletes the key when both fields
// are blank. A blank entry never survives a save.
func (s *progressService) Set(ctx context.Context, user string, key domain.ProgressKey, entry domain.ProgressEntry) error {
	progress := s.loadProgress(ctx, user)
	if entry.Blank() {
		delete(progress, key.String())
	} else {
		progress[key.String()] = entry
	}
	s.save(ctx, user, repository.NSProgress, progress)
	return nil
}

// SetContent replaces only the content, preserving any memo. Used by the
// inline progress-table editor.
func (s *progressService) SetContent(ctx context.Context, user string, key domain.ProgressKey, content string) error {
	progress := s.loadProgress(ctx, user)
	entry := progress[key.String()]
	entry.Content = content
	if entry.Blank() {
		delete(progress, key.String())
	} else {
		progress[key.String()] = entry
	}
	s.save(ctx, user, repository.NSProgress, progress)
	return nil
}

func (s *progressService) Table(ctx context.Context, user, subject string) (*ProgressTableView, error) {
	weeks := s.loadWeeks(ctx, user)
	base := s.loadBase(ctx, user)
	schedules := s.loadSchedules(ctx, user, weeks, base)
	progress := s.loadProgress(ctx, user)

	counts := make(map[int]map[string]int, len(weeks))
	maxSessions := make(map[int]int, len(weeks))
	for _, w := range weeks {
		byClass := timetable.Counts(schedules[w.ID])[subject]
		counts[w.ID] = byClass
		for _, n := range byClass {
			if n > maxSessions[w.ID] {
				maxSessions[w.ID] = n
			}
		}
	}

	cells := make(map[string]domain.ProgressEntry, len(progress))
	for raw, entry := range progress {
		key, err := domain.ParseProgressKey(raw)
		if err != nil || key.Subject != subject {
			continue
		}
		cells[raw] = entry
	}

	return &ProgressTableView{
		Subject:     subject,
		Weeks:       weeks,
		Classes:     s.classesFor(schedules, base, subject),
		MaxSessions: maxSessions,
		Counts:      counts,
		Cells:       cells,
	}, nil
}

// Subjects lists every subject appearing in the base schedule (or the
// built-in template when none is set) and in any week, sorted.
func (s *progressService) Subjects(ctx context.Context, user string) ([]string, error) {
	weeks := s.loadWeeks(ctx, user)
	base := s.loadBase(ctx, user)
	schedules := s.loadSchedules(ctx, user, weeks, base)

	seen := make(map[string]bool)
	for _, slot := range templateOf(base) {
		if slot.Subject != "" {
			seen[slot.Subject] = true
		}
	}
	for _, slots := range schedules {
		for _, slot := range slots {
			if slot.Subject != "" {
				seen[slot.Subject] = true
			}
		}
	}

	subjects := make([]string, 0, len(seen))
	for subject := range seen {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects, nil
}

func (s *progressService) VisibleSubjects(ctx context.Context, user string) ([]string, error) {
	subjects, err := s.Subjects(ctx, user)
	if err != nil {
		return nil, err
	}
	hidden := make(map[string]bool)
	for _, h := range s.loadHidden(ctx, user) {
		hidden[h] = true
	}

	visible := subjects[:0]
	for _, subject := range subjects {
		if !hidden[subject] {
			visible = append(visible, subject)
		}
	}
	return visible, nil
}

func (s *progressService) HiddenSubjects(ctx context.Context, user string) ([]string, error) {
	return s.loadHidden(ctx, user), nil
}

func (s *progressService) SetHiddenSubjects(ctx context.Context, user string, hidden []string) error {
	if hidden == nil {
		hidden = []string{}
	}
	s.save(ctx, user, repository.NSHiddenSubjects, hidden)
	return nil
}

func (s *progressService) Classes(ctx context.Context, user, subject string) ([]string, error) {
	weeks := s.loadWeeks(ctx, user)
	base := s.loadBase(ctx, user)
	return s.classesFor(s.loadSchedules(ctx, user, weeks, base), base, subject), nil
}

// classesFor lists every class assigned to the subject across the template
// and all weeks, in natural order ("3-2" before "3-10").
func (s *progressService) classesFor(schedules map[int][]domain.ScheduleSlot, base []domain.ScheduleSlot, subject string) []string {
	if subject == "" {
		return nil
	}
	seen := make(map[string]bool)
	for _, slot := range templateOf(base) {
		if slot.Subject == subject && slot.ClassID != "" {
			seen[slot.ClassID] = true
		}
	}
	for _, slots := range schedules {
		for _, slot := range slots {
			if slot.Subject == subject && slot.ClassID != "" {
				seen[slot.ClassID] = true
			}
		}
	}

	classes := make([]string, 0, len(seen))
	for classID := range seen {
		classes = append(classes, classID)
	}
	sort.Slice(classes, func(i, j int) bool { return naturalLess(classes[i], classes[j]) })
	return classes
}

// templateOf returns the effective template: the stored base schedule, or
// the built-in one.
func templateOf(base []domain.ScheduleSlot) []domain.ScheduleSlot {
	if base != nil {
		return base
	}
	return domain.DefaultTemplate(0)
}
