package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/repository"
)

// stateStore wraps the state-document repository with the load/save policy
// shared by all services: an absent document yields the default value, a
// corrupt document is logged and replaced by the default, and a failed save
// is logged and swallowed (in-memory state stays authoritative).
type stateStore struct {
	states repository.StateRepo
}

func (s stateStore) loadWeeks(ctx context.Context, user string) []domain.Week {
	var weeks []domain.Week
	if err := s.load(ctx, user, repository.NSWeeks, &weeks); err != nil || len(weeks) == 0 {
		return domain.DefaultWeeks()
	}
	return weeks
}

// loadSchedules returns the per-week slot lists, generating them from the
// base schedule (or the built-in template) when nothing is stored yet.
func (s stateStore) loadSchedules(ctx context.Context, user string, weeks []domain.Week, base []domain.ScheduleSlot) map[int][]domain.ScheduleSlot {
	var schedules map[int][]domain.ScheduleSlot
	if err := s.load(ctx, user, repository.NSSchedules, &schedules); err != nil || len(schedules) == 0 {
		return domain.DefaultSchedules(weeks, base)
	}
	return schedules
}

func (s stateStore) loadProgress(ctx context.Context, user string) domain.ProgressMap {
	var progress domain.ProgressMap
	if err := s.load(ctx, user, repository.NSProgress, &progress); err != nil || progress == nil {
		return domain.ProgressMap{}
	}
	return progress
}

func (s stateStore) loadBase(ctx context.Context, user string) []domain.ScheduleSlot {
	var base []domain.ScheduleSlot
	if err := s.load(ctx, user, repository.NSBaseSchedule, &base); err != nil {
		return nil
	}
	return base
}

func (s stateStore) loadHidden(ctx context.Context, user string) []string {
	var hidden []string
	if err := s.load(ctx, user, repository.NSHiddenSubjects, &hidden); err != nil {
		return domain.DefaultHiddenSubjects()
	}
	if hidden == nil {
		hidden = []string{}
	}
	return hidden
}

func (s stateStore) loadOrder(ctx context.Context, user string) map[string][]string {
	var order map[string][]string
	if err := s.load(ctx, user, repository.NSProgressOrder, &order); err != nil || order == nil {
		return map[string][]string{}
	}
	return order
}

// load distinguishes "absent" (expected, silent) from "broken" (logged).
// Either way the caller falls back to its default.
func (s stateStore) load(ctx context.Context, user, namespace string, v any) error {
	err := s.states.Load(ctx, user, namespace, v)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		slog.Warn("loading state document, using defaults", "namespace", namespace, "user", user, "error", err)
	}
	return err
}

// save persists one namespace, logging and swallowing failures.
func (s stateStore) save(ctx context.Context, user, namespace string, v any) {
	if err := s.states.Save(ctx, user, namespace, v); err != nil {
		slog.Error("saving state document", "namespace", namespace, "user", user, "error", err)
	}
}

// weekIndex returns the position of the week with the given id, or -1.
func weekIndex(weeks []domain.Week, weekID int) int {
	for i, w := range weeks {
		if w.ID == weekID {
			return i
		}
	}
	return -1
}

// naturalLess orders class ids so that "3-2" sorts before "3-10": digit runs
// compare numerically, everything else byte-wise.
func naturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		aDigit, bDigit := isDigit(a[0]), isDigit(b[0])
		if aDigit && bDigit {
			aNum, aRest := takeNumber(a)
			bNum, bRest := takeNumber(b)
			if aNum != bNum {
				return aNum < bNum
			}
			a, b = aRest, bRest
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func takeNumber(s string) (int, string) {
	i := 0
	n := 0
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:]
}
