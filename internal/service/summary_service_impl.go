package service

import (
	"context"

	"github.com/sehyunpark/jindo/internal/repository"
	"github.com/sehyunpark/jindo/internal/summary"
)

type summaryService struct {
	stateStore
}

func NewSummaryService(states repository.StateRepo) SummaryService {
	return &summaryService{stateStore: stateStore{states: states}}
}

// Summary returns the subject's distinct progress contents: the derived
// default order with the user's stored manual order merged on top.
func (s *summaryService) Summary(ctx context.Context, user, subject string) ([]string, error) {
	weeks := s.loadWeeks(ctx, user)
	schedules := s.loadSchedules(ctx, user, weeks, s.loadBase(ctx, user))
	progress := s.loadProgress(ctx, user)

	entries := summary.Collect(schedules, progress)
	defaultOrder := summary.DefaultOrder(entries, subject)
	return summary.Merge(defaultOrder, s.loadOrder(ctx, user)[subject]), nil
}

// Reorder replaces the stored manual order for one subject; other subjects'
// orders are untouched.
func (s *summaryService) Reorder(ctx context.Context, user, subject string, order []string) error {
	stored := s.loadOrder(ctx, user)
	stored[subject] = order
	s.save(ctx, user, repository.NSProgressOrder, stored)
	return nil
}
