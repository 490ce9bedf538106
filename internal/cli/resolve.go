package cli

import (
	"context"
	"fmt"

	"github.com/sehyunpark/jindo/internal/service"
)

// requireUser returns the logged-in username or a friendly error.
func requireUser(ctx context.Context, app *App) (string, error) {
	user, err := app.Auth.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("no active session; run \"jindo login\" first")
	}
	return user, nil
}

// resolveWeek turns the --week flag into a concrete week id: an explicit
// value wins, else the week containing today, else the first week.
func resolveWeek(ctx context.Context, app *App, user string, flag int) (int, error) {
	if flag > 0 {
		return flag, nil
	}
	current, err := app.Schedule.CurrentWeekID(ctx, user)
	if err != nil {
		return 0, err
	}
	if current > 0 {
		return current, nil
	}
	weeks, err := app.Schedule.Weeks(ctx, user)
	if err != nil {
		return 0, err
	}
	if len(weeks) == 0 {
		return 0, fmt.Errorf("no weeks registered")
	}
	return weeks[0].ID, nil
}

// resolveSubject turns the --subject flag into a concrete subject: an
// explicit value wins, else the first visible subject.
func resolveSubject(ctx context.Context, app *App, user, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	visible, err := app.Progress.VisibleSubjects(ctx, user)
	if err != nil {
		return "", err
	}
	if len(visible) == 0 {
		return "", fmt.Errorf("no visible subjects; check \"jindo subject list\"")
	}
	return visible[0], nil
}

// slotAt finds the slot occupying (day, period) in the given view, if any.
func slotAt(view *service.TimetableView, day, period int) (idx int, ok bool) {
	for i, slot := range view.Slots {
		if slot.Day == day && slot.Period == period {
			return i, true
		}
	}
	return 0, false
}
