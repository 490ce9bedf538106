package service

import (
	"context"
	"errors"

	"github.com/sehyunpark/jindo/internal/domain"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNotLoggedIn is returned when an operation needs an active session.
var ErrNotLoggedIn = errors.New("not logged in")

type AuthService interface {
	SignUp(ctx context.Context, username, password string) error
	LogIn(ctx context.Context, username, password string) error
	LogOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (string, error)
}

// SlotInput is the schedule-edit payload: an empty ID appends a new slot, a
// present ID replaces the matching slot's mutable fields.
type SlotInput struct {
	ID      string
	Day     int
	Period  int
	Subject string
	ClassID string
}

// WeekChange reports the outcome of adding a week.
type WeekChange struct {
	NewWeekID int
	AtHead    bool
}

// TimetableView is one week's grid with derived session numbers and the
// progress entries attached to each slot.
type TimetableView struct {
	Week     domain.Week
	Slots    []domain.ScheduleSlot
	Sessions map[string]int                  // slot id -> session number
	Progress map[string]domain.ProgressEntry // slot id -> entry
}

type ScheduleService interface {
	Weeks(ctx context.Context, user string) ([]domain.Week, error)
	CurrentWeekID(ctx context.Context, user string) (int, error)
	Timetable(ctx context.Context, user string, weekID int) (*TimetableView, error)
	AddWeek(ctx context.Context, user string, viewedWeekID int) (*WeekChange, error)
	RemoveWeek(ctx context.Context, user string, weekID int) error
	SaveSlot(ctx context.Context, user string, weekID int, input SlotInput) (*domain.ScheduleSlot, error)
	DeleteSlot(ctx context.Context, user string, weekID int, slotID string) error
	MoveSlot(ctx context.Context, user string, weekID int, slotID string, day, period int) error
	SetBaseSchedule(ctx context.Context, user string, weekID int) (bool, error)
	BaseSchedule(ctx context.Context, user string) ([]domain.ScheduleSlot, error)
}

// ProgressTableView is the cross-week progress table for one subject: one
// row per class, one column per (week, session).
type ProgressTableView struct {
	Subject     string
	Weeks       []domain.Week
	Classes     []string
	MaxSessions map[int]int                     // week id -> widest session count for Subject
	Counts      map[int]map[string]int          // week id -> class id -> session count for Subject
	Cells       map[string]domain.ProgressEntry // progress key string -> entry
}

type ProgressService interface {
	Get(ctx context.Context, user string, key domain.ProgressKey) (domain.ProgressEntry, error)
	Set(ctx context.Context, user string, key domain.ProgressKey, entry domain.ProgressEntry) error
	SetContent(ctx context.Context, user string, key domain.ProgressKey, content string) error
	Table(ctx context.Context, user, subject string) (*ProgressTableView, error)
	Subjects(ctx context.Context, user string) ([]string, error)
	VisibleSubjects(ctx context.Context, user string) ([]string, error)
	HiddenSubjects(ctx context.Context, user string) ([]string, error)
	SetHiddenSubjects(ctx context.Context, user string, hidden []string) error
	Classes(ctx context.Context, user, subject string) ([]string, error)
}

type SummaryService interface {
	Summary(ctx context.Context, user, subject string) ([]string, error)
	Reorder(ctx context.Context, user, subject string, order []string) error
}
