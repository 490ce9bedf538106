package repository

import (
	"context"
	"errors"

	"github.com/sehyunpark/jindo/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrUserExists is returned when signing up an already-taken username.
var ErrUserExists = errors.New("user already exists")

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthSessionRepo tracks the single logged-in user.
type AuthSessionRepo interface {
	Current(ctx context.Context) (string, error)
	SetCurrent(ctx context.Context, username string) error
	Clear(ctx context.Context) error
}

// StateRepo stores per-user application state as one JSON document per
// (user, namespace). Load unmarshals into v and returns ErrNotFound when
// the document is absent; Save marshals v and upserts.
type StateRepo interface {
	Load(ctx context.Context, username, namespace string, v any) error
	Save(ctx context.Context, username, namespace string, v any) error
}

// State document namespaces.
const (
	NSWeeks          = "weeks"
	NSSchedules      = "schedules"
	NSProgress       = "progress"
	NSBaseSchedule   = "base_schedule"
	NSHiddenSubjects = "hidden_subjects"
	NSProgressOrder  = "progress_order"
)
