package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/repository"
)

type authService struct {
	users    repository.UserRepo
	sessions repository.AuthSessionRepo
	states   repository.StateRepo
}

func NewAuthService(users repository.UserRepo, sessions repository.AuthSessionRepo, states repository.StateRepo) AuthService {
	return &authService{users: users, sessions: sessions, states: states}
}

// SignUp registers a new user, seeds their default state, and logs them in.
func (s *authService) SignUp(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	if err := s.seedState(ctx, username); err != nil {
		return fmt.Errorf("seeding initial state: %w", err)
	}

	return s.sessions.SetCurrent(ctx, username)
}

func (s *authService) LogIn(ctx context.Context, username, password string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return s.sessions.SetCurrent(ctx, username)
}

func (s *authService) LogOut(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) (string, error) {
	username, err := s.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}
	return username, nil
}

// seedState writes a fresh user's defaults: three weeks on the built-in
// template, no progress, no base schedule, no manual orders.
func (s *authService) seedState(ctx context.Context, username string) error {
	weeks := domain.DefaultWeeks()
	seeds := []struct {
		namespace string
		value     any
	}{
		{repository.NSWeeks, weeks},
		{repository.NSSchedules, domain.DefaultSchedules(weeks, nil)},
		{repository.NSProgress, domain.ProgressMap{}},
		{repository.NSHiddenSubjects, domain.DefaultHiddenSubjects()},
		{repository.NSBaseSchedule, nil},
		{repository.NSProgressOrder, map[string][]string{}},
	}
	for _, seed := range seeds {
		if err := s.states.Save(ctx, username, seed.namespace, seed.value); err != nil {
			return err
		}
	}
	return nil
}
