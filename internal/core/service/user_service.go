package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Upsert creates or updates the user identified by email. An existing user
// gets a fresh last_login and, when supplied, a new display name. A missing
// user is created with the default display name when none is supplied.
//
// The find-then-write sequence can race with a concurrent upsert for the same
// email; the unique email index makes the losing insert fail with
// ErrUserExists, which is retried once as an update instead of surfacing an
// error to the caller.
func (s *UserService) Upsert(ctx context.Context, input ports.UpsertUserInput) (*ports.UserView, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return s.update(ctx, user, input.DisplayName)
	case errors.Is(err, domain.ErrUserNotFound):
		view, err := s.create(ctx, input)
		if errors.Is(err, domain.ErrUserExists) {
			// Lost a concurrent create race: the user exists now, so
			// degrade to the update branch.
			user, findErr := s.repo.FindByEmail(ctx, input.Email)
			if findErr != nil {
				return nil, fmt.Errorf("upsert user: %w", findErr)
			}
			return s.update(ctx, user, input.DisplayName)
		}
		return view, err
	default:
		return nil, fmt.Errorf("upsert user: %w", err)
	}
}

func (s *UserService) create(ctx context.Context, input ports.UpsertUserInput) (*ports.UserView, error) {
	now := time.Now().UTC()
	user := &domain.User{
		Email:       input.Email,
		DisplayName: domain.DefaultDisplayName,
		CreatedAt:   now,
		LastLogin:   now,
		IsActive:    true,
	}
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	s.logger.Info().Str("user_id", id).Str("email", user.Email).Msg("user created")
	view := toUserView(user)
	view.Created = true
	return view, nil
}

func (s *UserService) update(ctx context.Context, user *domain.User, displayName *string) (*ports.UserView, error) {
	user.LastLogin = time.Now().UTC()
	if displayName != nil {
		user.DisplayName = *displayName
	}

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("failed to update user")
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Debug().Str("user_id", user.ID).Str("email", user.Email).Msg("user login refreshed")
	return toUserView(user), nil
}

func toUserView(u *domain.User) *ports.UserView {
	return &ports.UserView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}
