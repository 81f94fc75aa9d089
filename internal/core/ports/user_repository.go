package ports

import (
	"context"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByEmail returns the user with the given email, or
	// domain.ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert persists a new user and returns its generated identifier.
	// A unique-index violation on email surfaces as domain.ErrUserExists.
	Insert(ctx context.Context, u *domain.User) (string, error)
	// Update persists in-place changes to display_name and last_login.
	Update(ctx context.Context, u *domain.User) error
}
