package ports

import "context"

// UpsertUserInput carries the identity payload from the external provider.
// DisplayName is a pointer so "absent" and "empty string" are distinguishable:
// only a present value overwrites the stored display name on update.
type UpsertUserInput struct {
	Email       string
	DisplayName *string
}

// UserView is the external projection returned by the upsert.
// Created reports whether this call created the account (first upsert for the
// email) rather than refreshing an existing one.
type UserView struct {
	ID          string
	Email       string
	DisplayName string
	Created     bool
}

// UserService defines the create-or-update operation keyed by email.
type UserService interface {
	Upsert(ctx context.Context, input UpsertUserInput) (*UserView, error)
}
