package domain

import (
	"errors"
	"time"
)

// DefaultDisplayName is assigned when the identity provider supplies no name.
const DefaultDisplayName = "Unknown User"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an end-user account synchronized from the external identity
// provider. Email is unique (enforced by a unique index on the users
// collection); LastLogin is refreshed on every upsert.
type User struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Email       string    `json:"email" bson:"email"`
	DisplayName string    `json:"display_name" bson:"display_name"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	LastLogin   time.Time `json:"last_login" bson:"last_login"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
}
