// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ulaz/internal/domain/entity"
)

// LoginInput defines the credentials for signing in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data for creating a customer account. The
// password confirmation is checked locally, before any network traffic.
type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// SessionUsecase is the single source of truth for who is using this client.
// State machine: Anonymous -> (login success) -> Authenticated -> (logout or
// observed token expiry) -> Anonymous. Loading and error presentation are
// caller-tracked UI state, not session state.
type SessionUsecase interface {
	// Login exchanges credentials for a session and persists it.
	Login(ctx context.Context, input LoginInput) (*entity.Session, error)

	// Register creates an account. It does not log the new account in.
	Register(ctx context.Context, input RegisterInput) error

	// Logout clears the session unconditionally; it always succeeds.
	// Components holding session-derived state must re-read after this.
	Logout(ctx context.Context) error

	// Current returns the session, or nil if none exists or the token has
	// expired. Expiry is evaluated lazily at every read, never by a timer,
	// so externally-observed session changes take effect on the next read.
	Current(ctx context.Context) *entity.Session

	// IsAuthenticated reports whether Current returns a live session.
	IsAuthenticated(ctx context.Context) bool

	// HasRole reports whether the current session carries the given role.
	HasRole(ctx context.Context, role entity.Role) bool
}
