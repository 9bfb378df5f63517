// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ulaz/internal/domain/entity"
	"ulaz/internal/errors"
)

// ErrSessionNotFound is returned when no session is persisted.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists the single session of one client shell. It is
// the Go analog of the browser's key-value storage: implementations keep the
// session under the fixed keys token, id, username, uloga and email, and
// Clear removes all of them atomically.
//
// The stored session may go stale behind the process's back (another shell
// logging out against a shared backend store); consumers must re-read on
// every access instead of caching the result.
type SessionRepository interface {
	// Save persists the session, replacing any previous one.
	Save(ctx context.Context, session *entity.Session) error

	// Load returns the persisted session, or ErrSessionNotFound. The key
	// set does not include the expiry; the session store re-derives it
	// from the token at read time.
	Load(ctx context.Context) (*entity.Session, error)

	// Clear removes the persisted session. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
