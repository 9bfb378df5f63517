package storage

import (
	"context"
	"strconv"
	"sync"

	"ulaz/internal/domain/entity"
	"ulaz/internal/domain/repository"
)

// memoryRepository keeps the session in process memory, matching the
// lifetime of a browser tab. The zero value is ready for use.
type memoryRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryRepository is the constructor for memoryRepository.
func NewMemoryRepository() repository.SessionRepository {
	return &memoryRepository{values: make(map[string]string)}
}

// Save persists the session under the fixed keys, replacing any previous one.
func (r *memoryRepository) Save(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[keyToken] = session.Token
	r.values[keyID] = strconv.FormatInt(session.UserID, 10)
	r.values[keyUsername] = session.Username
	r.values[keyRole] = session.Role.String()
	r.values[keyEmail] = session.Email

	return nil
}

// Load returns the persisted session fields, or ErrSessionNotFound.
func (r *memoryRepository) Load(_ context.Context) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.values[keyToken]
	if !ok || token == "" {
		return nil, repository.ErrSessionNotFound
	}

	return sessionFromFields(r.values), nil
}

// Clear removes every session key in one step.
func (r *memoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values = make(map[string]string)

	return nil
}

// sessionFromFields rebuilds a session from the raw stored key set.
// ExpiresAt stays zero; the session store recovers it from the token.
func sessionFromFields(fields map[string]string) *entity.Session {
	userID, _ := strconv.ParseInt(fields[keyID], 10, 64)

	return &entity.Session{
		UserID:   userID,
		Username: fields[keyUsername],
		Email:    fields[keyEmail],
		Role:     entity.RoleFromString(fields[keyRole]),
		Token:    fields[keyToken],
	}
}
