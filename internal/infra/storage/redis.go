package storage

import (
	"context"
	"strconv"

	"ulaz/config"
	"ulaz/internal/domain/entity"
	"ulaz/internal/domain/repository"
	"ulaz/internal/errors"

	"github.com/redis/go-redis/v9"
)

// sessionKey is the hash the session fields live under.
const sessionKey = "ulaz:session"

// redisRepository persists the session in a redis hash so it survives
// process restarts. Shells pointed at the same store observe each other's
// logins and logouts, which is why consumers must re-read on every access.
type redisRepository struct {
	client *redis.Client
}

// NewRedisRepository is the constructor for redisRepository.
func NewRedisRepository(cfg *config.RedisConfig) (repository.SessionRepository, error) {
	if cfg == nil {
		return nil, errors.New("redis session storage requires a redis config block")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &redisRepository{client: client}, nil
}

// Save writes every session field into the hash in one command.
func (r *redisRepository) Save(ctx context.Context, session *entity.Session) error {
	err := r.client.HSet(ctx, sessionKey,
		keyToken, session.Token,
		keyID, strconv.FormatInt(session.UserID, 10),
		keyUsername, session.Username,
		keyRole, session.Role.String(),
		keyEmail, session.Email,
	).Err()

	return errors.Wrap(err, "failed to save session")
}

// Load returns the persisted session fields, or ErrSessionNotFound.
func (r *redisRepository) Load(ctx context.Context) (*entity.Session, error) {
	fields, err := r.client.HGetAll(ctx, sessionKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if fields[keyToken] == "" {
		return nil, repository.ErrSessionNotFound
	}

	return sessionFromFields(fields), nil
}

// Clear deletes the whole hash, removing every key atomically.
func (r *redisRepository) Clear(ctx context.Context) error {
	return errors.Wrap(r.client.Del(ctx, sessionKey).Err(), "failed to clear session")
}
