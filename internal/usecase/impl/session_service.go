// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ulaz/internal/delivery/context"
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/repository"
	"ulaz/internal/domain/service"
	"ulaz/internal/errors"
	"ulaz/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authGateway service.AuthGateway
	sessions    repository.SessionRepository
	decoder     service.TokenDecoder
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthGateway service.AuthGateway
	Sessions    repository.SessionRepository
	Decoder     service.TokenDecoder
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		authGateway: params.AuthGateway,
		sessions:    params.Sessions,
		decoder:     params.Decoder,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges credentials for a token, decodes the identity out of it
// and persists the session. The token signature is not re-validated here;
// that is the backend's job.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Session, error) {
	token, err := srv.authGateway.Login(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	session, err := srv.decoder.Decode(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode login token")
	}

	if err := srv.sessions.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}
	srv.log(ctx).Info("Login succeeded", slog.Int64("user_id", session.UserID), slog.String("role", session.Role.String()))

	return session, nil
}

// Register creates an account. The password confirmation is checked before
// any network call; registration never logs the new account in.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) error {
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	err := srv.authGateway.Register(ctx, &service.Registration{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}
	srv.log(ctx).Info("Registration succeeded", slog.String("email", input.Email))

	return nil
}

// Logout clears the session unconditionally. A storage failure is logged
// rather than surfaced: the caller's session is gone either way, and every
// session consumer re-reads on next access.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessions.Clear(ctx); err != nil {
		srv.log(ctx).Warn("Failed to clear session storage", slog.Any("error", err))
	}

	return nil
}

// Current re-reads the persisted session on every call and re-derives the
// expiry from the token itself. An expired or undecodable token yields nil
// even though storage may still hold the raw value.
func (srv *sessionService) Current(ctx context.Context) *entity.Session {
	stored, err := srv.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Warn("Failed to load session", slog.Any("error", err))
		}

		return nil
	}

	session, err := srv.decoder.Decode(stored.Token)
	if err != nil || session.Expired(time.Now()) {
		return nil
	}

	return session
}

// IsAuthenticated reports whether a live session exists.
func (srv *sessionService) IsAuthenticated(ctx context.Context) bool {
	return srv.Current(ctx) != nil
}

// HasRole reports whether the current session carries the given role.
func (srv *sessionService) HasRole(ctx context.Context, role entity.Role) bool {
	session := srv.Current(ctx)

	return session != nil && session.Role == role
}
