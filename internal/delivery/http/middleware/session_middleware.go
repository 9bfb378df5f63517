package middleware

import (
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes on the locally stored session. Expiry is
// re-evaluated on every request, so a token that lapsed between requests is
// rejected here without any backend round trip.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewSessionMiddleware creates a new session guard middleware
func NewSessionMiddleware(sessions usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
	}
}

// RequireSession rejects requests without a live session.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.sessions.IsAuthenticated(c.Request().Context()) {
			return domainerrors.ErrNotAuthenticated
		}

		return next(c)
	}
}

// RequireRole rejects requests whose session lacks the given role.
func (m *SessionMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.sessions.HasRole(c.Request().Context(), role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
