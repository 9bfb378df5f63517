package handler

import (
	"log/slog"
	"net/http"

	"ulaz/internal/delivery/http/response"
	"ulaz/internal/domain/entity"
	"ulaz/internal/errors"
	"ulaz/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// sessionView is the session shape exposed to the shell. The raw token is
// deliberately absent; it never leaves the engine.
type sessionView struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func newSessionView(s *entity.Session) *sessionView {
	return &sessionView{
		UserID:   s.UserID,
		Username: s.Username,
		Email:    s.Email,
		Role:     s.Role.String(),
	}
}

// Login handles the sign-in request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	session, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(session), "Login successful")
}

// Register handles the account creation request.
func (h *SessionHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Registration successful")
}

// Logout handles the sign-out request.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Current returns the live session, or an anonymous marker when none exists.
func (h *SessionHandler) Current(c echo.Context) error {
	session := h.uc.Current(c.Request().Context())
	if session == nil {
		return response.Success(c, http.StatusOK, map[string]any{"authenticated": false}, "")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"authenticated": true,
		"session":       newSessionView(session),
	}, "")
}
