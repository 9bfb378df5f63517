package api

import (
	"context"
	"net/http"

	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/service"
	"ulaz/internal/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"lozinka"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"korisnicko_ime"`
	Password string `json:"lozinka"`
}

// Login exchanges credentials for a signed token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/login",
		path:     "/login",
		body:     loginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		var rejected *domainerrors.RejectedError
		if errors.As(err, &rejected) && rejected.HTTPCode() == http.StatusUnauthorized {
			return "", errors.Wrap(domainerrors.ErrInvalidCredentials, rejected.Message())
		}

		return "", err
	}
	if resp.Token == "" {
		return "", errors.Wrap(domainerrors.ErrBackendUnavailable, "login response carried no token")
	}

	return resp.Token, nil
}

// Register creates a new customer account; it does not log the account in.
func (c *Client) Register(ctx context.Context, reg *service.Registration) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/korisnici",
		path:     "/korisnici",
		body: registerRequest{
			Email:    reg.Email,
			Username: reg.Username,
			Password: reg.Password,
		},
	}, nil)
}
