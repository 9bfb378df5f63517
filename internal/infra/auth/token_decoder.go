// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"ulaz/internal/domain/entity"
	"ulaz/internal/domain/service"
	"ulaz/internal/errors"
)

// tokenDecoder is a concrete implementation of the TokenDecoder interface
// using the JWT standard. It reads claims without verifying the signature:
// verification happens on the backend, which is the only holder of the key.
type tokenDecoder struct {
	parser *jwt.Parser
}

// NewTokenDecoder is the constructor for tokenDecoder.
func NewTokenDecoder() service.TokenDecoder {
	return &tokenDecoder{parser: jwt.NewParser()}
}

// Decode parses the backend token's claim set into a session. The expected
// claims are id, username, uloga, email and exp.
func (d *tokenDecoder) Decode(tokenString string) (*entity.Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	userID, err := claimInt64(claims, "id")
	if err != nil {
		return nil, err
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil, errors.New("token has no usable exp claim")
	}

	return &entity.Session{
		UserID:    userID,
		Username:  claimString(claims, "username"),
		Email:     claimString(claims, "email"),
		Role:      entity.RoleFromString(claimString(claims, "uloga")),
		Token:     tokenString,
		ExpiresAt: expiry.Time,
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}

	return ""
}

func claimInt64(claims jwt.MapClaims, key string) (int64, error) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, errors.Errorf("token claim %q is missing or not numeric", key)
	}
}
