// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import "ulaz/internal/domain/entity"

// TokenDecoder extracts the session identity from the backend's signed
// token. The signature is deliberately not re-validated: the backend signed
// the token and is the only party that verifies it. The client treats the
// token as an opaque credential plus a readable claim set.
type TokenDecoder interface {
	// Decode parses the token's claims into a session. It fails only on a
	// structurally malformed token, never on signature grounds.
	Decode(token string) (*entity.Session, error)
}
