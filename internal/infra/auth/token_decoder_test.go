package auth

import (
	"testing"
	"time"

	"ulaz/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	return signed
}

func TestDecode_FullClaimSet(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{
		"id":       float64(42),
		"username": "ana",
		"uloga":    "korisnik",
		"email":    "ana@example.com",
		"exp":      expiry.Unix(),
	})

	session, err := NewTokenDecoder().Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, "ana", session.Username)
	assert.Equal(t, "ana@example.com", session.Email)
	assert.Equal(t, entity.RoleCustomer, session.Role)
	assert.Equal(t, raw, session.Token)
	assert.True(t, session.ExpiresAt.Equal(expiry))
}

func TestDecode_SignatureIsNotChecked(t *testing.T) {
	// Same claims signed with a different key still decode: the backend is
	// the only verifier, the client reads claims as data.
	raw := signedToken(t, jwt.MapClaims{
		"id":  float64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	session, err := NewTokenDecoder().Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
}

func TestDecode_UnknownRoleDegradesToGuest(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{
		"id":    float64(1),
		"uloga": "superadmin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	session, err := NewTokenDecoder().Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGuest, session.Role)
}

func TestDecode_MalformedToken(t *testing.T) {
	_, err := NewTokenDecoder().Decode("not-a-token")
	assert.Error(t, err)
}

func TestDecode_MissingIDClaim(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{
		"username": "ana",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewTokenDecoder().Decode(raw)
	assert.Error(t, err)
}

func TestDecode_MissingExpClaim(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{
		"id": float64(1),
	})

	_, err := NewTokenDecoder().Decode(raw)
	assert.Error(t, err)
}
