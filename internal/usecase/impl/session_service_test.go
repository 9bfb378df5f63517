package impl

import (
	"context"
	"testing"
	"time"

	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/infra/storage"
	"ulaz/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(auth *fakeAuthGateway, decoder *fakeDecoder) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		AuthGateway: auth,
		Sessions:    storage.NewMemoryRepository(),
		Decoder:     decoder,
		Logger:      testLogger(),
	})
}

func TestSessionService_LoginPersistsDecodedSession(t *testing.T) {
	auth := &fakeAuthGateway{token: "signed-token"}
	decoder := &fakeDecoder{sessions: map[string]*entity.Session{
		"signed-token": {
			UserID:    42,
			Username:  "ana",
			Email:     "ana@example.com",
			Role:      entity.RoleCustomer,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	svc := newSessionService(auth, decoder)
	ctx := context.Background()

	session, err := svc.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "tajna"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, entity.RoleCustomer, session.Role)

	current := svc.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "ana", current.Username)
	assert.True(t, svc.IsAuthenticated(ctx))
	assert.True(t, svc.HasRole(ctx, entity.RoleCustomer))
	assert.False(t, svc.HasRole(ctx, entity.RoleAdmin))
}

func TestSessionService_LoginFailureLeavesAnonymous(t *testing.T) {
	auth := &fakeAuthGateway{loginErr: domainerrors.ErrInvalidCredentials}
	svc := newSessionService(auth, &fakeDecoder{})
	ctx := context.Background()

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "kriva"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, svc.Current(ctx))
}

func TestSessionService_RegisterPasswordMismatchNeverHitsNetwork(t *testing.T) {
	auth := &fakeAuthGateway{}
	svc := newSessionService(auth, &fakeDecoder{})

	err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:           "ana@example.com",
		Username:        "ana",
		Password:        "tajna1",
		ConfirmPassword: "tajna2",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	assert.Zero(t, auth.registerCalls)
}

func TestSessionService_RegisterDoesNotLogIn(t *testing.T) {
	auth := &fakeAuthGateway{}
	svc := newSessionService(auth, &fakeDecoder{})
	ctx := context.Background()

	err := svc.Register(ctx, usecase.RegisterInput{
		Email:           "ana@example.com",
		Username:        "ana",
		Password:        "tajna1",
		ConfirmPassword: "tajna1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, auth.registerCalls)
	assert.Nil(t, svc.Current(ctx))
}

func TestSessionService_ExpiryEvaluatedAtRead(t *testing.T) {
	auth := &fakeAuthGateway{token: "short-lived"}
	decoder := &fakeDecoder{sessions: map[string]*entity.Session{
		"short-lived": {
			UserID:    1,
			Role:      entity.RoleCustomer,
			ExpiresAt: time.Now().Add(-time.Second),
		},
	}}
	svc := newSessionService(auth, decoder)
	ctx := context.Background()

	// Login itself succeeds; the token is already stale by the next read.
	_, err := svc.Login(ctx, usecase.LoginInput{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)

	assert.Nil(t, svc.Current(ctx))
	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestSessionService_LogoutAlwaysSucceeds(t *testing.T) {
	auth := &fakeAuthGateway{token: "signed-token"}
	decoder := &fakeDecoder{sessions: map[string]*entity.Session{
		"signed-token": {UserID: 1, ExpiresAt: time.Now().Add(time.Hour)},
	}}
	svc := newSessionService(auth, decoder)
	ctx := context.Background()

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.Current(ctx))

	// A second logout without a session is still a success.
	require.NoError(t, svc.Logout(ctx))
}
