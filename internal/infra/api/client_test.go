package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ulaz/config"
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/repository"
	"ulaz/internal/domain/service"
	"ulaz/internal/errors"
	"ulaz/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDecoder returns a fixed session for any token.
type stubDecoder struct {
	session *entity.Session
	err     error
}

func (d *stubDecoder) Decode(token string) (*entity.Session, error) {
	if d.err != nil {
		return nil, d.err
	}
	s := *d.session
	s.Token = token

	return &s, nil
}

func newTestClient(t *testing.T, baseURL string, sessions repository.SessionRepository, decoder service.TokenDecoder) *Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.Timeout = 5 * time.Second
	if sessions == nil {
		sessions = storage.NewMemoryRepository()
	}
	if decoder == nil {
		decoder = &stubDecoder{session: &entity.Session{ExpiresAt: time.Now().Add(time.Hour)}}
	}

	return NewClient(cfg, sessions, decoder, slog.New(slog.DiscardHandler))
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])
		assert.Equal(t, "tajna", body["lozinka"])

		json.NewEncoder(w).Encode(map[string]string{"token": "signed-token"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil, nil)
	token, err := client.Login(context.Background(), "ana@example.com", "tajna")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Pogrešna lozinka"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil, nil)
	_, err := client.Login(context.Background(), "ana@example.com", "kriva")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestDo_RejectionMessageSurfacesVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Ulaznica već postoji"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil, nil)
	_, err := client.CreateTicket(context.Background(), &entity.Ticket{})
	require.Error(t, err)

	var rejected *domainerrors.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusConflict, rejected.HTTPCode())
	assert.Equal(t, "Ulaznica već postoji", rejected.Message())
}

func TestDo_UnparseableErrorBodyIsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>Internal Server Error</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil, nil)
	_, err := client.ListEvents(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}

func TestDo_UnreachableBackend(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", nil, nil)
	_, err := client.ListEvents(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}

func TestBearerToken_AttachedWhenSessionLive(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	sessions := storage.NewMemoryRepository()
	require.NoError(t, sessions.Save(context.Background(), &entity.Session{UserID: 1, Token: "live-token"}))
	decoder := &stubDecoder{session: &entity.Session{UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}}

	client := newTestClient(t, server.URL, sessions, decoder)
	_, err := client.ListTickets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer live-token", gotAuth)
}

func TestBearerToken_OmittedWhenExpired(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	sessions := storage.NewMemoryRepository()
	require.NoError(t, sessions.Save(context.Background(), &entity.Session{UserID: 1, Token: "stale-token"}))
	decoder := &stubDecoder{session: &entity.Session{UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}}

	client := newTestClient(t, server.URL, sessions, decoder)
	_, err := client.ListTickets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestListEvents_NormalizesLegacyID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "naziv": "Jazz Night", "datum": "2026-03-10", "cijena": "25.50"},
			{"dogadjaj_id": 2, "naziv": "Opera Gala", "datum": "2026-04-01", "cijena": "80"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil, nil)
	events, err := client.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, int64(2), events[1].ID)
	assert.Equal(t, "Opera Gala", events[1].Name)
	assert.Equal(t, "25.5", events[0].Price.String())
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), events[0].Date)
}

func TestListTickets_UnknownStatusDegradesToPurchased(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "broj_ulaznice": "TKT-1", "status": "cancelled", "korisnik_id": 5, "dogadjaj_id": 9},
			{"id": 2, "broj_ulaznice": "TKT-2", "status": "aktivna", "korisnik_id": 5, "dogadjaj_id": 9}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil, nil)
	tickets, err := client.ListTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	assert.Equal(t, entity.TicketCancelled, tickets[0].Status)
	assert.Equal(t, entity.TicketPurchased, tickets[1].Status)
}
