package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpmiddleware "ulaz/internal/delivery/http/middleware"
	"ulaz/internal/domain/entity"
	"ulaz/internal/usecase"
	"ulaz/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessions serves one fixed session through the session usecase.
type stubSessions struct {
	session *entity.Session
}

func (s *stubSessions) Login(context.Context, usecase.LoginInput) (*entity.Session, error) {
	return s.session, nil
}
func (s *stubSessions) Register(context.Context, usecase.RegisterInput) error { return nil }
func (s *stubSessions) Logout(context.Context) error                          { return nil }
func (s *stubSessions) Current(context.Context) *entity.Session               { return s.session }
func (s *stubSessions) IsAuthenticated(context.Context) bool                  { return s.session != nil }
func (s *stubSessions) HasRole(_ context.Context, role entity.Role) bool {
	return s.session != nil && s.session.Role == role
}

// stubCatalog serves a fixed, pre-warmed event cache.
type stubCatalog struct {
	events []entity.Event
}

func (s *stubCatalog) LoadEvents(context.Context) ([]entity.Event, error) { return s.events, nil }
func (s *stubCatalog) LoadLocations(context.Context) ([]entity.Location, error) {
	return nil, nil
}
func (s *stubCatalog) LoadCategories(context.Context) ([]entity.Category, error) {
	return nil, nil
}
func (s *stubCatalog) LoadEmployees(context.Context) ([]entity.Employee, error) { return nil, nil }
func (s *stubCatalog) Events() []entity.Event                                   { return s.events }
func (s *stubCatalog) LocationIndex() map[int64]entity.Location                 { return nil }
func (s *stubCatalog) Event(id int64) *entity.Event {
	for i := range s.events {
		if s.events[i].ID == id {
			return &s.events[i]
		}
	}

	return nil
}
func (s *stubCatalog) Location(int64) *entity.Location { return nil }
func (s *stubCatalog) Category(int64) *entity.Category { return nil }
func (s *stubCatalog) Employee(int64) *entity.Employee { return nil }

// stubTicketGateway serves a fixed ticket list.
type stubTicketGateway struct {
	tickets []entity.Ticket
}

func (s *stubTicketGateway) ListTickets(context.Context) ([]entity.Ticket, error) {
	return s.tickets, nil
}
func (s *stubTicketGateway) CreateTicket(_ context.Context, t *entity.Ticket) (*entity.Ticket, error) {
	return t, nil
}
func (s *stubTicketGateway) CancelTicket(context.Context, int64) error { return nil }

// commentStore is a comment gateway whose list reflects prior creates, the
// way the real backend behaves between requests.
type commentStore struct {
	comments    []entity.Comment
	createCalls int
}

func (s *commentStore) ListComments(context.Context) ([]entity.Comment, error) {
	return s.comments, nil
}

func (s *commentStore) CreateComment(_ context.Context, comment *entity.Comment) (*entity.Comment, error) {
	s.createCalls++
	created := *comment
	created.ID = int64(len(s.comments) + 1)
	s.comments = append(s.comments, created)

	return &created, nil
}

func (s *commentStore) DeleteComment(context.Context, int64) error { return nil }

// reviewFixture wires a ReviewHandler over the real review service with a
// customer who holds tickets for one past and one upcoming event.
type reviewFixture struct {
	handler  *ReviewHandler
	comments *commentStore
}

const (
	pastEventID     = int64(1)
	upcomingEventID = int64(2)
	unticketedPast  = int64(3)
)

func newReviewFixture(session *entity.Session) *reviewFixture {
	today := time.Now()
	catalog := &stubCatalog{events: []entity.Event{
		{ID: pastEventID, Name: "Jazz Night", Date: today.AddDate(0, 0, -1)},
		{ID: upcomingEventID, Name: "Opera Gala", Date: today.AddDate(0, 0, 5)},
		{ID: unticketedPast, Name: "Rock Fest", Date: today.AddDate(0, 0, -10)},
	}}
	tickets := &stubTicketGateway{tickets: []entity.Ticket{
		{ID: 1, EventID: pastEventID, OwnerID: 42},
		{ID: 2, EventID: upcomingEventID, OwnerID: 42},
	}}
	comments := &commentStore{}
	sessions := &stubSessions{session: session}

	review := impl.NewReviewService(impl.ReviewServiceParams{
		TicketGateway:  tickets,
		CommentGateway: comments,
		Sessions:       sessions,
		Catalog:        catalog,
		Logger:         slog.New(slog.DiscardHandler),
	})

	return &reviewFixture{
		handler:  NewReviewHandler(review, sessions, slog.New(slog.DiscardHandler)),
		comments: comments,
	}
}

func customerSession() *entity.Session {
	return &entity.Session{
		UserID:    42,
		Username:  "ana",
		Role:      entity.RoleCustomer,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// postComment drives the request through echo so the error handler maps
// application errors to their status codes, the way the running server does.
func postComment(t *testing.T, f *reviewFixture, eventID int64) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError
	e.POST("/reviews/comments", f.handler.SubmitComment)

	payload, err := json.Marshal(map[string]any{
		"event_id": eventID,
		"body":     "odličan koncert",
		"rating":   5,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/reviews/comments", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSubmitComment_PastAttendedEventAccepted(t *testing.T) {
	f := newReviewFixture(customerSession())

	rec := postComment(t, f, pastEventID)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, f.comments.createCalls)
}

func TestSubmitComment_UpcomingEventRejected(t *testing.T) {
	f := newReviewFixture(customerSession())

	rec := postComment(t, f, upcomingEventID)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_ATTENDED")
	assert.Zero(t, f.comments.createCalls)
}

func TestSubmitComment_UnticketedPastEventRejected(t *testing.T) {
	f := newReviewFixture(customerSession())

	rec := postComment(t, f, unticketedPast)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, f.comments.createCalls)
}

func TestSubmitComment_SecondSubmitBlockedWithoutNetworkCall(t *testing.T) {
	f := newReviewFixture(customerSession())

	first := postComment(t, f, pastEventID)
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, 1, f.comments.createCalls)

	second := postComment(t, f, pastEventID)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "ALREADY_REVIEWED")
	// The duplicate never reached the comment gateway.
	assert.Equal(t, 1, f.comments.createCalls)
}

func TestSubmitComment_AnonymousRejected(t *testing.T) {
	f := newReviewFixture(nil)

	rec := postComment(t, f, pastEventID)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, f.comments.createCalls)
}
