package impl

import (
	"context"
	"log/slog"
	"time"

	"ulaz/internal/domain/entity"
	"ulaz/internal/domain/service"
	"ulaz/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeAuthGateway records calls and returns canned results.
type fakeAuthGateway struct {
	token         string
	loginErr      error
	registerErr   error
	loginCalls    int
	registerCalls int
	lastEmail     string
}

func (f *fakeAuthGateway) Login(_ context.Context, email, _ string) (string, error) {
	f.loginCalls++
	f.lastEmail = email
	if f.loginErr != nil {
		return "", f.loginErr
	}

	return f.token, nil
}

func (f *fakeAuthGateway) Register(_ context.Context, reg *service.Registration) error {
	f.registerCalls++
	f.lastEmail = reg.Email

	return f.registerErr
}

// fakeDecoder maps known token strings to sessions.
type fakeDecoder struct {
	sessions map[string]*entity.Session
	err      error
}

func (f *fakeDecoder) Decode(token string) (*entity.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.sessions[token]
	s.Token = token

	return &s, nil
}

// fakeSessions is a fixed-session stand-in for the session usecase.
type fakeSessions struct {
	session *entity.Session
}

func (f *fakeSessions) Login(context.Context, usecase.LoginInput) (*entity.Session, error) {
	return f.session, nil
}
func (f *fakeSessions) Register(context.Context, usecase.RegisterInput) error { return nil }
func (f *fakeSessions) Logout(context.Context) error                          { return nil }
func (f *fakeSessions) Current(context.Context) *entity.Session {
	if f.session == nil {
		return nil
	}
	if f.session.Expired(time.Now()) {
		return nil
	}

	return f.session
}
func (f *fakeSessions) IsAuthenticated(ctx context.Context) bool { return f.Current(ctx) != nil }
func (f *fakeSessions) HasRole(ctx context.Context, role entity.Role) bool {
	s := f.Current(ctx)

	return s != nil && s.Role == role
}

// fakeCatalog serves a fixed event set through the catalog interface.
type fakeCatalog struct {
	events     []entity.Event
	loadErr    error
	loadEvents int
}

func (f *fakeCatalog) LoadEvents(context.Context) ([]entity.Event, error) {
	f.loadEvents++
	if f.loadErr != nil {
		return nil, f.loadErr
	}

	return f.events, nil
}
func (f *fakeCatalog) LoadLocations(context.Context) ([]entity.Location, error) { return nil, nil }
func (f *fakeCatalog) LoadCategories(context.Context) ([]entity.Category, error) {
	return nil, nil
}
func (f *fakeCatalog) LoadEmployees(context.Context) ([]entity.Employee, error) { return nil, nil }
func (f *fakeCatalog) Events() []entity.Event                                   { return f.events }
func (f *fakeCatalog) LocationIndex() map[int64]entity.Location                 { return nil }
func (f *fakeCatalog) Event(id int64) *entity.Event {
	for i := range f.events {
		if f.events[i].ID == id {
			return &f.events[i]
		}
	}

	return nil
}
func (f *fakeCatalog) Location(int64) *entity.Location { return nil }
func (f *fakeCatalog) Category(int64) *entity.Category { return nil }
func (f *fakeCatalog) Employee(int64) *entity.Employee { return nil }

// fakeTicketGateway records created tickets and can fail on demand.
type fakeTicketGateway struct {
	tickets     []entity.Ticket
	created     []*entity.Ticket
	createErr   error
	listErr     error
	onCreate    func()
	cancelCalls []int64
}

func (f *fakeTicketGateway) ListTickets(context.Context) ([]entity.Ticket, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.tickets, nil
}

func (f *fakeTicketGateway) CreateTicket(_ context.Context, ticket *entity.Ticket) (*entity.Ticket, error) {
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, ticket)
	created := *ticket
	created.ID = int64(len(f.created))

	return &created, nil
}

func (f *fakeTicketGateway) CancelTicket(_ context.Context, id int64) error {
	f.cancelCalls = append(f.cancelCalls, id)

	return nil
}

// fakeCommentGateway records submitted comments.
type fakeCommentGateway struct {
	comments  []entity.Comment
	created   []*entity.Comment
	createErr error
	deleted   []int64
}

func (f *fakeCommentGateway) ListComments(context.Context) ([]entity.Comment, error) {
	return f.comments, nil
}

func (f *fakeCommentGateway) CreateComment(_ context.Context, comment *entity.Comment) (*entity.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, comment)
	created := *comment
	created.ID = int64(len(f.created))

	return &created, nil
}

func (f *fakeCommentGateway) DeleteComment(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)

	return nil
}

// fakePassService returns a fixed payload.
type fakePassService struct{}

func (fakePassService) TicketPass(*entity.Ticket) ([]byte, error) {
	return []byte("png"), nil
}

// fakeCatalogGateway serves fixed reference collections and records writes.
type fakeCatalogGateway struct {
	events     []entity.Event
	locations  []entity.Location
	categories []entity.Category
	employees  []entity.Employee
	listErr    error
	writes     []string
}

func (f *fakeCatalogGateway) ListEvents(context.Context) ([]entity.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.events, nil
}

func (f *fakeCatalogGateway) GetEvent(_ context.Context, id int64) (*entity.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			return &f.events[i], nil
		}
	}

	return nil, nil
}

func (f *fakeCatalogGateway) CreateEvent(_ context.Context, event *entity.Event) (*entity.Event, error) {
	f.writes = append(f.writes, "create-event")
	created := *event
	created.ID = 100

	return &created, nil
}

func (f *fakeCatalogGateway) UpdateEvent(context.Context, *entity.Event) error {
	f.writes = append(f.writes, "update-event")

	return nil
}

func (f *fakeCatalogGateway) DeleteEvent(context.Context, int64) error {
	f.writes = append(f.writes, "delete-event")

	return nil
}

func (f *fakeCatalogGateway) ListLocations(context.Context) ([]entity.Location, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.locations, nil
}

func (f *fakeCatalogGateway) ListCategories(context.Context) ([]entity.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.categories, nil
}

func (f *fakeCatalogGateway) CreateCategory(_ context.Context, category *entity.Category) (*entity.Category, error) {
	f.writes = append(f.writes, "create-category")

	return category, nil
}

func (f *fakeCatalogGateway) UpdateCategory(context.Context, *entity.Category) error {
	f.writes = append(f.writes, "update-category")

	return nil
}

func (f *fakeCatalogGateway) DeleteCategory(context.Context, int64) error {
	f.writes = append(f.writes, "delete-category")

	return nil
}

func (f *fakeCatalogGateway) ListEmployees(context.Context) ([]entity.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.employees, nil
}

func (f *fakeCatalogGateway) CreateEmployee(_ context.Context, employee *entity.Employee) (*entity.Employee, error) {
	f.writes = append(f.writes, "create-employee")

	return employee, nil
}

func (f *fakeCatalogGateway) UpdateEmployee(context.Context, *entity.Employee) error {
	f.writes = append(f.writes, "update-employee")

	return nil
}

func (f *fakeCatalogGateway) DeleteEmployee(context.Context, int64) error {
	f.writes = append(f.writes, "delete-employee")

	return nil
}
