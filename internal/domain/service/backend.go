package service

import (
	"context"

	"ulaz/internal/domain/entity"
)

// Registration is the payload for creating a new customer account.
// The password travels to the backend as-is; hashing is the backend's job.
type Registration struct {
	Email    string
	Username string
	Password string
}

// AuthGateway exchanges credentials with the backend.
type AuthGateway interface {
	// Login exchanges credentials for a signed token. The token is returned
	// undecoded; interpreting it is the TokenDecoder's job.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new customer account. It does not log the account in.
	Register(ctx context.Context, reg *Registration) error
}

// CatalogGateway reads and (for administrators) mutates the reference data
// collections. Reads return the full collection per call; there is no
// incremental or streaming variant.
type CatalogGateway interface {
	ListEvents(ctx context.Context) ([]entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id int64) error

	ListLocations(ctx context.Context) ([]entity.Location, error)

	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListEmployees(ctx context.Context) ([]entity.Employee, error)
	CreateEmployee(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, employee *entity.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
}

// TicketGateway drives ticket creation and observation. The backend's list
// endpoint does not filter by caller; callers must select their own tickets
// by owner id.
type TicketGateway interface {
	ListTickets(ctx context.Context) ([]entity.Ticket, error)
	CreateTicket(ctx context.Context, ticket *entity.Ticket) (*entity.Ticket, error)
	CancelTicket(ctx context.Context, id int64) error
}

// CommentGateway reads and writes event reviews.
type CommentGateway interface {
	ListComments(ctx context.Context) ([]entity.Comment, error)
	CreateComment(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
