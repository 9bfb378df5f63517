package usecase

import (
	"context"

	"ulaz/internal/domain/entity"
)

// AdminUsecase groups the moderation and catalog-management operations.
// Every operation requires the admin role, checked client-side even where
// the backend itself does not enforce auth on the underlying endpoint.
type AdminUsecase interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateEmployee(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, employee *entity.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error

	// CancelTicket voids a ticket; the client observes the status change
	// on the next ticket list refresh.
	CancelTicket(ctx context.Context, id int64) error

	// DeleteComment removes a user's review.
	DeleteComment(ctx context.Context, id int64) error
}
