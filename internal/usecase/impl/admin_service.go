package impl

import (
	"context"
	"log/slog"

	deliverycontext "ulaz/internal/delivery/context"
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/service"
	"ulaz/internal/usecase"

	"go.uber.org/fx"
)

// adminService gates the moderation and catalog-management operations on the
// admin role. The check is client-side; several backend endpoints would
// accept these calls unauthenticated, and this layer closes that gap for
// well-behaved shells.
type adminService struct {
	catalog  service.CatalogGateway
	tickets  service.TicketGateway
	comments service.CommentGateway
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	CatalogGateway service.CatalogGateway
	TicketGateway  service.TicketGateway
	CommentGateway service.CommentGateway
	Sessions       usecase.SessionUsecase
	Logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		catalog:  params.CatalogGateway,
		tickets:  params.TicketGateway,
		comments: params.CommentGateway,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) requireAdmin(ctx context.Context) error {
	if !srv.sessions.HasRole(ctx, entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (srv *adminService) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if err := srv.requireAdmin(ctx); err != nil {
		return nil, err
	}

	created, err := srv.catalog.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Event created", slog.Int64("event_id", created.ID))

	return created, nil
}

func (srv *adminService) UpdateEvent(ctx context.Context, event *entity.Event) error {
	if err := srv.requireAdmin(ctx); err != nil {
		return err
	}

	return srv.catalog.UpdateEvent(ctx, event)
}

func (srv *adminService) DeleteEvent(ctx context.Context, id int64) error {
	if err := srv.requireAdmin(ctx); err != nil {
		return err
	}

	if err := srv.catalog.DeleteEvent(ctx, id); err != nil {
		return err
	}
	srv.log(ctx).Info("Event deleted", slog.Int64("event_id", id))

	return nil
}

func (srv *adminService) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	if err := srv.requireAdmin(ctx); err != nil {
		return nil, err
	}

	return srv.catalog.CreateCategory(ctx, category)
}

func (srv *adminService) UpdateCategory(ctx context.Context, category *entity.Category) error {
	if err := srv.requireAdmin(ctx); err != nil {
		return err
	}

	return srv.catalog.UpdateCategory(ctx, category)
}

func (srv *adminService) DeleteCategory(ctx context.Context, id int64) error {
	if err := srv.requireAdmin(ctx); err != nil {
		return err
	}

	return srv.catalog.DeleteCategory(ctx, id)
}

func (srv *adminService) CreateEmployee(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	if err := srv.requireAdmin(ctx); err != nil {
		return nil, err
	}

	return srv.catalog.CreateEmployee(ctx, employee)
}

func (srv *adminService) UpdateEmployee(ctx context.Context, employee *entity.Employee) error {
	if err := srv.requireAdmin(ctx); err != nil {
		return err
	}

	return srv.catalog.UpdateEmployee(ctx, employee)
}

func (srv *adminService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := srv.requireAdmin(ctx); err != nil {
		return err
	}

	return srv.catalog.DeleteEmployee(ctx, id)
}

// CancelTicket voids a ticket. The cancelled status becomes visible on the
// next ticket list refresh; no cache is touched here.
func (srv *adminService) CancelTicket(ctx context.Context, id int64) error {
	if err := srv.requireAdmin(ctx); err != nil {
		return err
	}

	if err := srv.tickets.CancelTicket(ctx, id); err != nil {
		return err
	}
	srv.log(ctx).Info("Ticket cancelled", slog.Int64("ticket_id", id))

	return nil
}

// DeleteComment removes a user's review.
func (srv *adminService) DeleteComment(ctx context.Context, id int64) error {
	if err := srv.requireAdmin(ctx); err != nil {
		return err
	}

	if err := srv.comments.DeleteComment(ctx, id); err != nil {
		return err
	}
	srv.log(ctx).Info("Comment deleted", slog.Int64("comment_id", id))

	return nil
}
