package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "ulaz/internal/delivery/context"
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/service"
	"ulaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// purchaseService drives one ticket purchase through its phases. The mutex
// guards the phase fields only; it is released around the network call so a
// concurrent Confirm observes the confirming phase and is rejected instead
// of waiting.
type purchaseService struct {
	tickets  service.TicketGateway
	passes   service.PassService
	sessions usecase.SessionUsecase
	catalog  usecase.CatalogUsecase
	logger   *slog.Logger

	mu     sync.Mutex
	phase  usecase.PurchasePhase
	event  *entity.Event
	ticket *entity.Ticket
	err    error
}

// PurchaseServiceParams holds dependencies for purchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TicketGateway service.TicketGateway
	PassService   service.PassService
	Sessions      usecase.SessionUsecase
	Catalog       usecase.CatalogUsecase
	Logger        *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		tickets:  params.TicketGateway,
		passes:   params.PassService,
		sessions: params.Sessions,
		catalog:  params.Catalog,
		logger:   params.Logger,
		phase:    usecase.PurchaseIdle,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Select enters the flow with an event. Allowed from the idle and selected
// phases; selecting replaces any previous selection.
func (srv *purchaseService) Select(event *entity.Event) error {
	if event == nil || event.ID == 0 {
		return domainerrors.ErrInvalidEvent
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.phase != usecase.PurchaseIdle && srv.phase != usecase.PurchaseSelected {
		return domainerrors.ErrPurchaseState
	}

	srv.phase = usecase.PurchaseSelected
	srv.event = event
	srv.ticket = nil
	srv.err = nil

	return nil
}

// Confirm validates locally, then submits exactly one ticket-creation
// request covering the whole quantity. Local failures keep the flow in the
// selected phase so the user can correct and retry without reselecting.
func (srv *purchaseService) Confirm(ctx context.Context, quantity int) (*entity.Ticket, error) {
	srv.mu.Lock()

	switch srv.phase {
	case usecase.PurchaseConfirming:
		srv.mu.Unlock()

		return nil, domainerrors.ErrPurchaseInFlight
	case usecase.PurchaseSelected:
	default:
		srv.mu.Unlock()

		return nil, domainerrors.ErrPurchaseState
	}

	event := srv.event

	if quantity < 1 {
		srv.mu.Unlock()

		return nil, domainerrors.ErrInvalidQuantity
	}

	// The session check precedes any network traffic. The selection is kept
	// so the flow can resume after the caller sends the user through login.
	session := srv.sessions.Current(ctx)
	if session == nil {
		srv.mu.Unlock()

		return nil, domainerrors.ErrNotAuthenticated
	}

	if srv.catalog.Event(event.ID) == nil {
		srv.mu.Unlock()

		return nil, domainerrors.ErrUnknownEvent
	}

	srv.phase = usecase.PurchaseConfirming
	srv.mu.Unlock()

	ticket := &entity.Ticket{
		TicketNumber: newTicketNumber(),
		Price:        event.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:       entity.TicketPurchased,
		OwnerID:      session.UserID,
		EventID:      event.ID,
	}

	created, err := srv.tickets.CreateTicket(ctx, ticket)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err != nil {
		srv.log(ctx).Warn("Purchase failed",
			slog.Int64("event_id", event.ID),
			slog.Int("quantity", quantity),
			slog.Any("error", err))
		srv.phase = usecase.PurchaseFailed
		srv.err = err

		return nil, err
	}

	srv.log(ctx).Info("Purchase succeeded",
		slog.Int64("event_id", event.ID),
		slog.String("ticket_number", created.TicketNumber),
		slog.String("total", created.Price.String()))
	srv.phase = usecase.PurchaseSucceeded
	srv.ticket = created
	srv.err = nil

	return created, nil
}

// Dismiss returns a terminal phase to idle. A confirm in flight cannot be
// dismissed.
func (srv *purchaseService) Dismiss() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.phase == usecase.PurchaseConfirming {
		return
	}

	srv.phase = usecase.PurchaseIdle
	srv.event = nil
	srv.ticket = nil
	srv.err = nil
}

// State returns a snapshot of the flow for rendering.
func (srv *purchaseService) State() usecase.PurchaseState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return usecase.PurchaseState{
		Phase:  srv.phase,
		Event:  srv.event,
		Ticket: srv.ticket,
		Err:    srv.err,
	}
}

// Pass renders the QR pass for a purchased ticket.
func (srv *purchaseService) Pass(ticket *entity.Ticket) ([]byte, error) {
	return srv.passes.TicketPass(ticket)
}

// newTicketNumber builds the display identifier for a purchase. It combines
// a millisecond timestamp with a random suffix; collisions are tolerable
// because the number is cosmetic, never a lookup key.
func newTicketNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return fmt.Sprintf("TKT-%d-%s", time.Now().UnixMilli(), suffix)
}
