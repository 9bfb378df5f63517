package handler

import (
	"log/slog"
	"net/http"

	"ulaz/internal/delivery/http/response"
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/service"
	"ulaz/internal/errors"
	"ulaz/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PurchaseHandler drives the purchase flow and the user's ticket list.
type PurchaseHandler struct {
	uc       usecase.PurchaseUsecase
	sessions usecase.SessionUsecase
	catalog  usecase.CatalogUsecase
	tickets  service.TicketGateway
	logger   *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(
	uc usecase.PurchaseUsecase,
	sessions usecase.SessionUsecase,
	catalog usecase.CatalogUsecase,
	tickets service.TicketGateway,
	logger *slog.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		uc:       uc,
		sessions: sessions,
		catalog:  catalog,
		tickets:  tickets,
		logger:   logger,
	}
}

type selectInput struct {
	EventID int64 `json:"event_id" validate:"required"`
}

type confirmInput struct {
	Quantity int `json:"quantity" validate:"required"`
}

// ticketView is the ticket shape exposed to the shell.
type ticketView struct {
	ID           int64  `json:"id"`
	TicketNumber string `json:"ticket_number"`
	Price        string `json:"price"`
	Status       string `json:"status"`
	EventID      int64  `json:"event_id"`
	EventName    string `json:"event_name,omitempty"`
}

func (h *PurchaseHandler) newTicketView(t *entity.Ticket) ticketView {
	view := ticketView{
		ID:           t.ID,
		TicketNumber: t.TicketNumber,
		Price:        t.Price.String(),
		Status:       string(t.Status),
		EventID:      t.EventID,
	}
	if event := h.catalog.Event(t.EventID); event != nil {
		view.EventName = event.Name
	}

	return view
}

// Select enters the purchase flow with a catalog event.
func (h *PurchaseHandler) Select(c echo.Context) error {
	var input selectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	event := h.catalog.Event(input.EventID)
	if event == nil {
		return errors.WithStack(domainerrors.ErrUnknownEvent)
	}
	if err := h.uc.Select(event); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.state(), "")
}

// Confirm submits the purchase. A missing session surfaces as 401 and the
// selection survives, so the shell can route through login and retry.
func (h *PurchaseHandler) Confirm(c echo.Context) error {
	var input confirmInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}

	ticket, err := h.uc.Confirm(c.Request().Context(), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.newTicketView(ticket), "Purchase successful")
}

// Dismiss returns a finished flow to idle.
func (h *PurchaseHandler) Dismiss(c echo.Context) error {
	h.uc.Dismiss()

	return response.Success(c, http.StatusOK, h.state(), "")
}

// State returns the current phase snapshot for rendering.
func (h *PurchaseHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.state(), "")
}

func (h *PurchaseHandler) state() map[string]any {
	state := h.uc.State()
	view := map[string]any{"phase": string(state.Phase)}
	if state.Event != nil {
		view["event_id"] = state.Event.ID
		view["event_name"] = state.Event.Name
	}
	if state.Ticket != nil {
		ticket := h.newTicketView(state.Ticket)
		view["ticket"] = ticket
	}
	if state.Err != nil {
		view["error"] = state.Err.Error()
	}

	return view
}

// ListTickets returns the caller's own tickets. The backend's list endpoint
// is unfiltered; ownership selection happens here.
func (h *PurchaseHandler) ListTickets(c echo.Context) error {
	ctx := c.Request().Context()

	session := h.sessions.Current(ctx)
	if session == nil {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	all, err := h.tickets.ListTickets(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]ticketView, 0)
	for i := range all {
		if all[i].OwnerID == session.UserID {
			views = append(views, h.newTicketView(&all[i]))
		}
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Pass renders the QR pass PNG for one of the caller's tickets.
func (h *PurchaseHandler) Pass(c echo.Context) error {
	ctx := c.Request().Context()

	session := h.sessions.Current(ctx)
	if session == nil {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	ticketNumber := c.Param("number")
	all, err := h.tickets.ListTickets(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	for i := range all {
		if all[i].OwnerID != session.UserID || all[i].TicketNumber != ticketNumber {
			continue
		}

		png, err := h.uc.Pass(&all[i])
		if err != nil {
			return errors.WithStack(err)
		}

		return c.Blob(http.StatusOK, "image/png", png)
	}

	return errors.WithStack(domainerrors.ErrNotFound)
}
