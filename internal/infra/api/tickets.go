package api

import (
	"context"
	"fmt"
	"net/http"

	"ulaz/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type ticketDTO struct {
	ID           int64           `json:"id"`
	TicketNumber string          `json:"broj_ulaznice"`
	Price        decimal.Decimal `json:"cijena"`
	Status       string          `json:"status"`
	OwnerID      int64           `json:"korisnik_id"`
	EventID      int64           `json:"dogadjaj_id"`
}

func (d *ticketDTO) toEntity() entity.Ticket {
	status := entity.TicketStatus(d.Status)
	if status != entity.TicketCancelled {
		status = entity.TicketPurchased
	}

	return entity.Ticket{
		ID:           d.ID,
		TicketNumber: d.TicketNumber,
		Price:        d.Price,
		Status:       status,
		OwnerID:      d.OwnerID,
		EventID:      d.EventID,
	}
}

// ListTickets fetches every ticket the backend holds. The endpoint does not
// filter by caller; selecting the current user's tickets happens client-side.
func (c *Client) ListTickets(ctx context.Context) ([]entity.Ticket, error) {
	var dtos []ticketDTO
	if err := c.do(ctx, call{method: http.MethodGet, endpoint: "/ulaznice", path: "/ulaznice", authed: true}, &dtos); err != nil {
		return nil, err
	}

	tickets := make([]entity.Ticket, 0, len(dtos))
	for i := range dtos {
		tickets = append(tickets, dtos[i].toEntity())
	}

	return tickets, nil
}

// CreateTicket submits one ticket-creation request. The ticket's price is
// the full total of the purchase; quantity never fans out into multiple
// backend records.
func (c *Client) CreateTicket(ctx context.Context, ticket *entity.Ticket) (*entity.Ticket, error) {
	var dto ticketDTO
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/ulaznice",
		path:     "/ulaznice",
		body: map[string]any{
			"broj_ulaznice": ticket.TicketNumber,
			"cijena":        ticket.Price,
			"status":        string(ticket.Status),
			"korisnik_id":   ticket.OwnerID,
			"dogadjaj_id":   ticket.EventID,
		},
		authed: true,
	}, &dto)
	if err != nil {
		return nil, err
	}

	created := dto.toEntity()

	return &created, nil
}

// CancelTicket voids a ticket. The backend exposes this without auth; the
// client gates it behind the admin role before ever calling here.
func (c *Client) CancelTicket(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/ulaznice/{id}",
		path:     fmt.Sprintf("/ulaznice/%d", id),
	}, nil)
}
