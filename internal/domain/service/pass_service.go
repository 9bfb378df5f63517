package service

import "ulaz/internal/domain/entity"

// PassService renders a purchased ticket into a scannable pass image.
// The pass encodes the display ticket number only; it carries no secret.
type PassService interface {
	// TicketPass returns a PNG QR image for the given ticket.
	TicketPass(ticket *entity.Ticket) ([]byte, error)
}
