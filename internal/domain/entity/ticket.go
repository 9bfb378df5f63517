package entity

import "github.com/shopspring/decimal"

// TicketStatus is the lifecycle state of a purchased admission.
type TicketStatus string

const (
	// TicketPurchased is the state a ticket is created in.
	TicketPurchased TicketStatus = "purchased"
	// TicketCancelled is set by the backend when an administrator cancels
	// the ticket; the client only ever observes this transition.
	TicketCancelled TicketStatus = "cancelled"
)

// Ticket represents one purchase transaction for one event by one user.
// A single ticket record covers the whole quantity of a confirmed purchase;
// Price already reflects the full total.
type Ticket struct {
	ID           int64
	TicketNumber string // Client-generated display identifier; not unique by contract and never a security token.
	Price        decimal.Decimal
	Status       TicketStatus
	OwnerID      int64
	EventID      int64 // May reference an event no longer present in the catalog.
}

// Cancelled reports whether the backend has voided this ticket.
func (t *Ticket) Cancelled() bool {
	return t.Status == TicketCancelled
}
