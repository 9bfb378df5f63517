package usecase

import (
	"context"

	"ulaz/internal/domain/entity"
)

// PurchasePhase names a state of the purchase flow.
type PurchasePhase string

const (
	PurchaseIdle       PurchasePhase = "idle"
	PurchaseSelected   PurchasePhase = "selected"
	PurchaseConfirming PurchasePhase = "confirming"
	PurchaseSucceeded  PurchasePhase = "succeeded"
	PurchaseFailed     PurchasePhase = "failed"
)

// PurchaseState is a snapshot of the flow for rendering.
type PurchaseState struct {
	Phase  PurchasePhase
	Event  *entity.Event
	Ticket *entity.Ticket // Set in the succeeded phase.
	Err    error          // Set in the failed phase.
}

// PurchaseUsecase drives one ticket purchase from selection to confirmation.
// The flow is single-writer per shell; a second confirm while one is in
// flight is rejected, standing in for the disabled button of the original UI.
// Its result never leaks into any shared cache: consuming views refresh the
// ticket list explicitly.
type PurchaseUsecase interface {
	// Select enters the flow with an event. The event must carry an id and
	// be present in the catalog cache; both checks are local.
	Select(event *entity.Event) error

	// Confirm validates the session and quantity, computes the total and
	// submits exactly one ticket-creation request covering the whole
	// quantity. Without a live session it fails before any network call;
	// the caller redirects to login preserving the originating intent.
	Confirm(ctx context.Context, quantity int) (*entity.Ticket, error)

	// Dismiss returns a terminal state to idle.
	Dismiss()

	// State returns a snapshot of the flow.
	State() PurchaseState

	// Pass renders the QR pass for a purchased ticket.
	Pass(ticket *entity.Ticket) ([]byte, error)
}
