package usecase

import (
	"context"
	"time"

	"ulaz/internal/domain/entity"
)

// Attendance partitions the user's ticketed events by date.
type Attendance struct {
	Upcoming []entity.Event // Not yet eligible for comments.
	Past     []entity.Event // Eligible for comments.
}

// SubmitCommentInput defines the data for submitting a review.
type SubmitCommentInput struct {
	EventID int64  `json:"event_id" validate:"required"`
	Body    string `json:"body" validate:"required"`
	Rating  int    `json:"rating" validate:"required"`
}

// ReviewUsecase partitions attended events and gates comment submission.
// It deliberately does not prevent a duplicate submission itself: callers
// must check ExistingComment first and suppress the form, mirroring the
// UI-level invariant of the original design.
type ReviewUsecase interface {
	// Attended loads the user's tickets and partitions the referenced
	// events into upcoming and past. Ticket status is ignored: a
	// cancelled ticket still counts as attended.
	Attended(ctx context.Context) (*Attendance, error)

	// Partition is the pure core of Attended, exposed for callers that
	// already hold the data.
	Partition(events []entity.Event, tickets []entity.Ticket, userID int64, today time.Time) *Attendance

	// Comments returns all comments for one event.
	Comments(ctx context.Context, eventID int64) ([]entity.Comment, error)

	// ExistingComment returns the user's comment for the event, or nil.
	// Repeated calls with identical inputs return the same element.
	ExistingComment(comments []entity.Comment, eventID, userID int64) *entity.Comment

	// Submit validates the body and rating locally, stamps the client's
	// local date and submits the comment once.
	Submit(ctx context.Context, input SubmitCommentInput) (*entity.Comment, error)
}
