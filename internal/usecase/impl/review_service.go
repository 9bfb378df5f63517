package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "ulaz/internal/delivery/context"
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/service"
	"ulaz/internal/usecase"

	"go.uber.org/fx"
)

// reviewService partitions attended events and gates comment submission.
type reviewService struct {
	tickets  service.TicketGateway
	comments service.CommentGateway
	sessions usecase.SessionUsecase
	catalog  usecase.CatalogUsecase
	logger   *slog.Logger

	mu         sync.Mutex
	submitting bool
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TicketGateway  service.TicketGateway
	CommentGateway service.CommentGateway
	Sessions       usecase.SessionUsecase
	Catalog        usecase.CatalogUsecase
	Logger         *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		tickets:  params.TicketGateway,
		comments: params.CommentGateway,
		sessions: params.Sessions,
		catalog:  params.Catalog,
		logger:   params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Attended loads the user's tickets and partitions the referenced events.
// The cached event list is used when present; a cold cache triggers one load.
func (srv *reviewService) Attended(ctx context.Context) (*usecase.Attendance, error) {
	session := srv.sessions.Current(ctx)
	if session == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	events := srv.catalog.Events()
	if len(events) == 0 {
		loaded, err := srv.catalog.LoadEvents(ctx)
		if err != nil {
			return nil, err
		}
		events = loaded
	}

	tickets, err := srv.tickets.ListTickets(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load tickets", slog.Any("error", err))

		return nil, err
	}

	return srv.Partition(events, tickets, session.UserID, time.Now()), nil
}

// Partition splits the events the user holds tickets for into upcoming and
// past. Ticket status is deliberately ignored: a cancelled ticket still
// counts as attendance, matching how the backend reports history. Multiple
// tickets for one event yield the event once.
func (srv *reviewService) Partition(events []entity.Event, tickets []entity.Ticket, userID int64, today time.Time) *usecase.Attendance {
	ticketed := make(map[int64]struct{}, len(tickets))
	for _, t := range tickets {
		if t.OwnerID == userID {
			ticketed[t.EventID] = struct{}{}
		}
	}

	attendance := &usecase.Attendance{}
	for _, e := range events {
		if _, ok := ticketed[e.ID]; !ok {
			continue
		}
		if e.Past(today) {
			attendance.Past = append(attendance.Past, e)
		} else {
			attendance.Upcoming = append(attendance.Upcoming, e)
		}
	}

	return attendance
}

// Comments returns all comments for one event, newest last as the backend
// returns them.
func (srv *reviewService) Comments(ctx context.Context, eventID int64) ([]entity.Comment, error) {
	all, err := srv.comments.ListComments(ctx)
	if err != nil {
		return nil, err
	}

	var out []entity.Comment
	for _, c := range all {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}

	return out, nil
}

// ExistingComment returns the user's earliest comment for the event, or nil.
// The backend accepts duplicates, so the first match is the stable pick.
func (srv *reviewService) ExistingComment(comments []entity.Comment, eventID, userID int64) *entity.Comment {
	for i := range comments {
		if comments[i].EventID == eventID && comments[i].AuthorID == userID {
			return &comments[i]
		}
	}

	return nil
}

// Submit validates the body and rating locally, stamps the client's local
// date and submits the comment once. Duplicate suppression is the caller's
// job via ExistingComment; this method only guards concurrent submits.
func (srv *reviewService) Submit(ctx context.Context, input usecase.SubmitCommentInput) (*entity.Comment, error) {
	if len(strings.TrimSpace(input.Body)) < 3 {
		return nil, domainerrors.ErrBodyTooShort
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrRatingOutOfRange
	}

	session := srv.sessions.Current(ctx)
	if session == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	srv.mu.Lock()
	if srv.submitting {
		srv.mu.Unlock()

		return nil, domainerrors.ErrReviewInFlight
	}
	srv.submitting = true
	srv.mu.Unlock()

	defer func() {
		srv.mu.Lock()
		srv.submitting = false
		srv.mu.Unlock()
	}()

	comment := &entity.Comment{
		EventID:  input.EventID,
		AuthorID: session.UserID,
		Body:     input.Body,
		Rating:   input.Rating,
		Date:     entity.DateOnly(time.Now()),
	}

	created, err := srv.comments.CreateComment(ctx, comment)
	if err != nil {
		srv.log(ctx).Warn("Comment submission failed",
			slog.Int64("event_id", input.EventID),
			slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Comment submitted", slog.Int64("event_id", input.EventID))

	return created, nil
}
