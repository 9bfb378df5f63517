package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ulaz/internal/delivery/http/response"
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/errors"
	"ulaz/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReviewHandler exposes attendance partitioning and comment submission.
type ReviewHandler struct {
	uc       usecase.ReviewUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, sessions usecase.SessionUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:       uc,
		sessions: sessions,
		logger:   logger,
	}
}

type commentView struct {
	ID       int64  `json:"id"`
	EventID  int64  `json:"event_id"`
	AuthorID int64  `json:"author_id"`
	Body     string `json:"body"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
}

func newCommentView(c *entity.Comment) commentView {
	return commentView{
		ID:       c.ID,
		EventID:  c.EventID,
		AuthorID: c.AuthorID,
		Body:     c.Body,
		Rating:   c.Rating,
		Date:     c.Date.Format("2006-01-02"),
	}
}

// Attendance returns the caller's ticketed events split into upcoming and
// past. Only past events accept comments.
func (h *ReviewHandler) Attendance(c echo.Context) error {
	attendance, err := h.uc.Attended(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attendance, "")
}

// EventComments returns the reviews for one event, plus the caller's own
// review when a session exists, so the shell knows to hide the form.
func (h *ReviewHandler) EventComments(c echo.Context) error {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	ctx := c.Request().Context()
	comments, err := h.uc.Comments(ctx, eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]commentView, 0, len(comments))
	for i := range comments {
		views = append(views, newCommentView(&comments[i]))
	}

	data := map[string]any{"comments": views}
	if session := h.sessions.Current(ctx); session != nil {
		if own := h.uc.ExistingComment(comments, eventID, session.UserID); own != nil {
			data["own_comment"] = newCommentView(own)
		}
	}

	return response.Success(c, http.StatusOK, data, "")
}

// SubmitComment validates and submits a review. Eligibility and the
// duplicate check both run here because the backend accepts any comment
// without complaint: the original only rendered the form on past attended
// events, and this handler is that guard.
func (h *ReviewHandler) SubmitComment(c echo.Context) error {
	var input usecase.SubmitCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	ctx := c.Request().Context()
	session := h.sessions.Current(ctx)
	if session == nil {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	// Only an event in the past half of the caller's attendance partition
	// accepts a review. An upcoming event or one the caller never held a
	// ticket for is rejected before any submission.
	attendance, err := h.uc.Attended(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if !attendedPast(attendance, input.EventID) {
		return errors.WithStack(domainerrors.ErrNotAttended)
	}

	existing, err := h.uc.Comments(ctx, input.EventID)
	if err != nil {
		return errors.WithStack(err)
	}
	if h.uc.ExistingComment(existing, input.EventID, session.UserID) != nil {
		return errors.WithStack(domainerrors.ErrAlreadyReviewed)
	}

	created, err := h.uc.Submit(ctx, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCommentView(created), "Comment submitted")
}

func attendedPast(attendance *usecase.Attendance, eventID int64) bool {
	for i := range attendance.Past {
		if attendance.Past[i].ID == eventID {
			return true
		}
	}

	return false
}
