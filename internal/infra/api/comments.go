package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ulaz/internal/domain/entity"
)

type commentDTO struct {
	ID       int64  `json:"id"`
	EventID  int64  `json:"dogadjaj_id"`
	AuthorID int64  `json:"korisnik_id"`
	Body     string `json:"sadrzaj"`
	Rating   int    `json:"ocjena"`
	Date     string `json:"datum"`
}

func (d *commentDTO) toEntity() entity.Comment {
	date, _ := time.ParseInLocation(dateLayout, d.Date, time.Local)

	return entity.Comment{
		ID:       d.ID,
		EventID:  d.EventID,
		AuthorID: d.AuthorID,
		Body:     d.Body,
		Rating:   d.Rating,
		Date:     date,
	}
}

// ListComments fetches every comment; filtering by event happens client-side.
func (c *Client) ListComments(ctx context.Context) ([]entity.Comment, error) {
	var dtos []commentDTO
	if err := c.do(ctx, call{method: http.MethodGet, endpoint: "/komentari", path: "/komentari"}, &dtos); err != nil {
		return nil, err
	}

	comments := make([]entity.Comment, 0, len(dtos))
	for i := range dtos {
		comments = append(comments, dtos[i].toEntity())
	}

	return comments, nil
}

// CreateComment submits a review; bearer token required.
func (c *Client) CreateComment(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	var dto commentDTO
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/komentari",
		path:     "/komentari",
		body: map[string]any{
			"dogadjaj_id": comment.EventID,
			"korisnik_id": comment.AuthorID,
			"sadrzaj":     comment.Body,
			"ocjena":      comment.Rating,
			"datum":       comment.Date.Format(dateLayout),
		},
		authed: true,
	}, &dto)
	if err != nil {
		return nil, err
	}

	created := dto.toEntity()

	return &created, nil
}

// DeleteComment removes a comment. Like ticket cancellation, the backend
// exposes this without auth; the client gates it behind the admin role.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/komentari/{id}",
		path:     fmt.Sprintf("/komentari/%d", id),
	}, nil)
}
