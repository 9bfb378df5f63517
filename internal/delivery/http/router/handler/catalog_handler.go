package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ulaz/internal/delivery/http/response"
	"ulaz/internal/domain/entity"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/filter"
	"ulaz/internal/errors"
	"ulaz/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler exposes the cached reference data collections. Every list
// endpoint refreshes its collection from the backend before answering, so
// the shell's pull-to-refresh maps directly onto a GET.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// eventView enriches an event with resolved reference names for rendering.
// Dangling references render as empty strings, never as errors.
type eventView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	StartsAt     string `json:"starts_at"`
	Price        string `json:"price"`
	Category     string `json:"category"`
	LocationName string `json:"location_name,omitempty"`
	Responsible  string `json:"responsible,omitempty"`
}

func (h *CatalogHandler) newEventView(e *entity.Event) eventView {
	view := eventView{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		StartsAt:    e.StartsAt,
		Price:       e.Price.String(),
		Category:    filter.CategoryOf(e.ID),
	}
	if location := h.uc.Location(e.LocationID); location != nil {
		view.LocationName = location.Name
	}
	if employee := h.uc.Employee(e.ResponsibleID); employee != nil {
		view.Responsible = employee.FirstName + " " + employee.LastName
	}

	return view
}

// ListEvents refreshes the event collection and applies the filter query
// from the request parameters. Unknown bucket values match nothing, which
// the filter engine already guarantees.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	events, err := h.uc.LoadEvents(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	// Locations feed both name resolution and free-text matching; a failed
	// load degrades those, it does not fail the event list.
	if _, err := h.uc.LoadLocations(ctx); err != nil {
		h.logger.Warn("Location refresh failed, rendering without venue names", slog.Any("error", err))
	}

	query := filter.Query{
		Text:     c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Date:     filter.DateBucket(c.QueryParam("date")),
		Price:    filter.PriceBucket(c.QueryParam("price")),
	}
	matched := filter.Apply(events, h.uc.LocationIndex(), query, time.Now())

	views := make([]eventView, 0, len(matched))
	for i := range matched {
		views = append(views, h.newEventView(&matched[i]))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetEvent returns one event from the cache, loading the catalog first when
// the cache is cold.
func (h *CatalogHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	event := h.uc.Event(id)
	if event == nil {
		if _, err := h.uc.LoadEvents(c.Request().Context()); err != nil {
			return errors.WithStack(err)
		}
		event = h.uc.Event(id)
	}
	if event == nil {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	return response.Success(c, http.StatusOK, h.newEventView(event), "")
}

// ListLocations refreshes and returns the venue collection.
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	locations, err := h.uc.LoadLocations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// ListCategories refreshes and returns the category collection.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.LoadCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListEmployees refreshes and returns the staff collection.
func (h *CatalogHandler) ListEmployees(c echo.Context) error {
	employees, err := h.uc.LoadEmployees(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employees, "")
}
