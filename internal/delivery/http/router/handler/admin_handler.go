package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ulaz/internal/delivery/http/response"
	"ulaz/internal/domain/entity"
	"ulaz/internal/errors"
	"ulaz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AdminHandler exposes the moderation and catalog-management endpoints.
// Role enforcement lives in the usecase; the route group adds a second
// guard so unauthorized calls never reach binding.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type eventInput struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Date          string `json:"date" validate:"required"`
	StartsAt      string `json:"starts_at"`
	LocationID    int64  `json:"location_id"`
	ResponsibleID int64  `json:"responsible_id"`
	Price         string `json:"price" validate:"required"`
}

func (in *eventInput) toEntity(id int64) (*entity.Event, error) {
	date, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return nil, errors.New("price must be a decimal number")
	}

	return &entity.Event{
		ID:            id,
		Name:          in.Name,
		Description:   in.Description,
		Date:          date,
		StartsAt:      in.StartsAt,
		LocationID:    in.LocationID,
		ResponsibleID: in.ResponsibleID,
		Price:         price,
	}, nil
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// CreateEvent handles the event creation request.
func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var input eventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	event, err := input.toEntity(0)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	created, err := h.uc.CreateEvent(c.Request().Context(), event)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Event created")
}

// UpdateEvent handles the event update request.
func (h *AdminHandler) UpdateEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	var input eventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	event, err := input.toEntity(id)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.UpdateEvent(c.Request().Context(), event); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event updated")
}

// DeleteEvent handles the event deletion request.
func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted")
}

type categoryInput struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategory handles the category creation request.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var input categoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	created, err := h.uc.CreateCategory(c.Request().Context(), &entity.Category{Name: input.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Category created")
}

// UpdateCategory handles the category update request.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	var input categoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := h.uc.UpdateCategory(c.Request().Context(), &entity.Category{ID: id, Name: input.Name}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category updated")
}

// DeleteCategory handles the category deletion request.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

type employeeInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Position  string `json:"position"`
}

// CreateEmployee handles the employee creation request.
func (h *AdminHandler) CreateEmployee(c echo.Context) error {
	var input employeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	created, err := h.uc.CreateEmployee(c.Request().Context(), &entity.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Position:  input.Position,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Employee created")
}

// UpdateEmployee handles the employee update request.
func (h *AdminHandler) UpdateEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee id")
	}

	var input employeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}

	if err := h.uc.UpdateEmployee(c.Request().Context(), &entity.Employee{
		ID:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Position:  input.Position,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee updated")
}

// DeleteEmployee handles the employee deletion request.
func (h *AdminHandler) DeleteEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee id")
	}

	if err := h.uc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee deleted")
}

// CancelTicket voids a ticket on behalf of an administrator.
func (h *AdminHandler) CancelTicket(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid ticket id")
	}

	if err := h.uc.CancelTicket(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ticket cancelled")
}

// DeleteComment removes a user's review.
func (h *AdminHandler) DeleteComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment id")
	}

	if err := h.uc.DeleteComment(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted")
}
