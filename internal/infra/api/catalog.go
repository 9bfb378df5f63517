package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ulaz/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// dateLayout is the backend's civil date format.
const dateLayout = "2006-01-02"

// eventDTO is the backend's event shape. The primary key is inconsistent
// across endpoints: the events collection uses id (in varying casing, which
// JSON decoding absorbs), while some responses carry the FK-style
// dogadjaj_id instead. normalize() folds both into one canonical ID so no
// other component ever sees the difference.
type eventDTO struct {
	ID            int64           `json:"id"`
	LegacyID      int64           `json:"dogadjaj_id"`
	Name          string          `json:"naziv"`
	Description   string          `json:"opis"`
	Date          string          `json:"datum"`
	StartsAt      string          `json:"vrijeme"`
	LocationID    int64           `json:"lokacija_id"`
	ResponsibleID int64           `json:"uposlenik_id"`
	Price         decimal.Decimal `json:"cijena"`
}

func (d *eventDTO) normalize() entity.Event {
	id := d.ID
	if id == 0 {
		id = d.LegacyID
	}

	// An unparseable date stays zero; downstream partitioning treats a
	// zero date as past, the same way the original rendered it.
	date, _ := time.ParseInLocation(dateLayout, d.Date, time.Local)

	return entity.Event{
		ID:            id,
		Name:          d.Name,
		Description:   d.Description,
		Date:          date,
		StartsAt:      d.StartsAt,
		LocationID:    d.LocationID,
		ResponsibleID: d.ResponsibleID,
		Price:         d.Price,
	}
}

func eventPayload(event *entity.Event) map[string]any {
	return map[string]any{
		"naziv":        event.Name,
		"opis":         event.Description,
		"datum":        event.Date.Format(dateLayout),
		"vrijeme":      event.StartsAt,
		"lokacija_id":  event.LocationID,
		"uposlenik_id": event.ResponsibleID,
		"cijena":       event.Price,
	}
}

type locationDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"naziv"`
	Address string `json:"adresa"`
}

type categoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"naziv"`
}

type employeeDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"ime"`
	LastName  string `json:"prezime"`
	Position  string `json:"pozicija"`
}

// ListEvents fetches the full event collection, normalized.
func (c *Client) ListEvents(ctx context.Context) ([]entity.Event, error) {
	var dtos []eventDTO
	if err := c.do(ctx, call{method: http.MethodGet, endpoint: "/events", path: "/events"}, &dtos); err != nil {
		return nil, err
	}

	events := make([]entity.Event, 0, len(dtos))
	for i := range dtos {
		events = append(events, dtos[i].normalize())
	}

	return events, nil
}

// GetEvent fetches one event by id.
func (c *Client) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	var dto eventDTO
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/events/{id}",
		path:     fmt.Sprintf("/events/%d", id),
	}, &dto)
	if err != nil {
		return nil, err
	}

	event := dto.normalize()

	return &event, nil
}

// CreateEvent creates an event; admin only, bearer token required.
func (c *Client) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	var dto eventDTO
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/events",
		path:     "/events",
		body:     eventPayload(event),
		authed:   true,
	}, &dto)
	if err != nil {
		return nil, err
	}

	created := dto.normalize()

	return &created, nil
}

// UpdateEvent updates an event; admin only, bearer token required.
func (c *Client) UpdateEvent(ctx context.Context, event *entity.Event) error {
	return c.do(ctx, call{
		method:   http.MethodPut,
		endpoint: "/events/{id}",
		path:     fmt.Sprintf("/events/%d", event.ID),
		body:     eventPayload(event),
		authed:   true,
	}, nil)
}

// DeleteEvent removes an event; admin only, bearer token required.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/events/{id}",
		path:     fmt.Sprintf("/events/%d", id),
		authed:   true,
	}, nil)
}

// ListLocations fetches the locations collection.
func (c *Client) ListLocations(ctx context.Context) ([]entity.Location, error) {
	var dtos []locationDTO
	if err := c.do(ctx, call{method: http.MethodGet, endpoint: "/lokacije", path: "/lokacije"}, &dtos); err != nil {
		return nil, err
	}

	locations := make([]entity.Location, 0, len(dtos))
	for _, dto := range dtos {
		locations = append(locations, entity.Location(dto))
	}

	return locations, nil
}

// ListCategories fetches the categories collection.
//
// Category and employee mutation notably requires no bearer token: the
// backend's authorization contract is inconsistent across endpoints, and
// the client reproduces it as observed rather than papering over it.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var dtos []categoryDTO
	if err := c.do(ctx, call{method: http.MethodGet, endpoint: "/kategorije", path: "/kategorije"}, &dtos); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, entity.Category(dto))
	}

	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	var dto categoryDTO
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/kategorije",
		path:     "/kategorije",
		body:     map[string]any{"naziv": category.Name},
	}, &dto)
	if err != nil {
		return nil, err
	}

	created := entity.Category(dto)

	return &created, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, category *entity.Category) error {
	return c.do(ctx, call{
		method:   http.MethodPut,
		endpoint: "/kategorije/{id}",
		path:     fmt.Sprintf("/kategorije/%d", category.ID),
		body:     map[string]any{"naziv": category.Name},
	}, nil)
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/kategorije/{id}",
		path:     fmt.Sprintf("/kategorije/%d", id),
	}, nil)
}

// ListEmployees fetches the employees collection.
func (c *Client) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	var dtos []employeeDTO
	if err := c.do(ctx, call{method: http.MethodGet, endpoint: "/uposlenici", path: "/uposlenici"}, &dtos); err != nil {
		return nil, err
	}

	employees := make([]entity.Employee, 0, len(dtos))
	for _, dto := range dtos {
		employees = append(employees, entity.Employee(dto))
	}

	return employees, nil
}

func employeePayload(employee *entity.Employee) map[string]any {
	return map[string]any{
		"ime":      employee.FirstName,
		"prezime":  employee.LastName,
		"pozicija": employee.Position,
	}
}

// CreateEmployee creates an employee record.
func (c *Client) CreateEmployee(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	var dto employeeDTO
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/uposlenici",
		path:     "/uposlenici",
		body:     employeePayload(employee),
	}, &dto)
	if err != nil {
		return nil, err
	}

	created := entity.Employee(dto)

	return &created, nil
}

// UpdateEmployee updates an employee record.
func (c *Client) UpdateEmployee(ctx context.Context, employee *entity.Employee) error {
	return c.do(ctx, call{
		method:   http.MethodPut,
		endpoint: "/uposlenici/{id}",
		path:     fmt.Sprintf("/uposlenici/%d", employee.ID),
		body:     employeePayload(employee),
	}, nil)
}

// DeleteEmployee removes an employee record.
func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/uposlenici/{id}",
		path:     fmt.Sprintf("/uposlenici/%d", id),
	}, nil)
}
