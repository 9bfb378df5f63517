package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "ulaz/internal/delivery/context"
	"ulaz/internal/domain/entity"
	"ulaz/internal/domain/service"
	"ulaz/internal/usecase"

	"go.uber.org/fx"
)

// catalogService caches the backend's reference data collections behind a
// read-write lock. Each Load replaces exactly one collection; a failed load
// leaves both that collection's previous cache and the others untouched.
type catalogService struct {
	gateway service.CatalogGateway
	logger  *slog.Logger

	mu         sync.RWMutex
	events     []entity.Event
	eventIdx   map[int64]entity.Event
	locations  []entity.Location
	locIdx     map[int64]entity.Location
	categories []entity.Category
	catIdx     map[int64]entity.Category
	employees  []entity.Employee
	empIdx     map[int64]entity.Employee
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogGateway service.CatalogGateway
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		gateway:  params.CatalogGateway,
		logger:   params.Logger,
		eventIdx: map[int64]entity.Event{},
		locIdx:   map[int64]entity.Location{},
		catIdx:   map[int64]entity.Category{},
		empIdx:   map[int64]entity.Employee{},
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadEvents fetches and replaces the cached event collection.
func (srv *catalogService) LoadEvents(ctx context.Context) ([]entity.Event, error) {
	events, err := srv.gateway.ListEvents(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load events", slog.Any("error", err))

		return nil, err
	}

	idx := make(map[int64]entity.Event, len(events))
	for _, e := range events {
		idx[e.ID] = e
	}

	srv.mu.Lock()
	srv.events = events
	srv.eventIdx = idx
	srv.mu.Unlock()

	return events, nil
}

// LoadLocations fetches and replaces the cached location collection.
func (srv *catalogService) LoadLocations(ctx context.Context) ([]entity.Location, error) {
	locations, err := srv.gateway.ListLocations(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load locations", slog.Any("error", err))

		return nil, err
	}

	idx := make(map[int64]entity.Location, len(locations))
	for _, l := range locations {
		idx[l.ID] = l
	}

	srv.mu.Lock()
	srv.locations = locations
	srv.locIdx = idx
	srv.mu.Unlock()

	return locations, nil
}

// LoadCategories fetches and replaces the cached category collection.
func (srv *catalogService) LoadCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.gateway.ListCategories(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load categories", slog.Any("error", err))

		return nil, err
	}

	idx := make(map[int64]entity.Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}

	srv.mu.Lock()
	srv.categories = categories
	srv.catIdx = idx
	srv.mu.Unlock()

	return categories, nil
}

// LoadEmployees fetches and replaces the cached employee collection.
func (srv *catalogService) LoadEmployees(ctx context.Context) ([]entity.Employee, error) {
	employees, err := srv.gateway.ListEmployees(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load employees", slog.Any("error", err))

		return nil, err
	}

	idx := make(map[int64]entity.Employee, len(employees))
	for _, e := range employees {
		idx[e.ID] = e
	}

	srv.mu.Lock()
	srv.employees = employees
	srv.empIdx = idx
	srv.mu.Unlock()

	return employees, nil
}

// Events returns the cached event list without refetching.
func (srv *catalogService) Events() []entity.Event {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.events
}

// LocationIndex returns the cached id-keyed location map.
func (srv *catalogService) LocationIndex() map[int64]entity.Location {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.locIdx
}

// Event returns the cached event with the given id, or nil. A miss is a
// normal condition: tickets may reference events removed from the catalog.
func (srv *catalogService) Event(id int64) *entity.Event {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if e, ok := srv.eventIdx[id]; ok {
		return &e
	}

	return nil
}

// Location returns the cached location with the given id, or nil.
func (srv *catalogService) Location(id int64) *entity.Location {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if l, ok := srv.locIdx[id]; ok {
		return &l
	}

	return nil
}

// Category returns the cached category with the given id, or nil.
func (srv *catalogService) Category(id int64) *entity.Category {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if c, ok := srv.catIdx[id]; ok {
		return &c
	}

	return nil
}

// Employee returns the cached employee with the given id, or nil.
func (srv *catalogService) Employee(id int64) *entity.Employee {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if e, ok := srv.empIdx[id]; ok {
		return &e
	}

	return nil
}
