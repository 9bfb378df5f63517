package usecase

import (
	"context"

	"ulaz/internal/domain/entity"
)

// CatalogUsecase caches the reference data collections for the current view.
// Each Load call is an independent fetch that replaces that collection's
// cache; a failure leaves the other collections intact so unrelated data
// keeps rendering. Lookups never fail: a dangling reference returns nil and
// the caller renders "unknown", which is a normal condition in this data.
type CatalogUsecase interface {
	LoadEvents(ctx context.Context) ([]entity.Event, error)
	LoadLocations(ctx context.Context) ([]entity.Location, error)
	LoadCategories(ctx context.Context) ([]entity.Category, error)
	LoadEmployees(ctx context.Context) ([]entity.Employee, error)

	// Events returns the cached event list (never refetches).
	Events() []entity.Event

	// LocationIndex returns the cached id-keyed location map for filtering.
	LocationIndex() map[int64]entity.Location

	Event(id int64) *entity.Event
	Location(id int64) *entity.Location
	Category(id int64) *entity.Category
	Employee(id int64) *entity.Employee
}
