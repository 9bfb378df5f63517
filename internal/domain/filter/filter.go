// Package filter implements the pure catalog filtering rules: free-text
// search combined with category, date-bucket and price-bucket predicates.
// Apply has no side effects and is referentially stable for identical
// inputs, so callers are free to memoize it.
package filter

import (
	"strings"
	"time"

	"ulaz/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DateBucket names a date range relative to the caller's local clock.
type DateBucket string

const (
	DateAny       DateBucket = ""
	DateToday     DateBucket = "today"
	DateTomorrow  DateBucket = "tomorrow"
	DateThisWeek  DateBucket = "this-week"
	DateThisMonth DateBucket = "this-month"
)

// PriceBucket names a price range.
type PriceBucket string

const (
	PriceAny     PriceBucket = ""
	PriceUnder20 PriceBucket = "under-20"
	Price20To50  PriceBucket = "20-50"
	PriceOver50  PriceBucket = "over-50"
)

// Query combines every filter dimension. A zero value for a dimension means
// "match all" for that dimension; active dimensions combine with logical AND.
type Query struct {
	Text     string
	Category string
	Date     DateBucket
	Price    PriceBucket
}

var (
	price20 = decimal.NewFromInt(20)
	price50 = decimal.NewFromInt(50)
)

// categoryNames is the fixed classification table. Deriving the category from
// the event id is a known simplification standing in for a real category
// relation; it is kept a pure function of the id so results are reproducible.
var categoryNames = []string{"music", "culture", "sport", "other"}

// CategoryOf classifies an event id into one of the fixed category names.
func CategoryOf(eventID int64) string {
	idx := eventID % int64(len(categoryNames))
	if idx < 0 {
		idx += int64(len(categoryNames))
	}

	return categoryNames[idx]
}

// Apply returns the events matching every active dimension of q. The input
// slices and map are never mutated. Location names resolve through the given
// lookup; dangling location references simply contribute no text to match.
func Apply(events []entity.Event, locations map[int64]entity.Location, q Query, now time.Time) []entity.Event {
	matched := make([]entity.Event, 0, len(events))
	for _, event := range events {
		if !matchText(&event, locations, q.Text) {
			continue
		}
		if q.Category != "" && CategoryOf(event.ID) != q.Category {
			continue
		}
		if !matchDate(&event, q.Date, now) {
			continue
		}
		if !matchPrice(event.Price, q.Price) {
			continue
		}
		matched = append(matched, event)
	}

	return matched
}

func matchText(event *entity.Event, locations map[int64]entity.Location, text string) bool {
	if text == "" {
		return true
	}

	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(event.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(event.Description), needle) {
		return true
	}
	if location, ok := locations[event.LocationID]; ok {
		return strings.Contains(strings.ToLower(location.Name), needle)
	}

	return false
}

func matchDate(event *entity.Event, bucket DateBucket, now time.Time) bool {
	if bucket == DateAny {
		return true
	}

	today := entity.DateOnly(now)
	date := entity.DateOnly(event.Date)

	switch bucket {
	case DateToday:
		return date.Equal(today)
	case DateTomorrow:
		return date.Equal(today.AddDate(0, 0, 1))
	case DateThisWeek:
		return !date.Before(today) && !date.After(today.AddDate(0, 0, 7))
	case DateThisMonth:
		return !date.Before(today) && !date.After(today.AddDate(0, 1, 0))
	default:
		return false
	}
}

func matchPrice(price decimal.Decimal, bucket PriceBucket) bool {
	switch bucket {
	case PriceAny:
		return true
	case PriceUnder20:
		return price.LessThan(price20)
	case Price20To50:
		// The boundary price of exactly 20 belongs here, not to under-20.
		return price.GreaterThanOrEqual(price20) && price.LessThanOrEqual(price50)
	case PriceOver50:
		return price.GreaterThan(price50)
	default:
		return false
	}
}
