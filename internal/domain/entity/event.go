package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a catalog entry a visitor can buy tickets for. Immutable from the
// client's perspective outside the admin flows.
type Event struct {
	ID            int64 // Canonical identifier, normalized by the gateway before caching.
	Name          string
	Description   string
	Date          time.Time // Civil date of the event, midnight local time.
	StartsAt      string    // Wall-clock start, "HH:MM".
	LocationID    int64     // Reference into the locations collection; may dangle.
	ResponsibleID int64     // Employee responsible for the event; may dangle.
	Price         decimal.Decimal
}

// Past reports whether the event's date is strictly before today.
// Both sides are truncated to civil dates in the caller's zone.
func (e *Event) Past(today time.Time) bool {
	return e.Date.Before(DateOnly(today))
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
