// Package delivery defines the contract every transport surface fulfils.
package delivery

import "context"

// Delivery is a servable transport surface. Serve blocks until the surface
// stops; shutdown is driven through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
