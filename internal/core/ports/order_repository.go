// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the unit of work, the outbound email
// gateway, and the partner status feed. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInProduction retrieves all orders currently in production.
	// Used by the status sync job to decide which orders to poll.
	GetAllInProduction(ctx context.Context) ([]*order.Order, error)
}
