package ports

import (
	"context"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/tracker"
)

// RejectionTrackerRepository defines the persistence contract for rejection
// notification trackers. Trackers are keyed by (order id, model id); this
// subsystem creates and mutates them but never deletes them.
type RejectionTrackerRepository interface {
	// FindByModelID retrieves the tracker for one (order, model) pair.
	// Returns errs.ObjectNotFoundError when no notification was ever sent
	// for the pair.
	FindByModelID(ctx context.Context, orderID kernel.UUID, modelID string) (*tracker.RejectionEmailTracker, error)

	// GetAllForOrder retrieves every tracker of an order, keyed by model id.
	// Orders without history yield an empty map.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) (map[string]*tracker.RejectionEmailTracker, error)

	// SaveOrUpdate upserts a tracker: insert on first notification for the
	// pair, update on every subsequent pass.
	SaveOrUpdate(ctx context.Context, aggregate *tracker.RejectionEmailTracker) error
}
