package ports

import (
	"context"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/statusreport"
)

// OrderStatusProvider fetches the manufacturing partner's current status
// document for one order. Used by the status sync job; the webhook receives
// the same document pushed by the partner instead.
type OrderStatusProvider interface {
	Fetch(ctx context.Context, orderID kernel.UUID) (*statusreport.OrderStatus, error)
}
