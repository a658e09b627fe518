package queries

import (
	"errors"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/pkg/guard"
)

var ErrGetRejectionTrackersQueryIsNotConstructed = errors.New(
	"GetRejectionTrackersQuery must be created via NewGetRejectionTrackersQuery constructor",
)

// GetRejectionTrackersQuery retrieves the rejection notification history of
// one order: which produced items were notified, for which deviations, and
// how many times.
type GetRejectionTrackersQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRejectionTrackersQuery creates a query for one order's notification history.
func NewGetRejectionTrackersQuery(orderID kernel.UUID) (GetRejectionTrackersQuery, error) {
	trackersQuery := GetRejectionTrackersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackersQuery.setOrderID(orderID); err != nil {
		return GetRejectionTrackersQuery{}, err
	}

	return trackersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRejectionTrackersQueryIsNotConstructed if validation fails.
func (q GetRejectionTrackersQuery) Validate() error {
	return q.guard.Validate(ErrGetRejectionTrackersQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetRejectionTrackersQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetRejectionTrackersQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetRejectionTrackersQueryResponse represents one tracker in the read model.
type GetRejectionTrackersQueryResponse struct {
	ModelID      string
	DeviationIDs []string
	SentCount    int
	OrderItemIDs []string
	RejectionKey string
}
