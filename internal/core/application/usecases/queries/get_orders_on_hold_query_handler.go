package queries

import (
	"context"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersOnHoldQueryHandler retrieves held orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersOnHoldQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersOnHoldQueryHandler creates a handler for held-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersOnHoldQueryHandler(db *gorm.DB) GetOrdersOnHoldQueryHandler {
	return GetOrdersOnHoldQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders on model-fix hold.
// Returns a slice of order read models sorted by customer email.
func (h GetOrdersOnHoldQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersOnHoldQuery,
) ([]GetOrdersOnHoldQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersOnHoldQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_email
		FROM orders
		WHERE status = ?
		ORDER BY customer_email
	`, int(order.ModelFixHold)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOrdersOnHoldQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &response.CustomerEmail); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
