// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/pkg/guard"
)

var ErrGetOrdersOnHoldQueryIsNotConstructed = errors.New(
	"GetOrdersOnHoldQuery must be created via NewGetOrdersOnHoldQuery constructor",
)

// GetOrdersOnHoldQuery retrieves all orders currently held for model fixes.
// Support staff use the result to see which orders are blocked on customer
// review after a rejection notification went out.
//
// Example:
//
//	query := NewGetOrdersOnHoldQuery()
//	handler := NewGetOrdersOnHoldQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve held orders: %w", err)
//	}
type GetOrdersOnHoldQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersOnHoldQuery creates a query to retrieve all held orders.
// This is a parameterless query that fetches the complete hold list.
func NewGetOrdersOnHoldQuery() GetOrdersOnHoldQuery {
	return GetOrdersOnHoldQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersOnHoldQueryIsNotConstructed if validation fails.
func (q GetOrdersOnHoldQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersOnHoldQueryIsNotConstructed)
}

// GetOrdersOnHoldQueryResponse represents one held order in the read model.
type GetOrdersOnHoldQueryResponse struct {
	ID            kernel.UUID
	CustomerEmail string
}
