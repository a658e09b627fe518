package rejection

import (
	"errors"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/order"
)

var (
	// ErrModelRejectionIsNotConstructed is returned when a ModelRejection was not
	// created through the NewModelRejection constructor.
	ErrModelRejectionIsNotConstructed = errors.New(
		"ModelRejection must be created via NewModelRejection constructor",
	)

	// ErrModelIsRequired is returned when a ModelRejection is created without a model.
	ErrModelIsRequired = errors.New("model is required")
)

// ModelRejection groups all newly observed rejection data for one produced
// item within a single processing pass. It is a transient, in-memory build
// target: exactly one exists per distinct model id encountered in a report
// pass, and it is never persisted directly.
type ModelRejection struct {
	ord          *order.Order
	model        *Model
	orderItemIDs []kernel.UUID
	rejectionKey string

	isConstructed bool
}

// NewModelRejection creates the aggregate for one produced item of an order.
func NewModelRejection(ord *order.Order, model *Model) (*ModelRejection, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, ErrModelIsRequired
	}

	return &ModelRejection{
		ord:           ord,
		model:         model,
		isConstructed: true,
	}, nil
}

// Validate ensures the aggregate was created through NewModelRejection.
func (r *ModelRejection) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrModelRejectionIsNotConstructed
	}
	return nil
}

// Order returns the originating order.
func (r *ModelRejection) Order() *order.Order {
	return r.ord
}

// Model returns the produced item this aggregate covers.
func (r *ModelRejection) Model() *Model {
	return r.model
}

// OrderItemIDs returns the order items this rejection applies to, deduplicated,
// in the order they were first added.
func (r *ModelRejection) OrderItemIDs() []kernel.UUID {
	return r.orderItemIDs
}

// AddOrderItemID unions an order item id into the aggregate's coverage set.
func (r *ModelRejection) AddOrderItemID(id kernel.UUID) {
	for _, existing := range r.orderItemIDs {
		if existing.IsEqual(id) {
			return
		}
	}
	r.orderItemIDs = append(r.orderItemIDs, id)
}

// RejectionKey returns the stable key assigned during dispatch.
// Empty until SetRejectionKey is called.
func (r *ModelRejection) RejectionKey() string {
	return r.rejectionKey
}

// SetRejectionKey assigns the dispatch key. Keys are deterministic for a
// (model, order) pair, so reassignment is idempotent.
func (r *ModelRejection) SetRejectionKey(key string) {
	r.rejectionKey = key
}
