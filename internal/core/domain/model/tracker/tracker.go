package tracker

import (
	"errors"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/pkg/errs"
)

var (
	// ErrTrackerIsNotConstructed is returned when a RejectionEmailTracker was not
	// created through the NewRejectionEmailTracker or RestoreRejectionEmailTracker
	// factory methods.
	ErrTrackerIsNotConstructed = errors.New(
		"RejectionEmailTracker must be created via NewRejectionEmailTracker or RestoreRejectionEmailTracker constructor",
	)

	// ErrModelIDIsRequired is returned when a tracker is created without the
	// produced item's model id.
	ErrModelIDIsRequired = errs.NewValueIsRequiredError("modelId")
)

// RejectionEmailTracker is the durable record of which rejection notifications
// have already been sent for one (order, produced item) pair.
//
// Invariants:
//   - The deviation-id set only grows; ids are never removed
//   - SentCount only increments, once per material processed in a pass
//   - Order-item coverage only grows
//   - RejectionKey is deterministic for the (model, order) pair, so
//     overwriting it on every send is idempotent
//
// A tracker is created on the first notification for its pair, mutated on
// every subsequent pass, and never deleted by this subsystem.
type RejectionEmailTracker struct {
	id           kernel.UUID
	orderID      kernel.UUID
	modelID      string
	deviationIDs []string
	sentCount    int
	orderItemIDs []kernel.UUID
	rejectionKey string

	isConstructed bool
}

// NewRejectionEmailTracker creates a fresh tracker for an (order, model) pair
// that has never been notified. SentCount starts at zero and the sets are empty.
func NewRejectionEmailTracker(orderID kernel.UUID, modelID string) (*RejectionEmailTracker, error) {
	return RestoreRejectionEmailTracker(kernel.NewUUID(), orderID, modelID, nil, 0, nil, "")
}

// RestoreRejectionEmailTracker reconstructs a tracker from persisted state.
func RestoreRejectionEmailTracker(
	id kernel.UUID,
	orderID kernel.UUID,
	modelID string,
	deviationIDs []string,
	sentCount int,
	orderItemIDs []kernel.UUID,
	rejectionKey string,
) (*RejectionEmailTracker, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if modelID == "" {
		return nil, ErrModelIDIsRequired
	}

	t := &RejectionEmailTracker{
		id:            id,
		orderID:       orderID,
		modelID:       modelID,
		sentCount:     sentCount,
		rejectionKey:  rejectionKey,
		isConstructed: true,
	}
	t.mergeDeviationIDs(deviationIDs)
	t.mergeOrderItemIDs(orderItemIDs)

	return t, nil
}

// Validate ensures the tracker was created through a factory method.
func (t *RejectionEmailTracker) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackerIsNotConstructed
	}
	return nil
}

// ID returns the tracker's unique identifier.
func (t *RejectionEmailTracker) ID() kernel.UUID {
	return t.id
}

// OrderID returns the order half of the tracker's key.
func (t *RejectionEmailTracker) OrderID() kernel.UUID {
	return t.orderID
}

// ModelID returns the produced-item half of the tracker's key.
func (t *RejectionEmailTracker) ModelID() string {
	return t.modelID
}

// DeviationIDs returns the already-notified deviation ids in first-seen order.
func (t *RejectionEmailTracker) DeviationIDs() []string {
	return t.deviationIDs
}

// SentCount returns how many materials have been processed across all passes.
func (t *RejectionEmailTracker) SentCount() int {
	return t.sentCount
}

// OrderItemIDs returns the order items covered by sent notifications.
func (t *RejectionEmailTracker) OrderItemIDs() []kernel.UUID {
	return t.orderItemIDs
}

// RejectionKey returns the last-assigned dispatch key.
func (t *RejectionEmailTracker) RejectionKey() string {
	return t.rejectionKey
}

// HasDeviation reports whether a non-empty deviation id has already produced
// a notification. Empty ids are never considered seen: legacy reasons without
// a deviation id cannot be deduplicated by identity.
func (t *RejectionEmailTracker) HasDeviation(deviationID string) bool {
	if deviationID == "" {
		return false
	}
	for _, existing := range t.deviationIDs {
		if existing == deviationID {
			return true
		}
	}
	return false
}

// RecordSent records one processed material: it unions the material's
// deviation ids and the aggregate's order-item coverage into the tracker,
// increments SentCount by one, and overwrites the rejection key with the
// freshly computed value.
func (t *RejectionEmailTracker) RecordSent(
	deviationIDs []string,
	orderItemIDs []kernel.UUID,
	rejectionKey string,
) {
	t.mergeDeviationIDs(deviationIDs)
	t.mergeOrderItemIDs(orderItemIDs)
	t.sentCount++
	t.rejectionKey = rejectionKey
}

func (t *RejectionEmailTracker) mergeDeviationIDs(ids []string) {
	for _, id := range ids {
		if t.containsDeviationID(id) {
			continue
		}
		t.deviationIDs = append(t.deviationIDs, id)
	}
}

// containsDeviationID is the raw set membership check, unlike HasDeviation it
// treats the empty id as a regular set element so merging stays idempotent.
func (t *RejectionEmailTracker) containsDeviationID(id string) bool {
	for _, existing := range t.deviationIDs {
		if existing == id {
			return true
		}
	}
	return false
}

func (t *RejectionEmailTracker) mergeOrderItemIDs(ids []kernel.UUID) {
	for _, id := range ids {
		if t.containsOrderItemID(id) {
			continue
		}
		t.orderItemIDs = append(t.orderItemIDs, id)
	}
}

func (t *RejectionEmailTracker) containsOrderItemID(id kernel.UUID) bool {
	for _, existing := range t.orderItemIDs {
		if existing.IsEqual(id) {
			return true
		}
	}
	return false
}
