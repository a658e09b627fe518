package order

import (
	"errors"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCustomerEmailIsRequired is returned when an order is created without a
	// customer email address.
	ErrCustomerEmailIsRequired = errs.NewValueIsRequiredError("customer email")
)

// Order is the aggregate root for a placed order. It owns the order's
// lifecycle state and its line items, and enforces the transitions of the
// fulfillment workflow.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a customer email address
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	// customerEmail is the notification recipient for this order.
	customerEmail string

	status Status

	// items are the order's line items, each referencing a produced-item
	// variant through its composite (model, material) key.
	items []Item

	isConstructed bool
}

// Item is a line item within an order. It links the order to one
// produced-item variant of the manufacturing partner's catalog.
type Item struct {
	id         kernel.UUID
	variantKey kernel.ModelMaterialID
}

// NewItem creates a line item with validation.
func NewItem(id kernel.UUID, variantKey kernel.ModelMaterialID) (Item, error) {
	if err := errors.Join(id.Validate(), variantKey.Validate()); err != nil {
		return Item{}, err
	}

	return Item{id: id, variantKey: variantKey}, nil
}

// ID returns the line item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// VariantKey returns the composite (model, material) key of the item's variant.
func (i Item) VariantKey() kernel.ModelMaterialID {
	return i.variantKey
}

// NewOrder creates a new Order in the New status.
// The customer email is required; items may be empty for orders whose lines
// are added later.
func NewOrder(id kernel.UUID, customerEmail string, items []Item) (*Order, error) {
	return RestoreOrder(id, customerEmail, New, items)
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts any valid status, so repositories can rehydrate
// orders at any point of their lifecycle.
func RestoreOrder(id kernel.UUID, customerEmail string, status Status, items []Item) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerEmail(customerEmail),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	order.items = append(order.items, items...)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerEmail returns the notification recipient address for this order.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items in insertion order.
func (o *Order) Items() []Item {
	return o.items
}

// OverrideCustomerEmail replaces the notification recipient for the lifetime
// of this in-memory instance. Repositories never persist the override; it
// exists for ad-hoc sends that redirect a customer's mail.
func (o *Order) OverrideCustomerEmail(email string) error {
	return o.setCustomerEmail(email)
}

// PlaceModelFixHold moves the order into the ModelFixHold status.
//
// The operation is idempotent: an order already on hold stays on hold and no
// error is returned, so a processing pass can call it without checking first.
// From any other status the ReviewModelFix transition is applied; an illegal
// transition (Fulfilled, Cancelled) surfaces as an error and the status is
// left unchanged.
func (o *Order) PlaceModelFixHold() error {
	if o.status == ModelFixHold {
		return nil
	}

	newStatus, err := o.status.ReviewModelFix()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartProduction moves the order into the InProduction status.
// Valid from New (production begins) and ModelFixHold (hold resolved).
func (o *Order) StartProduction() error {
	newStatus, err := o.status.StartProduction()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Fulfill marks the order as fulfilled. Valid only from InProduction.
func (o *Order) Fulfill() error {
	newStatus, err := o.status.Fulfill()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order. Valid from any non-final status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	if email == "" {
		return ErrCustomerEmailIsRequired
	}
	o.customerEmail = email
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
