// Package order provides domain entities and business logic for order
// lifecycle management. It implements the Order aggregate root with its line
// items and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Item: A line item referencing one produced-item variant
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and a customer email
//   - Order status follows a defined workflow: New -> InProduction -> Fulfilled
//   - Manufacturing rejections move an order onto ModelFixHold for manual review
//   - Placing the hold is idempotent: an order already on hold stays on hold
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
