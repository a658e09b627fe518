package order

import (
	"fmt"

	"ordermail/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the correct fulfillment workflow.
//
// State transitions:
//
//	New ──> InProduction ──> Fulfilled
//	 │          │  ▲
//	 │          ▼  │
//	 └────> ModelFixHold
//	            │
//	New/InProduction/ModelFixHold ──> Cancelled
//
// ModelFixHold indicates the manufacturing partner rejected one or more
// produced items and the order needs manual review before production can
// resume. Status is a value object: transition methods return the next
// state instead of mutating, and the aggregate applies the result.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first placed.
	New

	// InProduction indicates the manufacturing partner is producing the order.
	InProduction

	// ModelFixHold indicates production is on hold pending manual review of
	// manufacturing rejections.
	ModelFixHold

	// Fulfilled indicates the order has been produced and shipped.
	// This is a final state.
	Fulfilled

	// Cancelled indicates the order was cancelled.
	// This is a final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		New:          "New",
		InProduction: "InProduction",
		ModelFixHold: "ModelFixHold",
		Fulfilled:    "Fulfilled",
		Cancelled:    "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:          "New",
		InProduction: "InProduction",
		ModelFixHold: "ModelFixHold",
		Fulfilled:    "Fulfilled",
		Cancelled:    "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid. This is used to ensure
// Status values from external sources (e.g., database) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartProduction transitions the status to InProduction.
//
// Valid transitions:
//   - New -> InProduction
//   - ModelFixHold -> InProduction (hold resolved, production resumes)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) StartProduction() (Status, error) {
	if s != New && s != ModelFixHold {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start production", s.String()),
		)
	}

	return InProduction, nil
}

// ReviewModelFix transitions the status to ModelFixHold.
//
// Valid transitions:
//   - New -> ModelFixHold
//   - InProduction -> ModelFixHold
//
// Invalid transitions:
//   - ModelFixHold -> ModelFixHold (already on hold; callers check first)
//   - Fulfilled / Cancelled -> ModelFixHold (final states)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) ReviewModelFix() (Status, error) {
	if s != New && s != InProduction {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to review model fix", s.String()),
		)
	}

	return ModelFixHold, nil
}

// Fulfill transitions the status to Fulfilled.
//
// Valid transitions:
//   - InProduction -> Fulfilled
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Fulfill() (Status, error) {
	if s != InProduction {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fulfill", s.String()),
		)
	}

	return Fulfilled, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - New -> Cancelled
//   - InProduction -> Cancelled
//   - ModelFixHold -> Cancelled
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if s != New && s != InProduction && s != ModelFixHold {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
