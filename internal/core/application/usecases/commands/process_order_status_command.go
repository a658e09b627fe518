package commands

import (
	"errors"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/statusreport"
	"ordermail/internal/pkg/guard"
)

var (
	ErrProcessOrderStatusCommandIsNotConstructed = errors.New(
		"ProcessOrderStatusCommand must be created via NewProcessOrderStatusCommand constructor",
	)
	ErrStatusReportIsRequired = errors.New("status report is required")
)

// ProcessOrderStatusCommand represents one processing pass over a partner
// order-status report: normalize its rejections, place the order on hold, and
// send a notification per newly observed rejection material.
//
// Example:
//
//	cmd, err := NewProcessOrderStatusCommand(orderID, report)
//	if err != nil {
//	    return fmt.Errorf("invalid status report: %w", err)
//	}
//
//	handler := NewProcessOrderStatusCommandHandler(uowFactory, sender, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status pass failed: %w", err)
//	}
type ProcessOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	report  *statusreport.OrderStatus

	guard guard.ConstructorGuard
}

// NewProcessOrderStatusCommand creates a command for one status report pass.
// Validates that the order id is valid and the report is present.
func NewProcessOrderStatusCommand(
	orderID kernel.UUID,
	report *statusreport.OrderStatus,
) (ProcessOrderStatusCommand, error) {
	statusCommand := ProcessOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setReport(report),
	); err != nil {
		return ProcessOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderStatusCommandIsNotConstructed if validation fails.
func (c ProcessOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the report belongs to.
func (c ProcessOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Report returns the partner's status report document.
func (c ProcessOrderStatusCommand) Report() *statusreport.OrderStatus {
	return c.report
}

func (c *ProcessOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessOrderStatusCommand) setReport(report *statusreport.OrderStatus) error {
	if report == nil {
		return ErrStatusReportIsRequired
	}

	c.report = report
	return nil
}
