package commands

import (
	"errors"
	"fmt"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/pkg/guard"
)

var (
	ErrSendOrderEmailCommandIsNotConstructed = errors.New(
		"SendOrderEmailCommand must be created via NewSendOrderEmailCommand constructor",
	)
	ErrUnknownEmailTemplate = errors.New("unknown email template")
)

// EmailTemplate selects which ad-hoc order email to send.
// The values match the template names accepted by the original console tool,
// so existing runbooks keep working.
type EmailTemplate string

const (
	TemplateOrderConfirmation        EmailTemplate = "orderConfirmation"
	TemplateBankTransferConfirmation EmailTemplate = "bankTransferEmail"
	TemplateShipmentConfirmation     EmailTemplate = "shipmentConfirmation"
	TemplateOrderCancellation        EmailTemplate = "order_cancellation"
	TemplatePartnerPaymentTerms      EmailTemplate = "partnerPaymentTermsNotificationEmail"
)

// Validate checks that the template is one of the known selectors.
func (t EmailTemplate) Validate() error {
	switch t {
	case TemplateOrderConfirmation,
		TemplateBankTransferConfirmation,
		TemplateShipmentConfirmation,
		TemplateOrderCancellation,
		TemplatePartnerPaymentTerms:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEmailTemplate, string(t))
	}
}

// SendOrderEmailCommand represents an ad-hoc request to (re)send one order
// email. An optional recipient override redirects the email without touching
// the stored customer address.
type SendOrderEmailCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	template      EmailTemplate
	overrideEmail string

	guard guard.ConstructorGuard
}

// NewSendOrderEmailCommand creates an ad-hoc email command.
// overrideEmail may be empty to send to the order's customer.
func NewSendOrderEmailCommand(
	orderID kernel.UUID,
	template EmailTemplate,
	overrideEmail string,
) (SendOrderEmailCommand, error) {
	emailCommand := SendOrderEmailCommand{
		overrideEmail: overrideEmail,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		emailCommand.setOrderID(orderID),
		emailCommand.setTemplate(template),
	); err != nil {
		return SendOrderEmailCommand{}, err
	}

	return emailCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendOrderEmailCommandIsNotConstructed if validation fails.
func (c SendOrderEmailCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderEmailCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to send for.
func (c SendOrderEmailCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Template returns the selected email template.
func (c SendOrderEmailCommand) Template() EmailTemplate {
	return c.template
}

// OverrideEmail returns the recipient override, or empty for the customer's
// stored address.
func (c SendOrderEmailCommand) OverrideEmail() string {
	return c.overrideEmail
}

func (c *SendOrderEmailCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SendOrderEmailCommand) setTemplate(template EmailTemplate) error {
	if err := template.Validate(); err != nil {
		return err
	}

	c.template = template
	return nil
}
