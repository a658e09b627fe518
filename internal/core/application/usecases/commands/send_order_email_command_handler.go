package commands

import (
	"context"

	"ordermail/internal/core/domain/model/order"
	"ordermail/internal/core/ports"
)

// SendOrderEmailCommandHandler handles ad-hoc order email sends.
// Loads the order, applies the optional recipient override to the in-memory
// instance only, and dispatches to the template's sender method.
type SendOrderEmailCommandHandler struct {
	uowFactory  OrderUoWFactory
	emailSender ports.OrderEmailSender
}

// NewSendOrderEmailCommandHandler creates a handler for ad-hoc email sends.
func NewSendOrderEmailCommandHandler(
	uowFactory OrderUoWFactory,
	emailSender ports.OrderEmailSender,
) SendOrderEmailCommandHandler {
	return SendOrderEmailCommandHandler{
		uowFactory:  uowFactory,
		emailSender: emailSender,
	}
}

// Handle sends the selected email for the order.
// Returns errs.ObjectNotFoundError when the order does not exist; the
// recipient override is never persisted.
func (h *SendOrderEmailCommandHandler) Handle(ctx context.Context, cmd SendOrderEmailCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	// Read-only use of the unit of work: the transaction is always rolled back.
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.OverrideEmail() != "" {
		if err = ord.OverrideCustomerEmail(cmd.OverrideEmail()); err != nil {
			return err
		}
	}

	return h.send(ctx, cmd.Template(), ord)
}

func (h *SendOrderEmailCommandHandler) send(
	ctx context.Context,
	template EmailTemplate,
	ord *order.Order,
) error {
	switch template {
	case TemplateOrderConfirmation:
		return h.emailSender.SendOrderConfirmation(ctx, ord)
	case TemplateBankTransferConfirmation:
		return h.emailSender.SendBankTransferConfirmation(ctx, ord)
	case TemplateShipmentConfirmation:
		return h.emailSender.SendShipmentConfirmation(ctx, ord)
	case TemplateOrderCancellation:
		return h.emailSender.SendOrderCancellation(ctx, ord)
	case TemplatePartnerPaymentTerms:
		return h.emailSender.SendPartnerPaymentTermsNotification(ctx, ord)
	default:
		return template.Validate()
	}
}
