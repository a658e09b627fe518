package ports

import (
	"context"

	"ordermail/internal/core/domain/model/order"
	"ordermail/internal/core/domain/model/rejection"
)

// OrderEmailSender is the outbound gateway for customer-facing order emails.
// Template rendering and delivery (including retries) belong to the gateway;
// from this subsystem's perspective sends are fire-and-forget and errors
// surface as ordinary return values.
type OrderEmailSender interface {
	// SendModelRejection sends one rejection notification covering one
	// material of a produced item. The aggregate carries the order, the
	// model, the item coverage, and the assigned rejection key.
	SendModelRejection(ctx context.Context, aggregate *rejection.ModelRejection, material rejection.Material) error

	// SendOrderConfirmation sends the order confirmation email.
	SendOrderConfirmation(ctx context.Context, ord *order.Order) error

	// SendBankTransferConfirmation sends the bank-transfer payment confirmation email.
	SendBankTransferConfirmation(ctx context.Context, ord *order.Order) error

	// SendShipmentConfirmation sends the shipment confirmation email.
	SendShipmentConfirmation(ctx context.Context, ord *order.Order) error

	// SendOrderCancellation sends the order cancellation email.
	SendOrderCancellation(ctx context.Context, ord *order.Order) error

	// SendPartnerPaymentTermsNotification sends the partner payment-terms notice.
	SendPartnerPaymentTermsNotification(ctx context.Context, ord *order.Order) error
}
