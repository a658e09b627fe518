// Package mailer implements the outbound email gateway client. Template
// rendering and delivery retries live in the gateway service; this adapter
// only posts the email payloads over HTTP.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ordermail/internal/core/domain/model/order"
	"ordermail/internal/core/domain/model/rejection"
)

const defaultTimeout = 10 * time.Second

// HTTPEmailSender sends order emails through the mail gateway's HTTP API.
// Implements ports.OrderEmailSender.
type HTTPEmailSender struct {
	baseURL string
	client  *http.Client
}

// NewHTTPEmailSender creates a gateway client for the given base URL.
// Pass a nil client to use a default one with a request timeout.
func NewHTTPEmailSender(baseURL string, client *http.Client) *HTTPEmailSender {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPEmailSender{baseURL: baseURL, client: client}
}

// emailRequest is the gateway's send-email payload. Payload content depends on
// the template; the gateway renders it into the template's placeholders.
type emailRequest struct {
	Template  string `json:"template"`
	Recipient string `json:"recipient"`
	OrderID   string `json:"orderId"`
	Payload   any    `json:"payload,omitempty"`
}

// rejectionPayload carries the data of one rejection notification.
type rejectionPayload struct {
	ModelID           string          `json:"modelId"`
	Title             string          `json:"title"`
	MaterialID        string          `json:"materialId"`
	MaterialName      string          `json:"materialName,omitempty"`
	AffectedMaterials json.RawMessage `json:"affectedMaterials,omitempty"`
	Reasons           []reasonPayload `json:"reasons"`
	OrderItemIDs      []string        `json:"orderItemIds"`
	RejectionKey      string          `json:"rejectionKey"`
}

type reasonPayload struct {
	DeviationID string   `json:"deviationId,omitempty"`
	ReasonID    string   `json:"reasonId"`
	Reason      string   `json:"reason,omitempty"`
	Comment     string   `json:"comment,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// SendModelRejection sends one rejection notification covering one material of
// a produced item.
func (s *HTTPEmailSender) SendModelRejection(
	ctx context.Context,
	aggregate *rejection.ModelRejection,
	material rejection.Material,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	reasons := make([]reasonPayload, 0, len(material.Reasons()))
	for _, reason := range material.Reasons() {
		reasons = append(reasons, reasonPayload{
			DeviationID: reason.DeviationID(),
			ReasonID:    reason.ReasonID(),
			Reason:      reason.Reason(),
			Comment:     reason.Comment(),
			Images:      reason.Images(),
		})
	}

	itemIDs := make([]string, 0, len(aggregate.OrderItemIDs()))
	for _, id := range aggregate.OrderItemIDs() {
		itemIDs = append(itemIDs, id.String())
	}

	return s.post(ctx, emailRequest{
		Template:  "modelRejection",
		Recipient: aggregate.Order().CustomerEmail(),
		OrderID:   aggregate.Order().ID().String(),
		Payload: rejectionPayload{
			ModelID:           aggregate.Model().ModelID(),
			Title:             aggregate.Model().Title(),
			MaterialID:        material.MaterialID(),
			MaterialName:      material.MaterialName(),
			AffectedMaterials: material.AffectedMaterials(),
			Reasons:           reasons,
			OrderItemIDs:      itemIDs,
			RejectionKey:      aggregate.RejectionKey(),
		},
	})
}

// SendOrderConfirmation sends the order confirmation email.
func (s *HTTPEmailSender) SendOrderConfirmation(ctx context.Context, ord *order.Order) error {
	return s.sendPlain(ctx, "orderConfirmation", ord)
}

// SendBankTransferConfirmation sends the bank-transfer payment confirmation email.
func (s *HTTPEmailSender) SendBankTransferConfirmation(ctx context.Context, ord *order.Order) error {
	return s.sendPlain(ctx, "bankTransferEmail", ord)
}

// SendShipmentConfirmation sends the shipment confirmation email.
func (s *HTTPEmailSender) SendShipmentConfirmation(ctx context.Context, ord *order.Order) error {
	return s.sendPlain(ctx, "shipmentConfirmation", ord)
}

// SendOrderCancellation sends the order cancellation email.
func (s *HTTPEmailSender) SendOrderCancellation(ctx context.Context, ord *order.Order) error {
	return s.sendPlain(ctx, "order_cancellation", ord)
}

// SendPartnerPaymentTermsNotification sends the partner payment-terms notice.
func (s *HTTPEmailSender) SendPartnerPaymentTermsNotification(ctx context.Context, ord *order.Order) error {
	return s.sendPlain(ctx, "partnerPaymentTermsNotificationEmail", ord)
}

func (s *HTTPEmailSender) sendPlain(ctx context.Context, template string, ord *order.Order) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	return s.post(ctx, emailRequest{
		Template:  template,
		Recipient: ord.CustomerEmail(),
		OrderID:   ord.ID().String(),
	})
}

func (s *HTTPEmailSender) post(ctx context.Context, request emailRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, s.baseURL+"/api/v1/emails", bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("mail gateway rejected %q email: status %d", request.Template, resp.StatusCode)
	}

	return nil
}
