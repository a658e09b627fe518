// Package statusfeed implements the client for the manufacturing partner's
// order-status API. The status sync job polls it for orders in production;
// the same document arrives via webhook when the partner pushes instead.
package statusfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/statusreport"
	"ordermail/internal/pkg/errs"
)

const defaultTimeout = 15 * time.Second

// HTTPStatusProvider fetches order-status documents over the partner's HTTP API.
// Implements ports.OrderStatusProvider.
type HTTPStatusProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStatusProvider creates a partner feed client for the given base URL.
// Pass a nil client to use a default one with a request timeout.
func NewHTTPStatusProvider(baseURL string, client *http.Client) *HTTPStatusProvider {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPStatusProvider{baseURL: baseURL, client: client}
}

// Fetch retrieves the current status document for one order.
// Returns errs.ObjectNotFoundError when the partner does not know the order.
func (p *HTTPStatusProvider) Fetch(ctx context.Context, orderID kernel.UUID) (*statusreport.OrderStatus, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/orders/%s/status", p.baseURL, orderID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("orderStatus", orderID.String())
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("status feed returned status %d for order %s", resp.StatusCode, orderID.String())
	}

	var report statusreport.OrderStatus
	if err = json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding status report: %w", err)
	}

	return &report, nil
}
