package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lightspace/internal/core/httpclient"
	"lightspace/internal/features/checkout/domain"
)

// HTTPGateway implements ports.PaymentGateway against a remote charge
// endpoint. It is the production swap-in for the simulated gateway: the
// state machine stays untouched, only the adapter changes.
type HTTPGateway struct {
	client *http.Client
	url    string
}

// NewHTTPGateway creates a gateway posting charges to the given endpoint.
func NewHTTPGateway(url string) *HTTPGateway {
	return &HTTPGateway{
		client: httpclient.NewClient(30 * time.Second),
		url:    url,
	}
}

// chargeResponse is the remote endpoint's answer.
type chargeResponse struct {
	TransactionID string `json:"transaction_id"`
	Error         string `json:"error"`
}

// Charge posts the charge request and maps the response.
// HTTP 402 is a decline; any other non-200 status is a transport-level error.
func (g *HTTPGateway) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create charge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("charge request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode charge response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return &domain.ChargeResult{
			Success:       true,
			TransactionID: decoded.TransactionID,
		}, nil
	case http.StatusPaymentRequired:
		return &domain.ChargeResult{
			Success:       false,
			DeclineReason: decoded.Error,
		}, nil
	default:
		return nil, fmt.Errorf("payment gateway returned status: %d", resp.StatusCode)
	}
}
