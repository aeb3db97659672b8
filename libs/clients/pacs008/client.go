//go:generate mockgen -destination=mock/mock.go -package=mock_pacs008 github.com/pixpay/pacs008-client/libs/clients/pacs008 Client

package pacs008

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pixpay/pacs008-client/libs/clients"
	appctx "github.com/pixpay/pacs008-client/libs/context"
)

// PaymentsPath is where the server accepts payment message generation requests
const PaymentsPath = "/api/pix/payments"

// ErrServerMissing - no message generation server was configured
var ErrServerMissing = errors.New("pacs008 server address is missing")

// Client abstracts over the underlying client
type Client interface {
	// GenerateMessage posts the request and returns the generated pacs.008 document verbatim.
	// A non 2xx answer is returned as an error carrying clients.HTTPState with the response body.
	GenerateMessage(ctx context.Context, req PaymentRequest) (string, error)
}

// HTTPClient wraps http.Client for interacting with the message generation server
type HTTPClient struct {
	client *clients.SimpleHTTPClient
}

// New returns a new instrumented HTTPClient
func New(serverURL, authToken string, timeout time.Duration) (Client, error) {
	if serverURL == "" {
		return nil, ErrServerMissing
	}
	client, err := clients.NewInstrumented("pacs008", serverURL, authToken, timeout)
	if err != nil {
		return nil, err
	}
	return NewClientWithPrometheus(&HTTPClient{client}, "pacs008_client"), nil
}

// NewWithContext returns a new HTTPClient, retrieving the server settings from the context
func NewWithContext(ctx context.Context) (Client, error) {
	serverURL, err := appctx.GetStringFromContext(ctx, appctx.Pacs008ServerCTXKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get pacs008 server from context: %w", ErrServerMissing)
	}
	// token and timeout are optional
	token, _ := appctx.GetStringFromContext(ctx, appctx.Pacs008AccessTokenCTXKey)
	timeout, _ := appctx.GetDurationFromContext(ctx, appctx.Pacs008TimeoutCTXKey)

	return New(serverURL, token, timeout)
}

// GenerateMessage implements Client
func (c *HTTPClient) GenerateMessage(ctx context.Context, paymentRequest PaymentRequest) (string, error) {
	req, err := c.client.NewRequest(ctx, http.MethodPost, PaymentsPath, paymentRequest)
	if err != nil {
		return "", err
	}
	req.Header.Set("accept", "application/xml")

	var document string
	_, err = c.client.Do(ctx, req, &document)
	if err != nil {
		return "", fmt.Errorf("failed to generate pacs.008 message: %w", err)
	}
	return document, nil
}
