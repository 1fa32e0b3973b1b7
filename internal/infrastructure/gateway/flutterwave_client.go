package gateway

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"lizexpress.backend/pkg/logger"
)

// VerificationResult is the gateway's answer for a transaction lookup
type VerificationResult struct {
	Successful  bool
	GatewayTxID string
	Amount      float64
	Currency    string
	RawStatus   string
}

// Client verifies transactions against the payment gateway
type Client interface {
	VerifyTransaction(ctx context.Context, txRef string) (*VerificationResult, error)
	// VerifyWebhookSignature checks the verif-hash header of an
	// incoming webhook against the configured secret.
	VerifyWebhookSignature(signature string) bool
}

// FlutterwaveClient talks to the Flutterwave v3 API
type FlutterwaveClient struct {
	baseURL       string
	secretKey     string
	webhookSecret string
	httpClient    *http.Client
}

// NewFlutterwaveClient creates a gateway client with a request timeout
func NewFlutterwaveClient(baseURL, secretKey, webhookSecret string, timeout time.Duration) *FlutterwaveClient {
	return &FlutterwaveClient{
		baseURL:       baseURL,
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID       int64   `json:"id"`
		TxRef    string  `json:"tx_ref"`
		FlwRef   string  `json:"flw_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Status   string  `json:"status"`
	} `json:"data"`
}

// VerifyTransaction asks the gateway whether a transaction settled.
// The charge itself happens on the client side; this call is the
// server's source of truth before anything is persisted.
func (c *FlutterwaveClient) VerifyTransaction(ctx context.Context, txRef string) (*VerificationResult, error) {
	url := fmt.Sprintf("%s/transactions/verify_by_reference?tx_ref=%s", c.baseURL, txRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn(ctx, "gateway verification returned non-200",
			zap.String("tx_ref", txRef),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	result := &VerificationResult{
		Successful:  parsed.Status == "success" && parsed.Data.Status == "successful",
		GatewayTxID: fmt.Sprintf("%d", parsed.Data.ID),
		Amount:      parsed.Data.Amount,
		Currency:    parsed.Data.Currency,
		RawStatus:   parsed.Data.Status,
	}
	return result, nil
}

// VerifyWebhookSignature compares the webhook hash header with the
// configured secret in constant time.
func (c *FlutterwaveClient) VerifyWebhookSignature(signature string) bool {
	if c.webhookSecret == "" || signature == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(signature), []byte(c.webhookSecret)) == 1
}
