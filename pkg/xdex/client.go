package xdex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client talks to the xdex aggregator's prepare endpoint. Every call is a
// fresh request: no retries, no caching, no deduplication.
type Client struct {
	BaseURL string
	Network string
	HTTP    *http.Client
}

// NewClient creates a client for the given API base URL, e.g.
// "https://api.xdex.xyz/api/xendex".
func NewClient(baseURL, network string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &Client{
		BaseURL: baseURL,
		Network: network,
		HTTP: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// APIError is a non-2xx answer from the aggregator. Message carries the
// server payload's error/message field when one could be extracted.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("xdex API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("xdex API error (status %d): %s", e.StatusCode, e.Message)
}

// PrepareSwap issues a single POST to /swap/prepare and returns the parsed
// response verbatim. Transport failures, non-2xx statuses, and malformed
// bodies all surface as errors; retry policy belongs to the caller.
func (c *Client) PrepareSwap(ctx context.Context, req PrepareRequest) (*PrepareResponse, error) {
	if req.Network == "" {
		req.Network = c.Network
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prepare request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/swap/prepare", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach xdex: %w", err)
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read xdex response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &APIError{StatusCode: res.StatusCode, Message: extractErrorMessage(respBody)}
	}

	var out PrepareResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to decode xdex response: %w", err)
	}
	return &out, nil
}

// GetQuote requests an exact-in quote for a token pair on behalf of a wallet.
func (c *Client) GetQuote(ctx context.Context, tokenIn, tokenOut string, amountIn decimal.Decimal, wallet string) (*PrepareResponse, error) {
	return c.PrepareSwap(ctx, PrepareRequest{
		Network:       c.Network,
		Wallet:        wallet,
		TokenIn:       tokenIn,
		TokenOut:      tokenOut,
		TokenInAmount: amountIn.InexactFloat64(),
		IsExactIn:     true,
	})
}

// extractErrorMessage pulls the message/error field out of an error payload,
// falling back to the raw body when it is not the expected JSON shape.
func extractErrorMessage(body []byte) string {
	var errorResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errorResp); err == nil {
		if errorResp.Message != "" {
			return errorResp.Message
		}
		if errorResp.Error != "" {
			return errorResp.Error
		}
	}
	return strings.TrimSpace(string(body))
}
