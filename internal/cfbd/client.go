package cfbd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/yourusername/gridiron-edge/internal/metrics"
)

// DefaultBaseURL is the production CollegeFootballData API endpoint.
const DefaultBaseURL = "https://api.collegefootballdata.com"

// Client is an authenticated CollegeFootballData API client.
type Client struct {
	baseURL string
	token   string
	http    *rateLimitedHTTPClient
}

// NewClient creates a CFBD client. The bearer token is required for every
// endpoint this application uses.
func NewClient(baseURL, token string, cfg HTTPClientConfig, logger *log.Logger) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    newRateLimitedHTTPClient(cfg, logger),
	}, nil
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// getJSON performs an authenticated GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return NewAPIError(endpoint, ErrCodeInvalidData, "failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.RecordAPIRequest("cfbd", outcome, time.Since(start).Seconds())
	}()

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return NewAPIError(endpoint, ErrCodeNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return NewAPIError(endpoint, ErrCodeAuthenticationFailed, "bearer token rejected", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewAPIError(endpoint, ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
	case resp.StatusCode == http.StatusNotFound:
		return NewAPIError(endpoint, ErrCodeNotFound, "endpoint not found", nil)
	case resp.StatusCode >= 500:
		return NewAPIError(endpoint, ErrCodeServerError, fmt.Sprintf("server returned %d", resp.StatusCode), nil)
	case resp.StatusCode != http.StatusOK:
		return NewAPIError(endpoint, ErrCodeInvalidData, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewAPIError(endpoint, ErrCodeNetworkError, "failed to read response", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return NewAPIError(endpoint, ErrCodeInvalidData, "failed to decode response", err)
	}
	outcome = "success"
	return nil
}
