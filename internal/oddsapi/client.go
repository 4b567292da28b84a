// Package oddsapi fetches futures (outrights) prices from The Odds API and
// normalizes bookmaker outcomes into domain FuturesOutcome values. An error
// payload from the provider is surfaced as a ProviderError so callers can
// distinguish "the API failed" from "no futures posted yet", which is an
// empty but valid result.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/odds"
)

// DefaultBaseURL is the production Odds API endpoint.
const DefaultBaseURL = "https://api.the-odds-api.com"

// ProviderError is an error payload returned by the odds provider, as opposed
// to a transport failure or an empty result.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("odds provider error (status %d): %s", e.StatusCode, e.Message)
}

// Client is an authenticated Odds API client.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

// NewClient creates an Odds API client.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("odds api key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = 30 * time.Second
	retryClient.RetryMax = 3
	retryClient.Logger = nil

	return &Client{baseURL: baseURL, apiKey: apiKey, http: retryClient}, nil
}

// outcome mirrors one bookmaker outcome in the upstream payload.
type outcome struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

type market struct {
	Key      string    `json:"key"`
	Outcomes []outcome `json:"outcomes"`
}

type bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []market `json:"markets"`
}

type event struct {
	ID         string      `json:"id"`
	SportKey   string      `json:"sport_key"`
	Bookmakers []bookmaker `json:"bookmakers"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// GetFuturesOdds fetches outright prices for a market key (e.g.
// "americanfootball_ncaaf_championship_winner") across all bookmakers.
// Every quoted price for every outcome is returned; de-duplication to the
// single best-priced entry per outcome is the caller's concern via
// odds.DedupeBestPrice. An empty slice with a nil error means the market has
// no prices posted yet.
func (c *Client) GetFuturesOdds(ctx context.Context, marketKey string) ([]models.FuturesOutcome, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", "us")
	params.Set("markets", "outrights")
	params.Set("oddsFormat", "american")

	endpoint := fmt.Sprintf("%s/v4/sports/%s/odds?%s", c.baseURL, marketKey, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build retryable request: %w", err)
	}

	start := time.Now()
	reqOutcome := "error"
	defer func() {
		metrics.RecordAPIRequest("oddsapi", reqOutcome, time.Since(start).Seconds())
	}()

	resp, err := c.http.Do(retryReq.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("futures odds request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var payload errorPayload
		if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
			return nil, &ProviderError{StatusCode: resp.StatusCode, Message: payload.Message}
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: "unrecognized error payload"}
	}

	var events []event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to decode futures payload: %w", err)
	}

	outcomes := make([]models.FuturesOutcome, 0)
	for _, ev := range events {
		for _, bk := range ev.Bookmakers {
			for _, mk := range bk.Markets {
				for _, oc := range mk.Outcomes {
					outcomes = append(outcomes, models.FuturesOutcome{
						Name:         oc.Name,
						Description:  oc.Description,
						AmericanOdds: oc.Price,
						ImpliedProb:  odds.AmericanToImplied(oc.Price),
					})
				}
			}
		}
	}
	reqOutcome = "success"
	return outcomes, nil
}
