package oddsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/yourusername/gridiron-edge/internal/metrics"
)

func TestGetFuturesOddsNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") != "key" {
			t.Errorf("api key not forwarded")
		}
		w.Write([]byte(`[
			{
				"id": "abc", "sport_key": "americanfootball_ncaaf_championship_winner",
				"bookmakers": [
					{"key": "draftkings", "title": "DraftKings", "markets": [
						{"key": "outrights", "outcomes": [
							{"name": "Georgia", "description": "Georgia Bulldogs", "price": 450},
							{"name": "Ohio State", "description": "Ohio State Buckeyes", "price": -120}
						]}
					]},
					{"key": "fanduel", "title": "FanDuel", "markets": [
						{"key": "outrights", "outcomes": [
							{"name": "Georgia", "description": "Georgia Bulldogs", "price": 500}
						]}
					]}
				]
			}
		]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "key")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	outcomes, err := client.GetFuturesOdds(context.Background(), "americanfootball_ncaaf_championship_winner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 quoted outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Name != "Georgia" || outcomes[0].AmericanOdds != 450 {
		t.Errorf("first outcome = %+v", outcomes[0])
	}
	if outcomes[1].ImpliedProb != 54.5 {
		t.Errorf("-120 implied prob = %v, want 54.5", outcomes[1].ImpliedProb)
	}
}

func TestGetFuturesOddsEmptyIsValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, "key")
	outcomes, err := client.GetFuturesOdds(context.Background(), "some_market")
	if err != nil {
		t.Fatalf("empty market must not be an error, got %v", err)
	}
	if len(outcomes) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(outcomes))
	}
}

func TestGetFuturesOddsErrorPayload(t *testing.T) {
	errorBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("oddsapi", "error"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Unknown sport key"}`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, "key")
	_, err := client.GetFuturesOdds(context.Background(), "bogus")

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Message != "Unknown sport key" {
		t.Errorf("message = %q", provErr.Message)
	}

	errorAfter := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("oddsapi", "error"))
	if errorAfter-errorBefore != 1 {
		t.Errorf("error counter moved by %v, want 1", errorAfter-errorBefore)
	}
}

func TestGetFuturesOddsRecordsRequestMetrics(t *testing.T) {
	successBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("oddsapi", "success"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, "key")
	if _, err := client.GetFuturesOdds(context.Background(), "some_market"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	successAfter := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("oddsapi", "success"))
	if successAfter-successBefore != 1 {
		t.Errorf("success counter moved by %v, want 1", successAfter-successBefore)
	}
}
