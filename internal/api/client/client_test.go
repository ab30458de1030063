package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stampdesk/stampdesk/internal/api/client"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

func TestClient_SubmitListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/listings", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Romania 1936 Bucharest RPPC", body["title"])
		assert.Equal(t, "postcard", body["item_family"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.ListingResult{
			Success:    true,
			SKU:        "PC-20260301120000-ab12cd34",
			ItemID:     "110554208",
			ListingURL: "https://www.ebay.com/itm/110554208",
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	result, err := c.SubmitListing(context.Background(), &client.SubmitParams{
		Title:      "Romania 1936 Bucharest RPPC",
		Price:      7.50,
		ItemFamily: "postcard",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "110554208", result.ItemID)
}

func TestClient_ListAttempts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/listings", r.URL.Path)
		assert.Equal(t, "failed", r.URL.Query().Get("status"))
		assert.Equal(t, "STAMP-", r.URL.Query().Get("sku_prefix"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(client.AttemptsResponse{
			Attempts: []domain.Attempt{{SKU: "STAMP-20260301120000-ab12cd34"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	resp, err := c.ListAttempts(context.Background(), &client.ListAttemptsParams{
		Status:    "failed",
		SKUPrefix: "STAMP-",
		Limit:     25,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Attempts, 1)
}

func TestClient_GetAttempt_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"attempt not found"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.GetAttempt(context.Background(), "PC-nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "attempt not found")
}

func TestClient_ResolveCategory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/category", r.URL.Path)
		assert.Equal(t, "Deutsches Reich", r.URL.Query().Get("country"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"region_code":"EU","country_label":"Germany","category_id":47182,"resolved":true}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	resp, err := c.ResolveCategory(context.Background(), "Deutsches Reich")

	require.NoError(t, err)
	assert.True(t, resp.Resolved)
	assert.Equal(t, "Germany", resp.CountryLabel)
}

func TestClient_ServerDown(t *testing.T) {
	t.Parallel()

	// Reserve a port, then close it so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := client.New(url)
	_, err := c.GetPolicies(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}
