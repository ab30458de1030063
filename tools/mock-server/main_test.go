package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTokenHandler(t *testing.T) {
	t.Parallel()

	h := tokenHandler(testLogger())

	t.Run("requires basic auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/identity/v1/oauth2/token", nil)
		rec := httptest.NewRecorder()
		h(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", rec.Code)
		}
	})

	t.Run("issues token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/identity/v1/oauth2/token", nil)
		req.SetBasicAuth("app", "cert")
		rec := httptest.NewRecorder()
		h(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("want 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "access_token") {
			t.Fatalf("missing access_token in %s", rec.Body.String())
		}
	})
}

func TestTradingHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     string
		fail     bool
		token    string
		wantAck  string
		wantBody string
	}{
		{
			name:     "add item succeeds",
			call:     "AddItem",
			token:    "mock-token",
			wantAck:  "<Ack>Success</Ack>",
			wantBody: "<ItemID>",
		},
		{
			name:     "verify returns warning",
			call:     "VerifyAddFixedPriceItem",
			token:    "mock-token",
			wantAck:  "<Ack>Warning</Ack>",
			wantBody: "VerifyAddFixedPriceItemResponse",
		},
		{
			name:     "picture upload returns hosted url",
			call:     "UploadSiteHostedPictures",
			token:    "mock-token",
			wantAck:  "<Ack>Success</Ack>",
			wantBody: "<FullURL>",
		},
		{
			name:    "missing token fails",
			call:    "AddItem",
			token:   "",
			wantAck: "<Ack>Failure</Ack>",
		},
		{
			name:    "fail mode answers failure",
			call:    "AddFixedPriceItem",
			fail:    true,
			token:   "mock-token",
			wantAck: "<Ack>Failure</Ack>",
		},
		{
			name:    "unknown call rejected",
			call:    "GetMyeBaySelling",
			token:   "mock-token",
			wantAck: "<Ack>Failure</Ack>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := tradingHandler(testLogger(), tt.fail)

			req := httptest.NewRequest(http.MethodPost, "/ws/api.dll", strings.NewReader("<x/>"))
			req.Header.Set("X-EBAY-API-CALL-NAME", tt.call)
			if tt.token != "" {
				req.Header.Set("X-EBAY-API-IAF-TOKEN", tt.token)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			body := rec.Body.String()
			if !strings.Contains(body, tt.wantAck) {
				t.Fatalf("want %s in %s", tt.wantAck, body)
			}
			if tt.wantBody != "" && !strings.Contains(body, tt.wantBody) {
				t.Fatalf("want %s in %s", tt.wantBody, body)
			}
		})
	}
}

func TestPolicyHandler(t *testing.T) {
	t.Parallel()

	h := policyHandler(testLogger(), "fulfillmentPolicies", "fulfillmentPolicyId", "mock-ship-1")

	req := httptest.NewRequest(http.MethodGet, "/sell/account/v1/fulfillment_policy", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `"fulfillmentPolicies"`) || !strings.Contains(body, "mock-ship-1") {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestLocationHandler(t *testing.T) {
	t.Parallel()

	h := locationHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sell/inventory/v1/location", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if !strings.Contains(rec.Body.String(), `"country":"US"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
