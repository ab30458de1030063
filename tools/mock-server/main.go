// Package main implements a mock eBay API server for local development.
// It simulates the OAuth token endpoint, the Trading API (AddItem,
// VerifyAddItem, and picture upload calls), and the Account and
// Inventory APIs, so the full listing pipeline can run without real
// eBay credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

// itemIDs hands out sequential fake item ids.
var itemIDs atomic.Int64

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	failCalls := flag.Bool("fail", false, "answer Trading calls with a Failure Ack")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	itemIDs.Store(110554200)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", tokenHandler(logger))
	mux.HandleFunc("POST /ws/api.dll", tradingHandler(logger, *failCalls))
	mux.HandleFunc("GET /sell/account/v1/fulfillment_policy", policyHandler(logger, "fulfillmentPolicies", "fulfillmentPolicyId", "mock-ship-1"))
	mux.HandleFunc("GET /sell/account/v1/payment_policy", policyHandler(logger, "paymentPolicies", "paymentPolicyId", "mock-pay-1"))
	mux.HandleFunc("GET /sell/account/v1/return_policy", policyHandler(logger, "returnPolicies", "returnPolicyId", "mock-ret-1"))
	mux.HandleFunc("GET /sell/inventory/v1/location", locationHandler(logger))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr, "fail_calls", *failCalls)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"call", r.Header.Get("X-EBAY-API-CALL-NAME"),
		)
		next.ServeHTTP(w, r)
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate Basic Auth header is present (don't verify creds).
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("token request missing Basic Auth header")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "mock-token-v1-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   7200,
			"token_type":   "User Access Token",
		})
		logger.Info("issued mock token")
	}
}

// tradingHandler dispatches on the Trading call name header the way the
// real /ws/api.dll endpoint does.
func tradingHandler(logger *slog.Logger, fail bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		call := r.Header.Get("X-EBAY-API-CALL-NAME")
		if r.Header.Get("X-EBAY-API-IAF-TOKEN") == "" {
			logger.Warn("trading call missing IAF token", "call", call)
			writeTradingFailure(w, call, "931", "Auth token is invalid.")
			return
		}

		if fail {
			writeTradingFailure(w, call, "240", "The item cannot be listed or modified.")
			return
		}

		w.Header().Set("Content-Type", "text/xml")
		switch call {
		case "AddItem", "AddFixedPriceItem":
			id := itemIDs.Add(1)
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<%sResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
  <ItemID>%d</ItemID>
  <Fees><Fee><Name>InsertionFee</Name><Fee currencyID="USD">0.30</Fee></Fee></Fees>
</%sResponse>`, call, id, call)
			logger.Info("listed mock item", "call", call, "item_id", id)
		case "VerifyAddItem", "VerifyAddFixedPriceItem":
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<%sResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Warning</Ack>
  <Errors>
    <SeverityCode>Warning</SeverityCode>
    <ErrorCode>21917091</ErrorCode>
    <ShortMessage>Funds availability may vary.</ShortMessage>
    <LongMessage>Funds from your sales may be unavailable for a period of time.</LongMessage>
  </Errors>
</%sResponse>`, call, call)
		case "UploadSiteHostedPictures":
			id := itemIDs.Add(1)
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<UploadSiteHostedPicturesResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Success</Ack>
  <SiteHostedPictureDetails>
    <FullURL>https://i.ebayimg.test/images/g/mock-%d/s-l1600.jpg</FullURL>
  </SiteHostedPictureDetails>
</UploadSiteHostedPicturesResponse>`, id)
		default:
			writeTradingFailure(w, call, "2", "Unsupported API call.")
		}
	}
}

func writeTradingFailure(w http.ResponseWriter, call, code, message string) {
	if call == "" {
		call = "AddItem"
	}
	w.Header().Set("Content-Type", "text/xml")
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<%sResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Failure</Ack>
  <Errors>
    <SeverityCode>Error</SeverityCode>
    <ErrorCode>%s</ErrorCode>
    <ShortMessage>%s</ShortMessage>
    <LongMessage>%s</LongMessage>
  </Errors>
</%sResponse>`, call, code, message, message, call)
}

func policyHandler(logger *slog.Logger, listKey, idKey, id string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			listKey: []map[string]any{
				{idKey: id, "name": "mock " + listKey},
			},
		})
		logger.Debug("served policies", "list", listKey)
	}
}

func locationHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"locations": []map[string]any{
				{
					"merchantLocationKey": "default",
					"location": map[string]any{
						"address": map[string]any{
							"country": "US",
							"city":    "Portland",
						},
					},
				},
			},
		})
		logger.Debug("served inventory location")
	}
}
