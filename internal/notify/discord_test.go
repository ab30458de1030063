package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

func testOutcome() *OutcomePayload {
	return &OutcomePayload{
		SKU:         "PC-20260301120000-ab12cd34",
		Title:       "Ukraine 1918 postcard, Kyiv cathedral",
		ListingURL:  "https://www.ebay.com/itm/110554208",
		ImageURL:    "https://i.ibb.co/abc/front.jpg",
		Price:       "$7.50",
		Environment: domain.EnvProduction,
		ListingType: domain.ListingFixedPrice,
		Succeeded:   true,
	}
}

func TestDiscordNotifier_SendOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*OutcomePayload)
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
		wantTitle  string
	}{
		{
			name:       "success uses green embed",
			mutate:     func(*OutcomePayload) {},
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
			wantTitle:  "Listed: Ukraine 1918 postcard, Kyiv cathedral",
		},
		{
			name: "warnings use yellow embed",
			mutate: func(o *OutcomePayload) {
				o.Warnings = []string{"funds may be held"}
			},
			statusCode: http.StatusNoContent,
			wantColor:  colorYellow,
			wantTitle:  "Listed with warnings: Ukraine 1918 postcard, Kyiv cathedral",
		},
		{
			name: "failure uses red embed",
			mutate: func(o *OutcomePayload) {
				o.Succeeded = false
				o.ErrorText = "87: The category selected is not valid."
				o.ListingURL = ""
			},
			statusCode: http.StatusNoContent,
			wantColor:  colorRed,
			wantTitle:  "Listing failed: Ukraine 1918 postcard, Kyiv cathedral",
		},
		{
			name:       "discord returns 429 rate limited",
			mutate:     func(*OutcomePayload) {},
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			mutate:     func(*OutcomePayload) {},
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got discordWebhookPayload
			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			outcome := testOutcome()
			tt.mutate(outcome)

			notifier := NewDiscordNotifier(srv.URL)
			err := notifier.SendOutcome(context.Background(), outcome)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, got.Embeds, 1)
			assert.Equal(t, tt.wantColor, got.Embeds[0].Color)
			assert.Equal(t, tt.wantTitle, got.Embeds[0].Title)
		})
	}
}

func TestDiscordNotifier_SandboxNote(t *testing.T) {
	t.Parallel()

	var got discordWebhookPayload
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusNoContent)
		}),
	)
	defer srv.Close()

	outcome := testOutcome()
	outcome.Environment = domain.EnvSandbox

	notifier := NewDiscordNotifier(srv.URL)
	require.NoError(t, notifier.SendOutcome(context.Background(), outcome))

	require.Len(t, got.Embeds, 1)
	var foundNote bool
	for _, f := range got.Embeds[0].Fields {
		if f.Name == "Note" {
			foundNote = true
		}
	}
	assert.True(t, foundNote)
}
