package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

const (
	colorGreen  = 0x2ECC71 // listing created
	colorYellow = 0xF1C40F // created with warnings
	colorRed    = 0xE74C3C // attempt failed
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// SendOutcome sends one listing outcome as a Discord embed.
func (d *DiscordNotifier) SendOutcome(ctx context.Context, outcome *OutcomePayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(outcome)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(outcome *OutcomePayload) discordEmbed {
	embed := discordEmbed{
		Fields: []discordEmbedField{
			{Name: "SKU", Value: outcome.SKU, Inline: true},
			{Name: "Price", Value: outcome.Price, Inline: true},
			{Name: "Type", Value: string(outcome.ListingType), Inline: true},
			{Name: "Environment", Value: string(outcome.Environment), Inline: true},
		},
	}

	switch {
	case !outcome.Succeeded:
		embed.Title = fmt.Sprintf("Listing failed: %s", outcome.Title)
		embed.Color = colorRed
		embed.Description = outcome.ErrorText
	case len(outcome.Warnings) > 0:
		embed.Title = fmt.Sprintf("Listed with warnings: %s", outcome.Title)
		embed.URL = outcome.ListingURL
		embed.Color = colorYellow
		embed.Description = strings.Join(outcome.Warnings, "\n")
	default:
		embed.Title = fmt.Sprintf("Listed: %s", outcome.Title)
		embed.URL = outcome.ListingURL
		embed.Color = colorGreen
	}

	if outcome.Environment == domain.EnvSandbox {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Note", Value: "Sandbox item; not visible to buyers.",
		})
	}

	if outcome.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: outcome.ImageURL}
	}

	return embed
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
