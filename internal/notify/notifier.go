// Package notify defines the notification interface and implementations
// for listing outcome delivery.
package notify

import (
	"context"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// OutcomePayload contains the data needed to announce a listing attempt.
type OutcomePayload struct {
	SKU         string
	Title       string
	ListingURL  string
	ImageURL    string
	Price       string
	Environment domain.Environment
	ListingType domain.ListingType
	Succeeded   bool
	ErrorText   string
	Warnings    []string
}

// Notifier defines the interface for announcing listing outcomes.
type Notifier interface {
	SendOutcome(ctx context.Context, outcome *OutcomePayload) error
}
