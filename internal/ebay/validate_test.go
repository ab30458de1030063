package ebay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stampdesk/stampdesk/internal/ebay"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

func validAuctionRequest() *domain.ListingRequest {
	return &domain.ListingRequest{
		Title:           "Romania 1930s postcard, Bucharest street scene",
		Description:     "Unused postal card in good condition.",
		Price:           4.99,
		Currency:        "USD",
		Quantity:        1,
		ItemFamily:      domain.FamilyPostcard,
		ListingType:     domain.ListingAuction,
		ListingDuration: domain.DurationDays7,
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.ListingRequest)
		wantErr string
	}{
		{
			name:   "valid auction",
			mutate: func(*domain.ListingRequest) {},
		},
		{
			name: "valid fixed price",
			mutate: func(r *domain.ListingRequest) {
				r.ListingType = domain.ListingFixedPrice
				r.ListingDuration = domain.DurationGTC
				r.Quantity = 5
			},
		},
		{
			name: "missing title",
			mutate: func(r *domain.ListingRequest) {
				r.Title = ""
			},
			wantErr: "title is required",
		},
		{
			name: "missing description",
			mutate: func(r *domain.ListingRequest) {
				r.Description = ""
			},
			wantErr: "description is required",
		},
		{
			name: "zero price",
			mutate: func(r *domain.ListingRequest) {
				r.Price = 0
			},
			wantErr: "price must be positive",
		},
		{
			name: "zero quantity",
			mutate: func(r *domain.ListingRequest) {
				r.Quantity = 0
			},
			wantErr: "quantity must be at least 1",
		},
		{
			name: "unknown listing type",
			mutate: func(r *domain.ListingRequest) {
				r.ListingType = "dutch"
			},
			wantErr: "unknown listing type",
		},
		{
			name: "auction start below floor",
			mutate: func(r *domain.ListingRequest) {
				r.Price = 0.50
			},
			wantErr: "at least 0.99",
		},
		{
			name: "auction start exactly at floor",
			mutate: func(r *domain.ListingRequest) {
				r.Price = 0.99
			},
		},
		{
			name: "buy it now below premium",
			mutate: func(r *domain.ListingRequest) {
				r.Price = 10.00
				r.BuyItNowPrice = 12.00
			},
			wantErr: "Buy It Now price must be at least 130%",
		},
		{
			name: "buy it now exactly at premium",
			mutate: func(r *domain.ListingRequest) {
				r.Price = 10.00
				r.BuyItNowPrice = 13.00
			},
		},
		{
			name: "reserve below start",
			mutate: func(r *domain.ListingRequest) {
				r.Price = 10.00
				r.ReservePrice = 9.00
			},
			wantErr: "reserve price must not be below the start price",
		},
		{
			name: "reserve equal to start",
			mutate: func(r *domain.ListingRequest) {
				r.Price = 10.00
				r.ReservePrice = 10.00
			},
		},
		{
			name: "GTC duration on auction",
			mutate: func(r *domain.ListingRequest) {
				r.ListingDuration = domain.DurationGTC
			},
			wantErr: "auction duration must be one of",
		},
		{
			name: "multi-quantity auction",
			mutate: func(r *domain.ListingRequest) {
				r.Quantity = 3
			},
			wantErr: "auctions must have quantity 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validAuctionRequest()
			tt.mutate(req)

			err := ebay.ValidateRequest(req)

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var perr *domain.PipelineError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, domain.KindValidation, perr.Kind)
		})
	}
}

func TestValidateSchedule(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		schedule time.Time
		wantErr  string
	}{
		{
			name:     "exactly one hour out",
			schedule: now.Add(time.Hour),
		},
		{
			name:     "one week out",
			schedule: now.Add(7 * 24 * time.Hour),
		},
		{
			name:     "exactly 21 days out",
			schedule: now.Add(21 * 24 * time.Hour),
		},
		{
			name:     "under one hour",
			schedule: now.Add(59 * time.Minute),
			wantErr:  "at least 1 hour",
		},
		{
			name:     "in the past",
			schedule: now.Add(-time.Hour),
			wantErr:  "at least 1 hour",
		},
		{
			name:     "beyond 21 days",
			schedule: now.Add(22 * 24 * time.Hour),
			wantErr:  "within 21 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ebay.ValidateSchedule(tt.schedule, now)

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
