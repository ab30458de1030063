package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stampdesk/stampdesk/internal/images"
	"github.com/stampdesk/stampdesk/internal/pipeline"
	"github.com/stampdesk/stampdesk/internal/store"
	domain "github.com/stampdesk/stampdesk/pkg/types"
	"github.com/stampdesk/stampdesk/pkg/vision"
)

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(
	ctx context.Context,
	req *domain.ListingRequest,
	imgs []images.Image,
	onProgress pipeline.ProgressFunc,
) (*domain.ListingResult, error) {
	args := m.Called(ctx, req, imgs, onProgress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingResult), args.Error(1)
}

func (m *mockSubmitter) Verify(
	ctx context.Context,
	req *domain.ListingRequest,
	imgs []images.Image,
) (*domain.ListingResult, error) {
	args := m.Called(ctx, req, imgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingResult), args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) InsertAttempt(ctx context.Context, a *domain.Attempt) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockStore) GetAttempt(ctx context.Context, sku string) (*domain.Attempt, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attempt), args.Error(1)
}

func (m *mockStore) ListAttempts(
	ctx context.Context,
	q *store.AttemptQuery,
) ([]domain.Attempt, int, error) {
	args := m.Called(ctx, q)
	var attempts []domain.Attempt
	if args.Get(0) != nil {
		attempts = args.Get(0).([]domain.Attempt)
	}
	return attempts, args.Int(1), args.Error(2)
}

func (m *mockStore) Migrate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockAccount struct {
	mock.Mock
}

func (m *mockAccount) BusinessPolicies(ctx context.Context) (*domain.BusinessPolicySet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessPolicySet), args.Error(1)
}

func (m *mockAccount) SellerCountry(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) ExtractDetails(
	ctx context.Context,
	family domain.ItemFamily,
	imageData []byte,
	imageMIME string,
) (*vision.CardDetails, error) {
	args := m.Called(ctx, family, imageData, imageMIME)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vision.CardDetails), args.Error(1)
}
