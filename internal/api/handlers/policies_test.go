package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stampdesk/stampdesk/internal/api/handlers"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

func TestPoliciesHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mockAccount)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "complete policy set",
			setupMock: func(m *mockAccount) {
				m.On("BusinessPolicies", mock.Anything).
					Return(&domain.BusinessPolicySet{
						ShippingPolicyID: "ship-1",
						PaymentPolicyID:  "pay-1",
						ReturnPolicyID:   "ret-1",
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"shipping_policy_id":"ship-1"`, `"complete":true`},
		},
		{
			name: "partial set reports incomplete",
			setupMock: func(m *mockAccount) {
				m.On("BusinessPolicies", mock.Anything).
					Return(&domain.BusinessPolicySet{ShippingPolicyID: "ship-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"complete":false`},
		},
		{
			name: "lookup error returns 502",
			setupMock: func(m *mockAccount) {
				m.On("BusinessPolicies", mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{`policy lookup failed`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			acct := &mockAccount{}
			tt.setupMock(acct)

			_, api := humatest.New(t)
			handlers.RegisterPolicyRoutes(api, handlers.NewPoliciesHandler(acct))

			resp := api.Get("/api/v1/policies")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
