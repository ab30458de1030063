package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/stampdesk/stampdesk/internal/ebay"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// PoliciesHandler exposes the seller's business policy set.
type PoliciesHandler struct {
	account ebay.AccountAPI
}

// NewPoliciesHandler creates a new PoliciesHandler.
func NewPoliciesHandler(a ebay.AccountAPI) *PoliciesHandler {
	return &PoliciesHandler{account: a}
}

// GetPoliciesOutput is the response for the policy lookup.
type GetPoliciesOutput struct {
	Body struct {
		Policies domain.BusinessPolicySet `json:"policies"`
		Complete bool                     `json:"complete" doc:"True when all three policy ids resolved; incomplete sets fall back to inline shipping and returns"`
	}
}

// GetPolicies returns the seller's shipping, payment, and return policy ids.
func (h *PoliciesHandler) GetPolicies(
	ctx context.Context,
	_ *struct{},
) (*GetPoliciesOutput, error) {
	policies, err := h.account.BusinessPolicies(ctx)
	if err != nil {
		return nil, huma.Error502BadGateway("policy lookup failed: " + err.Error())
	}

	resp := &GetPoliciesOutput{}
	resp.Body.Policies = *policies
	resp.Body.Complete = policies.Complete()

	return resp, nil
}

// RegisterPolicyRoutes registers policy endpoints with the Huma API.
func RegisterPolicyRoutes(api huma.API, h *PoliciesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-policies",
		Method:      http.MethodGet,
		Path:        "/api/v1/policies",
		Summary:     "Get seller business policies",
		Description: "Returns the shipping, payment, and return policy ids " +
			"currently resolvable from the seller account.",
		Tags:   []string{"account"},
		Errors: []int{http.StatusBadGateway},
	}, h.GetPolicies)
}
