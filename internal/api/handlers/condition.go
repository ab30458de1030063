package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/stampdesk/stampdesk/pkg/condition"
)

// ConditionHandler maps free-text grades to marketplace condition codes.
type ConditionHandler struct{}

// NewConditionHandler creates a new ConditionHandler.
func NewConditionHandler() *ConditionHandler {
	return &ConditionHandler{}
}

// MapConditionInput is the input for condition mapping.
type MapConditionInput struct {
	Grade string `query:"grade" required:"true" minLength:"1" doc:"Free-text philatelic grade, e.g. MNH"`
}

// MapConditionOutput is the response for condition mapping.
type MapConditionOutput struct {
	Body struct {
		Code        string `json:"code" example:"USED"`
		ConditionID int    `json:"condition_id,omitempty" doc:"Numeric eBay condition id, absent when none is emitted"`
	}
}

// MapCondition maps a grade to the condition code submitted on the wire.
func (*ConditionHandler) MapCondition(
	_ context.Context,
	input *MapConditionInput,
) (*MapConditionOutput, error) {
	code := condition.Map(input.Grade)

	resp := &MapConditionOutput{}
	resp.Body.Code = string(code)
	if id, ok := code.ConditionID(); ok {
		resp.Body.ConditionID = id
	}

	return resp, nil
}

// RegisterConditionRoutes registers condition endpoints with the Huma API.
func RegisterConditionRoutes(api huma.API, h *ConditionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "map-condition",
		Method:      http.MethodGet,
		Path:        "/api/v1/condition",
		Summary:     "Map a grade to a condition code",
		Description: "Collapses recognized philatelic grades to the single " +
			"condition code accepted across categories.",
		Tags: []string{"catalog"},
	}, h.MapCondition)
}
