package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/stampdesk/stampdesk/pkg/category"
)

// CategoryHandler resolves country text to marketplace categories.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ResolveCategoryInput is the input for category resolution.
type ResolveCategoryInput struct {
	Country string `query:"country" required:"true" minLength:"1" doc:"Country of origin text, any spelling or diacritics"`
}

// ResolveCategoryOutput is the response for category resolution.
type ResolveCategoryOutput struct {
	Body struct {
		category.Selection
		Resolved   bool `json:"resolved" doc:"True when a submittable leaf category was found"`
		NeedsInput bool `json:"needs_input" doc:"True when the region is known but a manual category choice is required"`
	}
}

// ResolveCategory maps a country-of-origin string to a leaf category.
func (*CategoryHandler) ResolveCategory(
	_ context.Context,
	input *ResolveCategoryInput,
) (*ResolveCategoryOutput, error) {
	sel := category.Resolve(input.Country)

	resp := &ResolveCategoryOutput{}
	resp.Body.Selection = sel
	resp.Body.Resolved = sel.Resolved()
	resp.Body.NeedsInput = sel.NeedsInput()

	return resp, nil
}

// RegisterCategoryRoutes registers category endpoints with the Huma API.
func RegisterCategoryRoutes(api huma.API, h *CategoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "resolve-category",
		Method:      http.MethodGet,
		Path:        "/api/v1/category",
		Summary:     "Resolve a country to a category",
		Description: "Matches country-of-origin text against the region table " +
			"and returns the leaf category id when one exists.",
		Tags: []string{"catalog"},
	}, h.ResolveCategory)
}
