package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/stampdesk/stampdesk/pkg/types"
	"github.com/stampdesk/stampdesk/pkg/vision"
)

// ExtractHandler drafts listing details from item photographs.
type ExtractHandler struct {
	extractor vision.Extractor
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(ex vision.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: ex}
}

// ExtractInput is the input for detail extraction.
type ExtractInput struct {
	Body struct {
		ItemFamily string `json:"item_family" enum:"postcard,stamp"`
		Image      []byte `json:"image" doc:"Base64-encoded photograph"`
		ImageMIME  string `json:"image_mime,omitempty" doc:"Image MIME type, default image/jpeg"`
	}
}

// ExtractOutput is the response for detail extraction.
type ExtractOutput struct {
	Body vision.CardDetails
}

// Extract runs the vision backend over a photograph and returns draft
// listing details.
func (h *ExtractHandler) Extract(
	ctx context.Context,
	input *ExtractInput,
) (*ExtractOutput, error) {
	mime := input.Body.ImageMIME
	if mime == "" {
		mime = "image/jpeg"
	}

	details, err := h.extractor.ExtractDetails(
		ctx,
		domain.ItemFamily(input.Body.ItemFamily),
		input.Body.Image,
		mime,
	)
	if err != nil {
		return nil, huma.Error502BadGateway("extraction failed: " + err.Error())
	}

	return &ExtractOutput{Body: *details}, nil
}

// RegisterExtractRoutes registers extraction endpoints with the Huma API.
func RegisterExtractRoutes(api huma.API, h *ExtractHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "extract-details",
		Method:      http.MethodPost,
		Path:        "/api/v1/extract",
		Summary:     "Draft listing details from a photo",
		Description: "Sends the photograph to the vision backend and returns " +
			"draft title, description, and attributes for review.",
		Tags:   []string{"extract"},
		Errors: []int{http.StatusBadGateway},
	}, h.Extract)
}
