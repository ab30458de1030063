package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/stampdesk/stampdesk/internal/images"
	"github.com/stampdesk/stampdesk/internal/pipeline"
	"github.com/stampdesk/stampdesk/internal/store"
	"github.com/stampdesk/stampdesk/pkg/category"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// Submitter runs assembled listing requests through the pipeline.
// Satisfied by *pipeline.Orchestrator.
type Submitter interface {
	Submit(
		ctx context.Context,
		req *domain.ListingRequest,
		imgs []images.Image,
		onProgress pipeline.ProgressFunc,
	) (*domain.ListingResult, error)
	Verify(
		ctx context.Context,
		req *domain.ListingRequest,
		imgs []images.Image,
	) (*domain.ListingResult, error)
}

// ListingsHandler handles listing submission and attempt query endpoints.
type ListingsHandler struct {
	submitter Submitter
	store     store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(sub Submitter, s store.Store) *ListingsHandler {
	return &ListingsHandler{submitter: sub, store: s}
}

// --- Input/Output types ---

// ImagePayload is one photo attached to a submission. Data is
// base64-encoded in transit.
type ImagePayload struct {
	Name string `json:"name" doc:"File name, used for upload diagnostics"`
	Data []byte `json:"data" doc:"Base64-encoded image bytes"`
}

// ListingPayload is the request body shared by submit and verify.
type ListingPayload struct {
	Title           string              `json:"title"            minLength:"1"  doc:"Listing title, truncated to 80 characters"`
	Description     string              `json:"description,omitempty"           doc:"Plain-text description"`
	Price           float64             `json:"price"            minimum:"0.01" doc:"Start price for auctions, sale price otherwise"`
	Currency        string              `json:"currency,omitempty"              doc:"ISO 4217 code, default USD"`
	Condition       string              `json:"condition,omitempty"             doc:"Free-text grade, e.g. MNH or postally used"`
	Quantity        int                 `json:"quantity,omitempty" minimum:"1"  doc:"Default 1; auctions must be exactly 1"`
	Country         string              `json:"country,omitempty"               doc:"Country of origin text, resolved to a leaf category"`
	CategoryID      int                 `json:"category_id,omitempty"           doc:"Explicit leaf category id, overrides country resolution"`
	ItemFamily      string              `json:"item_family"      enum:"postcard,stamp"`
	ListingType     string              `json:"listing_type,omitempty"     enum:"fixed_price,auction,"`
	ListingDuration string              `json:"listing_duration,omitempty" enum:"GTC,Days_3,Days_5,Days_7,Days_10,"`
	BuyItNowPrice   float64             `json:"buy_it_now_price,omitempty"      doc:"Auctions only; at least 1.3x the start price"`
	ReservePrice    float64             `json:"reserve_price,omitempty"         doc:"Auctions only"`
	ScheduleTime    *time.Time          `json:"schedule_time,omitempty"         doc:"Future go-live time, 1 hour to 21 days out"`
	Aspects         map[string][]string `json:"aspects,omitempty"               doc:"Extra item specifics"`
	Images          []ImagePayload      `json:"images,omitempty"`
}

// SubmitListingInput is the input for creating a listing.
type SubmitListingInput struct {
	Body ListingPayload
}

// SubmitListingOutput is the response for submit and verify.
type SubmitListingOutput struct {
	Body domain.ListingResult
}

// ListAttemptsInput is the input for querying recorded attempts.
type ListAttemptsInput struct {
	Status      string `query:"status"       doc:"Filter by outcome"          enum:"succeeded,failed,"`
	Environment string `query:"environment"  doc:"Filter by environment"      enum:"sandbox,production,"`
	ListingType string `query:"listing_type" doc:"Filter by listing format"   enum:"fixed_price,auction,"`
	SKUPrefix   string `query:"sku_prefix"   doc:"Filter by SKU prefix"`
	Limit       int    `query:"limit"        doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset      int    `query:"offset"       doc:"Pagination offset"              minimum:"0"`
}

// ListAttemptsOutput is the response for querying attempts.
type ListAttemptsOutput struct {
	Body struct {
		Attempts []domain.Attempt `json:"attempts"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetAttemptInput is the input for fetching one attempt.
type GetAttemptInput struct {
	SKU string `path:"sku" doc:"Attempt SKU"`
}

// GetAttemptOutput is the response for fetching one attempt.
type GetAttemptOutput struct {
	Body domain.Attempt
}

// --- Handlers ---

// toRequest converts the wire payload into a pipeline request, applying
// defaults and resolving the country text when no explicit category was
// given.
func (p *ListingPayload) toRequest() *domain.ListingRequest {
	req := &domain.ListingRequest{
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		Currency:        p.Currency,
		Condition:       p.Condition,
		Quantity:        p.Quantity,
		ItemFamily:      domain.ItemFamily(p.ItemFamily),
		CategoryID:      p.CategoryID,
		ListingType:     domain.ListingType(p.ListingType),
		ListingDuration: domain.ListingDuration(p.ListingDuration),
		BuyItNowPrice:   p.BuyItNowPrice,
		ReservePrice:    p.ReservePrice,
		ScheduleTime:    p.ScheduleTime,
		Aspects:         p.Aspects,
	}

	if req.Currency == "" {
		req.Currency = "USD"
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.ListingType == "" {
		req.ListingType = domain.ListingFixedPrice
	}
	if req.ListingDuration == "" {
		if req.ListingType == domain.ListingAuction {
			req.ListingDuration = domain.DurationDays7
		} else {
			req.ListingDuration = domain.DurationGTC
		}
	}

	if req.CategoryID == 0 {
		switch {
		case req.ItemFamily == domain.FamilyPostcard:
			// Postcards are not filed under the per-country stamp
			// hierarchy; they all land in one fixed category.
			req.CategoryID = category.PostcardCategoryID
		case p.Country != "":
			sel := category.Resolve(p.Country)
			req.RegionCode = sel.RegionCode
			req.CategoryID = sel.CategoryID
		}
	}

	return req
}

func (p *ListingPayload) images() []images.Image {
	imgs := make([]images.Image, 0, len(p.Images))
	for _, img := range p.Images {
		imgs = append(imgs, images.Image{Name: img.Name, Data: img.Data})
	}
	return imgs
}

// submissionError maps pipeline failures onto HTTP status codes. The
// partial result still carries the SKU and warnings, so it rides along
// in the error detail.
func submissionError(result *domain.ListingResult, err error) error {
	var perr *domain.PipelineError
	if errors.As(err, &perr) && perr.Kind == domain.KindValidation {
		return huma.Error422UnprocessableEntity(perr.Message)
	}
	return huma.Error502BadGateway("eBay API error: "+err.Error(), &huma.ErrorDetail{
		Message:  "submission failed",
		Location: "sku",
		Value:    result.SKU,
	})
}

// SubmitListing creates a listing on the marketplace.
func (h *ListingsHandler) SubmitListing(
	ctx context.Context,
	input *SubmitListingInput,
) (*SubmitListingOutput, error) {
	req := input.Body.toRequest()

	result, err := h.submitter.Submit(ctx, req, input.Body.images(), nil)
	if err != nil {
		return nil, submissionError(result, err)
	}

	return &SubmitListingOutput{Body: *result}, nil
}

// VerifyListing runs the marketplace's dry-run validation without
// creating an item.
func (h *ListingsHandler) VerifyListing(
	ctx context.Context,
	input *SubmitListingInput,
) (*SubmitListingOutput, error) {
	req := input.Body.toRequest()

	result, err := h.submitter.Verify(ctx, req, input.Body.images())
	if err != nil {
		return nil, submissionError(result, err)
	}

	return &SubmitListingOutput{Body: *result}, nil
}

// ListAttempts returns recorded submission attempts with optional filters.
func (h *ListingsHandler) ListAttempts(
	ctx context.Context,
	input *ListAttemptsInput,
) (*ListAttemptsOutput, error) {
	q := &store.AttemptQuery{
		Offset: input.Offset,
	}

	if input.Status != "" {
		status := domain.AttemptStatus(input.Status)
		q.Status = &status
	}

	if input.Environment != "" {
		env := domain.Environment(input.Environment)
		q.Environment = &env
	}

	if input.ListingType != "" {
		lt := domain.ListingType(input.ListingType)
		q.ListingType = &lt
	}

	if input.SKUPrefix != "" {
		q.SKUPrefix = &input.SKUPrefix
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	attempts, total, err := h.store.ListAttempts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("attempt query failed: " + err.Error())
	}

	resp := &ListAttemptsOutput{}
	resp.Body.Attempts = attempts
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetAttempt returns a single recorded attempt by SKU.
func (h *ListingsHandler) GetAttempt(
	ctx context.Context,
	input *GetAttemptInput,
) (*GetAttemptOutput, error) {
	attempt, err := h.store.GetAttempt(ctx, input.SKU)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("attempt not found")
		}
		return nil, huma.Error500InternalServerError("attempt lookup failed: " + err.Error())
	}

	return &GetAttemptOutput{Body: *attempt}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "submit-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings",
		Summary:     "Create a listing",
		Description: "Validates, uploads images, assembles, and submits a listing " +
			"to eBay. The attempt is recorded whether or not it succeeds.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.SubmitListing)

	huma.Register(api, huma.Operation{
		OperationID: "verify-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/verify",
		Summary:     "Verify a listing without creating it",
		Description: "Runs the same assembly as submission but calls the " +
			"marketplace's verify variant: full remote validation, no item created.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.VerifyListing)

	huma.Register(api, huma.Operation{
		OperationID: "list-attempts",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List submission attempts",
		Description: "Returns recorded attempts with optional filters for status, " +
			"environment, listing type, and SKU prefix.",
		Tags: []string{"listings"},
	}, h.ListAttempts)

	huma.Register(api, huma.Operation{
		OperationID: "get-attempt",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{sku}",
		Summary:     "Get an attempt by SKU",
		Description: "Returns a single recorded submission attempt.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAttempt)
}
