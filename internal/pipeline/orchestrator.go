// Package pipeline drives a listing request through upload, assembly,
// and submission. The marketplace call happens at most once per
// request: there are no retries and no cancellation once the item is
// in flight.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stampdesk/stampdesk/internal/ebay"
	"github.com/stampdesk/stampdesk/internal/images"
	"github.com/stampdesk/stampdesk/internal/metrics"
	"github.com/stampdesk/stampdesk/internal/notify"
	"github.com/stampdesk/stampdesk/internal/store"
	"github.com/stampdesk/stampdesk/pkg/condition"
	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// Stage identifies where a submission currently is.
type Stage string

// Pipeline stages in execution order.
const (
	StageValidating        Stage = "validating"
	StageUploading         Stage = "uploading_images"
	StageResolvingLocation Stage = "resolving_location"
	StageResolvingPolicies Stage = "resolving_policies"
	StageBuilding          Stage = "building_request"
	StageSubmitting        Stage = "submitting"
	StageParsing           Stage = "parsing_response"
	StageDone              Stage = "done"
)

// stageProgress maps each stage to a completion fraction. Values only
// ever increase as the pipeline advances.
var stageProgress = map[Stage]float64{
	StageValidating:        0.05,
	StageUploading:         0.25,
	StageResolvingLocation: 0.40,
	StageResolvingPolicies: 0.50,
	StageBuilding:          0.60,
	StageSubmitting:        0.85,
	StageParsing:           0.95,
	StageDone:              1.0,
}

// ProgressFunc receives stage transitions. The fraction is monotonic
// from 0.0 to 1.0.
type ProgressFunc func(stage Stage, fraction float64)

// ImageHoster hosts listing photos. Satisfied by *images.Uploader.
type ImageHoster interface {
	UploadAll(ctx context.Context, imgs []images.Image) images.Result
}

// Orchestrator assembles and submits listings.
type Orchestrator struct {
	trading  ebay.TradingAPI
	account  ebay.AccountAPI
	hoster   ImageHoster
	store    store.Store
	notifier notify.Notifier
	logger   *slog.Logger

	seller domain.SellerContext
	siteID string

	nowFunc func() time.Time
	idFunc  func() string
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// WithNotifier attaches an outcome notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(o *Orchestrator) {
		o.notifier = n
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(o *Orchestrator) {
		o.nowFunc = f
	}
}

// WithIDFunc overrides the SKU fragment generator for testing.
func WithIDFunc(f func() string) Option {
	return func(o *Orchestrator) {
		o.idFunc = f
	}
}

// New creates an Orchestrator.
func New(
	trading ebay.TradingAPI,
	account ebay.AccountAPI,
	hoster ImageHoster,
	st store.Store,
	seller domain.SellerContext,
	siteID string,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		trading: trading,
		account: account,
		hoster:  hoster,
		store:   st,
		seller:  seller,
		siteID:  siteID,
		logger:  slog.Default(),
		nowFunc: time.Now,
		idFunc: func() string {
			return uuid.NewString()[:8]
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Submit runs one listing request through the full pipeline. It always
// returns a result; failures are reported in the result's Error field
// and the error return carries the underlying cause. Every attempt,
// success or failure, is persisted under its SKU.
func (o *Orchestrator) Submit(
	ctx context.Context,
	req *domain.ListingRequest,
	imgs []images.Image,
	onProgress ProgressFunc,
) (*domain.ListingResult, error) {
	start := o.nowFunc()
	sku := o.generateSKU(req.ItemFamily)
	result := &domain.ListingResult{SKU: sku}

	report := func(stage Stage) {
		if onProgress != nil {
			onProgress(stage, stageProgress[stage])
		}
	}

	report(StageValidating)
	if err := o.validate(req, imgs); err != nil {
		o.finishFailed(ctx, req, result, err)
		return result, err
	}

	report(StageUploading)
	upload := o.hoster.UploadAll(ctx, imgs)
	result.UploadDegraded = upload.Degraded
	result.Warnings = append(result.Warnings, upload.Warnings...)

	report(StageResolvingLocation)
	country := o.resolveCountry(ctx)

	report(StageResolvingPolicies)
	policies := o.resolvePolicies(ctx)

	report(StageBuilding)
	item := o.buildItem(req, sku, upload.URLs, country, policies)

	// The listing is about to leave the process. From here the call
	// must not be canceled or repeated: a timeout after this point
	// would strand a live item.
	submitCtx := context.WithoutCancel(ctx)

	report(StageSubmitting)
	call, err := o.trading.AddListing(submitCtx, item, req.ListingType)

	report(StageParsing)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(req.ListingType), "failure").Inc()
		o.finishFailed(submitCtx, req, result, err)
		return result, err
	}

	result.Success = true
	result.ItemID = call.ItemID
	result.ListingURL = o.seller.Environment.ListingBaseURL() + call.ItemID
	result.Warnings = append(result.Warnings, call.Warnings...)

	metrics.SubmissionsTotal.WithLabelValues(string(req.ListingType), "success").Inc()
	metrics.SubmissionDuration.Observe(o.nowFunc().Sub(start).Seconds())

	o.persistAttempt(submitCtx, req, result)
	o.notifyOutcome(submitCtx, req, result, upload)

	report(StageDone)
	o.logger.Info("listing created",
		"sku", sku,
		"item_id", call.ItemID,
		"listing_type", req.ListingType,
		"degraded", result.UploadDegraded,
	)
	return result, nil
}

// Verify runs the same assembly as Submit but calls the marketplace's
// verify variant: full remote validation with no item created and no
// attempt persisted.
func (o *Orchestrator) Verify(
	ctx context.Context,
	req *domain.ListingRequest,
	imgs []images.Image,
) (*domain.ListingResult, error) {
	sku := o.generateSKU(req.ItemFamily)
	result := &domain.ListingResult{SKU: sku}

	if err := o.validate(req, imgs); err != nil {
		result.Error = err.Error()
		return result, err
	}

	upload := o.hoster.UploadAll(ctx, imgs)
	result.UploadDegraded = upload.Degraded
	result.Warnings = append(result.Warnings, upload.Warnings...)

	country := o.resolveCountry(ctx)
	policies := o.resolvePolicies(ctx)
	item := o.buildItem(req, sku, upload.URLs, country, policies)

	call, err := o.trading.VerifyListing(ctx, item)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	result.Success = true
	result.Warnings = append(result.Warnings, call.Warnings...)
	return result, nil
}

// validate applies the local checks that must pass before any network
// activity. A doomed request never spends an API call. The image list
// must be non-empty here; the placeholder path downstream exists for
// hosting failures, not for requests that never had a photo.
func (o *Orchestrator) validate(req *domain.ListingRequest, imgs []images.Image) error {
	if err := ebay.ValidateRequest(req); err != nil {
		o.countRejection(err)
		return err
	}
	if len(imgs) == 0 {
		err := domain.NewValidationError("images", "at least one image is required")
		o.countRejection(err)
		return err
	}
	if req.CategoryID == 0 {
		err := domain.NewValidationError(
			"category_id",
			"no category resolved; the country needs a manual category choice",
		)
		o.countRejection(err)
		return err
	}
	if req.ScheduleTime != nil {
		if err := ebay.ValidateSchedule(*req.ScheduleTime, o.nowFunc()); err != nil {
			o.countRejection(err)
			return err
		}
	}
	return nil
}

func (o *Orchestrator) countRejection(err error) {
	var perr *domain.PipelineError
	if errors.As(err, &perr) {
		metrics.ValidationRejectionsTotal.WithLabelValues(perr.Code).Inc()
	}
}

// resolveCountry asks the account API for the seller's registered
// country and falls back to the configured default.
func (o *Orchestrator) resolveCountry(ctx context.Context) string {
	country, err := o.account.SellerCountry(ctx)
	if err != nil {
		o.logger.Warn("seller country lookup failed, using default",
			"default", o.seller.DefaultCountry,
			"error", err,
		)
		return o.seller.DefaultCountry
	}
	if country == "" {
		return o.seller.DefaultCountry
	}
	return country
}

// resolvePolicies fetches the business policy set. Lookup problems are
// absorbed: an incomplete set triggers the inline fallback downstream.
func (o *Orchestrator) resolvePolicies(ctx context.Context) *domain.BusinessPolicySet {
	policies, err := o.account.BusinessPolicies(ctx)
	if err != nil {
		o.logger.Warn("business policy lookup failed, using inline fallback", "error", err)
		return nil
	}
	return policies
}

func (o *Orchestrator) buildItem(
	req *domain.ListingRequest,
	sku string,
	imageURLs []string,
	country string,
	policies *domain.BusinessPolicySet,
) *ebay.Item {
	conditionID := 0
	if id, ok := condition.Map(req.Condition).ConditionID(); ok {
		conditionID = id
	}

	return ebay.BuildItem(ebay.BuildParams{
		Request:     req,
		Seller:      o.seller,
		Policies:    policies,
		SKU:         sku,
		ImageURLs:   imageURLs,
		CategoryID:  req.CategoryID,
		ConditionID: conditionID,
		Country:     country,
		Site:        o.siteID,
	})
}

// generateSKU builds "<prefix><timestamp>-<fragment>", unique enough to
// key attempts and trace items back to a submission.
func (o *Orchestrator) generateSKU(family domain.ItemFamily) string {
	return fmt.Sprintf("%s%s-%s",
		family.SKUPrefix(),
		o.nowFunc().UTC().Format("20060102150405"),
		o.idFunc(),
	)
}

// finishFailed records a failed attempt and fills the result's error.
func (o *Orchestrator) finishFailed(
	ctx context.Context,
	req *domain.ListingRequest,
	result *domain.ListingResult,
	cause error,
) {
	result.Success = false
	result.Error = cause.Error()
	o.persistAttempt(ctx, req, result)
	o.notifyOutcome(ctx, req, result, images.Result{})
}

// persistAttempt writes the attempt row. A store failure after a
// successful listing downgrades to a warning: the item exists on the
// marketplace whether or not the bookkeeping worked.
func (o *Orchestrator) persistAttempt(
	ctx context.Context,
	req *domain.ListingRequest,
	result *domain.ListingResult,
) {
	status := domain.AttemptSucceeded
	if !result.Success {
		status = domain.AttemptFailed
	}

	var aspects json.RawMessage
	if len(req.Aspects) > 0 {
		aspects, _ = json.Marshal(req.Aspects) //nolint:errcheck // map of strings cannot fail
	}

	attempt := &domain.Attempt{
		SKU:             result.SKU,
		ItemID:          result.ItemID,
		Status:          status,
		ErrorText:       result.Error,
		Title:           domain.TruncateTitle(req.Title),
		Price:           req.Price,
		Currency:        req.Currency,
		Condition:       string(condition.Map(req.Condition)),
		Aspects:         aspects,
		Environment:     o.seller.Environment,
		ListingType:     req.ListingType,
		ListingDuration: req.ListingDuration,
		ScheduleTime:    req.ScheduleTime,
		ListingURL:      result.ListingURL,
	}

	if err := o.store.InsertAttempt(ctx, attempt); err != nil {
		warning := fmt.Sprintf("attempt not recorded: %v", err)
		result.Warnings = append(result.Warnings, warning)
		o.logger.Warn("persisting attempt failed",
			"sku", result.SKU,
			"error", err,
		)
	}
}

// notifyOutcome announces the attempt. Delivery problems are logged,
// never surfaced.
func (o *Orchestrator) notifyOutcome(
	ctx context.Context,
	req *domain.ListingRequest,
	result *domain.ListingResult,
	upload images.Result,
) {
	if o.notifier == nil {
		return
	}

	var imageURL string
	if len(upload.URLs) > 0 {
		imageURL = upload.URLs[0]
	}

	payload := &notify.OutcomePayload{
		SKU:         result.SKU,
		Title:       domain.TruncateTitle(req.Title),
		ListingURL:  result.ListingURL,
		ImageURL:    imageURL,
		Price:       fmt.Sprintf("%.2f %s", req.Price, req.Currency),
		Environment: o.seller.Environment,
		ListingType: req.ListingType,
		Succeeded:   result.Success,
		ErrorText:   result.Error,
		Warnings:    result.Warnings,
	}

	if err := o.notifier.SendOutcome(ctx, payload); err != nil {
		o.logger.Warn("outcome notification failed",
			"sku", result.SKU,
			"error", err,
		)
	}
}
