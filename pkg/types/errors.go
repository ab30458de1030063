package domain

import "fmt"

// ErrorKind classifies pipeline failures. The kinds mirror where in the
// submission a failure can originate and who can act on it.
type ErrorKind string

// Error kind constants.
const (
	// KindValidation is a caller-correctable input error raised before any
	// network call is made.
	KindValidation ErrorKind = "validation"
	// KindUpload means no image host accepted the image. Upload errors are
	// absorbed by the pipeline (placeholder substitution), never fatal.
	KindUpload ErrorKind = "upload"
	// KindNetwork is an HTTP-layer failure on an external call.
	KindNetwork ErrorKind = "network"
	// KindMarketplace means eBay explicitly returned Failure with
	// code and message.
	KindMarketplace ErrorKind = "marketplace"
	// KindPersistence means the tracking write failed after the listing
	// itself succeeded. Non-fatal; the result stays successful.
	KindPersistence ErrorKind = "persistence"
)

// PipelineError is the structured error value carried through the pipeline.
// The protocol layer never formats user-facing strings; renderers decide
// how to present Kind, Code, and Message. Raw keeps the untouched
// marketplace payload for diagnostics.
type PipelineError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Raw     []byte
	cause   error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *PipelineError) Unwrap() error {
	return e.cause
}

// NewValidationError creates a validation-kind error for the given field.
func NewValidationError(field, msg string) *PipelineError {
	return &PipelineError{
		Kind:    KindValidation,
		Code:    field,
		Message: msg,
	}
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(msg string, cause error) *PipelineError {
	return &PipelineError{
		Kind:    KindNetwork,
		Message: msg,
		cause:   cause,
	}
}

// NewMarketplaceError creates an error carrying the raw marketplace
// rejection. The message text is preserved verbatim for user display.
func NewMarketplaceError(code, msg string, raw []byte) *PipelineError {
	return &PipelineError{
		Kind:    KindMarketplace,
		Code:    code,
		Message: msg,
		Raw:     raw,
	}
}
