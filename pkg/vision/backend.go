// Package vision provides LLM-based detail extraction from postcard and
// stamp photographs, abstracted behind interfaces for testability.
package vision

import "context"

// GenerateRequest defines the input for a vision generation call: a
// prompt plus one base64-encoded image.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	ImageBase64 string
	ImageMIME   string // e.g. "image/jpeg"
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of a vision generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// Backend defines the interface for vision-capable LLM generation.
type Backend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}
