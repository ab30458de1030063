package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// CardDetails is the structured result of examining one photograph.
type CardDetails struct {
	Country     string   `json:"country"`
	Year        string   `json:"year"`
	Condition   string   `json:"condition"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subjects    []string `json:"subjects"`
	Confidence  float64  `json:"confidence"`
}

// Extractor extracts listing details from an item photograph.
type Extractor interface {
	ExtractDetails(
		ctx context.Context,
		family domain.ItemFamily,
		imageData []byte,
		imageMIME string,
	) (*CardDetails, error)
}

// LLMExtractor implements Extractor using a vision backend.
type LLMExtractor struct {
	backend     Backend
	temperature float64
	maxTokens   int
}

// LLMExtractorOption configures the LLMExtractor.
type LLMExtractorOption func(*LLMExtractor)

// WithTemperature sets the LLM temperature for extraction.
func WithTemperature(t float64) LLMExtractorOption {
	return func(e *LLMExtractor) {
		e.temperature = t
	}
}

// WithMaxTokens sets the max tokens for LLM responses.
func WithMaxTokens(n int) LLMExtractorOption {
	return func(e *LLMExtractor) {
		e.maxTokens = n
	}
}

// NewLLMExtractor creates a new LLMExtractor.
func NewLLMExtractor(backend Backend, opts ...LLMExtractorOption) *LLMExtractor {
	e := &LLMExtractor{
		backend:     backend,
		temperature: 0.1,
		maxTokens:   1024,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractDetails sends the photograph to the vision backend and parses
// the structured details out of its JSON reply.
func (e *LLMExtractor) ExtractDetails(
	ctx context.Context,
	family domain.ItemFamily,
	imageData []byte,
	imageMIME string,
) (*CardDetails, error) {
	prompt, err := RenderCardPrompt(string(family))
	if err != nil {
		return nil, err
	}

	resp, err := e.backend.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   systemMsg,
		ImageBase64: base64.StdEncoding.EncodeToString(imageData),
		ImageMIME:   imageMIME,
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("calling vision backend: %w", err)
	}

	details := &CardDetails{}
	if err := json.Unmarshal([]byte(stripFences(resp.Content)), details); err != nil {
		return nil, fmt.Errorf("parsing vision JSON response: %w", err)
	}

	if details.Title == "" {
		return nil, fmt.Errorf("vision response missing title")
	}
	details.Title = domain.TruncateTitle(details.Title)

	return details, nil
}

// stripFences removes a markdown code fence if the model wrapped its
// JSON in one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
