package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// OpenAICompatBackend implements Backend using the OpenAI chat
// completions API with image_url content parts. Compatible with vLLM
// and other servers exposing the same surface.
type OpenAICompatBackend struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// OpenAICompatOption configures the OpenAICompatBackend.
type OpenAICompatOption func(*OpenAICompatBackend)

// WithOpenAICompatHTTPClient overrides the default HTTP client.
func WithOpenAICompatHTTPClient(c *http.Client) OpenAICompatOption {
	return func(b *OpenAICompatBackend) {
		b.client = c
	}
}

// WithOpenAICompatAPIKey sets the API key.
func WithOpenAICompatAPIKey(key string) OpenAICompatOption {
	return func(b *OpenAICompatBackend) {
		b.apiKey = key
	}
}

// NewOpenAICompatBackend creates a new OpenAI-compatible backend.
func NewOpenAICompatBackend(
	endpoint, model string,
	opts ...OpenAICompatOption,
) *OpenAICompatBackend {
	b := &OpenAICompatBackend{
		endpoint: endpoint,
		model:    model,
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*OpenAICompatBackend) Name() string {
	return "openai_compat"
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature *float64        `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type openAIContentPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *openAIImageURL `json:"image_url,omitempty"`
}

type openAIImageURL struct {
	URL string `json:"url"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Model string      `json:"model"`
	Usage openAIUsage `json:"usage"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Generate calls the /v1/chat/completions endpoint with the image
// embedded as a data URI.
func (b *OpenAICompatBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	parts := []openAIContentPart{}
	if req.ImageBase64 != "" {
		mime := req.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, openAIContentPart{
			Type: "image_url",
			ImageURL: &openAIImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", mime, req.ImageBase64),
			},
		})
	}
	parts = append(parts, openAIContentPart{Type: "text", Text: req.Prompt})

	messages := []openAIMessage{
		{Role: "user", Content: parts},
	}
	if req.SystemMsg != "" {
		messages = append(
			[]openAIMessage{{Role: "system", Content: req.SystemMsg}},
			messages...,
		)
	}

	chatReq := openAIChatRequest{
		Model:     b.model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature > 0 {
		chatReq.Temperature = &req.Temperature
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		b.endpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("calling chat completions API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return GenerateResponse{}, fmt.Errorf(
			"chat completions API error (status %d): %s",
			resp.StatusCode,
			string(respBody),
		)
	}

	var apiResp openAIChatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return GenerateResponse{}, fmt.Errorf("parsing response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return GenerateResponse{}, fmt.Errorf("empty response from chat completions API")
	}

	return GenerateResponse{
		Content: apiResp.Choices[0].Message.Content,
		Model:   apiResp.Model,
		Usage: TokenUsage{
			PromptTokens:     apiResp.Usage.PromptTokens,
			CompletionTokens: apiResp.Usage.CompletionTokens,
			TotalTokens:      apiResp.Usage.TotalTokens,
		},
	}, nil
}
