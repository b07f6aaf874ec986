// Package llm provides LLM client interfaces and implementations.
package llm

import (
	"context"
	"fmt"
)

// ChatMessage represents a chat message for the upstream provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest represents a completion request.
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64
}

// CompletionResponse represents a completion response.
type CompletionResponse struct {
	Content   string
	Model     string
	TokensIn  int
	TokensOut int
	LatencyMs int64
}

// Client is the interface for LLM providers.
type Client interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Probe reports whether the upstream provider is reachable. It never
	// returns an error; any upstream failure is flattened to false.
	Probe(ctx context.Context) bool

	// Name returns the provider name.
	Name() string

	// Models returns available models.
	Models() []string
}

// Provider is the type of LLM provider.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// NewClient creates a new LLM client based on provider.
func NewClient(provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey)
	default:
		return NewOpenAIClient(apiKey)
	}
}

// ErrorKind classifies completion failures for logging and metrics. The
// distinction is not exposed to API callers.
type ErrorKind string

const (
	// KindUpstream covers API-level errors returned by the provider:
	// rate limits, auth failures, malformed requests, outages.
	KindUpstream ErrorKind = "upstream"

	// KindUnexpected covers transport failures, timeouts, and malformed
	// responses.
	KindUnexpected ErrorKind = "unexpected"
)

// Error is a classified completion failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
