// Package llm defines the completion gateway contract consumed by the
// chat and summary workflows.
package llm

import "context"

// CompletionRequest is a two turn completion: a system instruction plus
// a single user turn.
type CompletionRequest struct {
	SystemPrompt string
	UserMessage  string
	Temperature  float64
	MaxTokens    int
	// JSONResponse asks the provider to constrain output to a JSON object.
	JSONResponse bool
}

// Usage reports token accounting for a completion call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionResult is the provider's generated text plus usage data.
type CompletionResult struct {
	Content string
	Usage   Usage
}

// Provider is the completion gateway. Implementations report quota
// exhaustion as a platformerrors RateLimited error so workflows can
// match on it and degrade gracefully.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
}
