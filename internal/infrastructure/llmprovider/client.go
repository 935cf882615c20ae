// Package llmprovider adapts the OpenAI-compatible completions API to
// the llm.Provider contract.
package llmprovider

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"synthia-server/internal/config"
	"synthia-server/internal/domain/llm"
	"synthia-server/internal/utils/platformerrors"
)

type Client struct {
	client *openai.Client
	model  string
}

var _ llm.Provider = (*Client)(nil)

func NewClient(cfg *config.Config) *Client {
	clientConfig := openai.DefaultConfig(cfg.CompletionAPIKey)
	if cfg.CompletionBaseURL != "" {
		clientConfig.BaseURL = cfg.CompletionBaseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.CompletionModel,
	}
}

func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserMessage},
		},
	}
	if req.JSONResponse {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, classifyError(err)
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	return &llm.CompletionResult{
		Content: content,
		Usage: llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// classifyError separates quota exhaustion from every other provider
// failure. Workflows match on RateLimited to trigger degraded mode.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.Code == "insufficient_quota" {
			return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeRateLimited, platformerrors.LayerInfrastructure,
				"completion provider quota exhausted", err)
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeRateLimited, platformerrors.LayerInfrastructure,
			"completion provider quota exhausted", err)
	}
	return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeExternal, platformerrors.LayerInfrastructure,
		"completion provider request failed", err)
}
