// Package chat implements the persona response workflow: grounding a
// completion request in a persona and its company, with a deterministic
// degraded mode when the completion provider is out of quota.
package chat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/company"
	"synthia-server/internal/domain/llm"
	"synthia-server/internal/domain/persona"
	"synthia-server/internal/infrastructure/metrics"
	"synthia-server/internal/utils/platformerrors"
)

const (
	responseTemperature = 0.7

	emptyCompletionApology = "I apologize, but I'm having trouble formulating a response right now. Could you rephrase that?"
)

type Service struct {
	personas  persona.Repository
	companies company.Repository
	provider  llm.Provider
	maxTokens int
	logger    zerolog.Logger
}

func NewService(personas persona.Repository, companies company.Repository, provider llm.Provider, maxTokens int) *Service {
	return &Service{
		personas:  personas,
		companies: companies,
		provider:  provider,
		maxTokens: maxTokens,
		logger:    log.With().Str("component", "chat_service").Logger(),
	}
}

// Respond produces a single in-character assistant utterance. The
// workflow is read-only on persistence: recording the exchange is the
// conversation service's concern, not this one's.
func (s *Service) Respond(ctx context.Context, principal domain.Principal, personaPublicID, message string, history []Turn) (string, error) {
	if message == "" {
		return "", platformerrors.NewError(platformerrors.ErrorTypeValidation, platformerrors.LayerService, "message is required")
	}

	p, err := s.personas.FindByPublicID(ctx, principal.CompanyPublicID, personaPublicID)
	if err != nil {
		return "", err
	}

	c, err := s.companies.FindByPublicID(ctx, principal.CompanyPublicID)
	if err != nil {
		return "", err
	}

	result, err := s.provider.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: buildSystemPrompt(p, c, history),
		UserMessage:  message,
		Temperature:  responseTemperature,
		MaxTokens:    s.maxTokens,
	})
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeRateLimited) {
			s.logger.Warn().
				Str("persona_id", p.PublicID).
				Msg("completion provider rate limited, returning mock response")
			metrics.RecordCompletion("chat", "rate_limited")
			return mockResponse(p, c), nil
		}
		metrics.RecordCompletion("chat", "error")
		return "", err
	}

	metrics.RecordCompletion("chat", "success")
	metrics.RecordTokens("chat", result.Usage.TotalTokens)

	if result.Content == "" {
		return emptyCompletionApology, nil
	}
	return result.Content, nil
}

// mockResponse is the quota exhaustion fallback. It is deliberately
// self-labeled so degraded responses are never mistaken for real ones.
func mockResponse(p *persona.Persona, c *company.Company) string {
	return fmt.Sprintf(
		"[Mock response] Hi, I'm %s, %s. I'd normally answer in character for %s, but the AI completion quota is currently exhausted. Add credits to the completion provider account to restore real persona responses.",
		p.Name, p.ShortDescription, c.Name)
}
