package summary

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/conversation"
	"synthia-server/internal/domain/llm"
	"synthia-server/internal/infrastructure/metrics"
	"synthia-server/internal/utils/platformerrors"
)

const (
	analysisTemperature = 0.7
	minUserMessages     = 3
)

// Result is the read path response: the summary if one exists, plus
// whether it has gone stale.
type Result struct {
	Summary *Summary
	IsStale bool
}

type Service struct {
	repo          Repository
	conversations conversation.Repository
	provider      llm.Provider
	maxTokens     int
	logger        zerolog.Logger
}

func NewService(repo Repository, conversations conversation.Repository, provider llm.Provider, maxTokens int) *Service {
	return &Service{
		repo:          repo,
		conversations: conversations,
		provider:      provider,
		maxTokens:     maxTokens,
		logger:        log.With().Str("component", "summary_service").Logger(),
	}
}

// Get returns the current summary and its staleness. A missing summary
// is not an error: the caller gets a nil summary and is_stale false.
// The same shape is returned when the conversation is not visible to
// the principal, so the read path never leaks existence.
func (s *Service) Get(ctx context.Context, principal domain.Principal, conversationPublicID string) (*Result, error) {
	if _, err := s.conversations.FindByPublicID(ctx, principal.CompanyPublicID, conversationPublicID); err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return &Result{Summary: nil, IsStale: false}, nil
		}
		return nil, err
	}

	record, err := s.repo.FindByConversationID(ctx, conversationPublicID)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return &Result{Summary: nil, IsStale: false}, nil
		}
		return nil, err
	}

	count, err := s.conversations.CountMessages(ctx, conversationPublicID)
	if err != nil {
		return nil, err
	}

	return &Result{
		Summary: record,
		IsStale: IsStale(count, record.MessageCountAtGeneration),
	}, nil
}

// Generate produces or refreshes the summary for a conversation. The
// message count recorded on the row is snapshotted before the
// completion call, so a message appended mid-generation shows up as
// staleness on the next read rather than being folded in.
func (s *Service) Generate(ctx context.Context, principal domain.Principal, conversationPublicID string) (*Summary, error) {
	if _, err := s.conversations.FindByPublicID(ctx, principal.CompanyPublicID, conversationPublicID); err != nil {
		return nil, err
	}

	messages, err := s.conversations.ListMessages(ctx, conversationPublicID)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerService, "conversation has no messages")
	}

	userTurns := 0
	for _, m := range messages {
		if m.Role == conversation.RoleUser {
			userTurns++
		}
	}
	if userTurns < minUserMessages {
		return nil, platformerrors.NewError(platformerrors.ErrorTypeValidation, platformerrors.LayerService,
			"at least 3 user messages are required to generate a summary")
	}

	messageCount := len(messages)

	payload, degraded, err := s.requestAnalysis(ctx, messages)
	if err != nil {
		return nil, err
	}

	record := &Summary{
		PublicID:                 domain.NewPublicID("summ"),
		ConversationPublicID:     conversationPublicID,
		Payload:                  payload,
		MessageCountAtGeneration: messageCount,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	// Re-read so the caller sees the canonical row, including the
	// original id and created_at when the upsert hit an existing row.
	stored, err := s.repo.FindByConversationID(ctx, conversationPublicID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("conversation_id", conversationPublicID).
		Int("message_count", messageCount).
		Bool("degraded", degraded).
		Msg("summary generated")
	return stored, nil
}

// requestAnalysis calls the completion provider and parses the JSON
// payload. Quota exhaustion swaps in the mock payload instead of
// failing; degraded reports which path was taken.
func (s *Service) requestAnalysis(ctx context.Context, messages []*conversation.Message) (Payload, bool, error) {
	result, err := s.provider.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: analysisInstruction,
		UserMessage:  buildAnalysisPrompt(messages),
		Temperature:  analysisTemperature,
		MaxTokens:    s.maxTokens,
		JSONResponse: true,
	})
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeRateLimited) {
			s.logger.Warn().Msg("completion provider rate limited, using mock summary")
			metrics.RecordCompletion("summary", "rate_limited")
			return mockPayload(), true, nil
		}
		metrics.RecordCompletion("summary", "error")
		return Payload{}, false, err
	}

	metrics.RecordCompletion("summary", "success")
	metrics.RecordTokens("summary", result.Usage.TotalTokens)

	var payload Payload
	if err := json.Unmarshal([]byte(result.Content), &payload); err != nil {
		return Payload{}, false, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeExternal, platformerrors.LayerService,
			"completion provider returned malformed summary JSON", err)
	}
	if payload.KeyInsights == nil || payload.TopObjections == nil || payload.ExecutiveSummary == nil {
		return Payload{}, false, platformerrors.NewError(platformerrors.ErrorTypeExternal, platformerrors.LayerService,
			"completion provider returned incomplete summary JSON")
	}

	return payload, false, nil
}
