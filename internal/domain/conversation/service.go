package conversation

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/persona"
	"synthia-server/internal/utils/platformerrors"
)

type Service struct {
	repo     Repository
	personas persona.Repository
	logger   zerolog.Logger
}

func NewService(repo Repository, personas persona.Repository) *Service {
	return &Service{
		repo:     repo,
		personas: personas,
		logger:   log.With().Str("component", "conversation_service").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, principal domain.Principal, personaPublicID, title string) (*Conversation, error) {
	// Resolving the persona through the company scoped finder doubles
	// as the ownership check.
	p, err := s.personas.FindByPublicID(ctx, principal.CompanyPublicID, personaPublicID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		title = "Conversation with " + p.Name
	}

	c := &Conversation{
		PublicID:        domain.NewPublicID("conv"),
		CompanyPublicID: principal.CompanyPublicID,
		PersonaPublicID: p.PublicID,
		Title:           title,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("conversation_id", c.PublicID).
		Str("persona_id", p.PublicID).
		Msg("conversation created")
	return c, nil
}

func (s *Service) Get(ctx context.Context, principal domain.Principal, publicID string) (*Conversation, error) {
	return s.repo.FindByPublicID(ctx, principal.CompanyPublicID, publicID)
}

// List returns the company's conversations, optionally narrowed to a
// single persona.
func (s *Service) List(ctx context.Context, principal domain.Principal, personaPublicID string) ([]*Conversation, error) {
	all, err := s.repo.ListByCompany(ctx, principal.CompanyPublicID)
	if err != nil {
		return nil, err
	}
	if personaPublicID == "" {
		return all, nil
	}

	filtered := make([]*Conversation, 0, len(all))
	for _, conv := range all {
		if conv.PersonaPublicID == personaPublicID {
			filtered = append(filtered, conv)
		}
	}
	return filtered, nil
}

func (s *Service) ListMessages(ctx context.Context, principal domain.Principal, conversationPublicID string) ([]*Message, error) {
	if _, err := s.repo.FindByPublicID(ctx, principal.CompanyPublicID, conversationPublicID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, conversationPublicID)
}

// AppendMessage records one turn. Messages are append-only: there is no
// update or delete path.
func (s *Service) AppendMessage(ctx context.Context, principal domain.Principal, conversationPublicID string, role MessageRole, content string) (*Message, error) {
	if role != RoleUser && role != RoleAssistant {
		return nil, platformerrors.NewError(platformerrors.ErrorTypeValidation, platformerrors.LayerService, "message role must be user or assistant")
	}
	if content == "" {
		return nil, platformerrors.NewError(platformerrors.ErrorTypeValidation, platformerrors.LayerService, "message content is required")
	}

	if _, err := s.repo.FindByPublicID(ctx, principal.CompanyPublicID, conversationPublicID); err != nil {
		return nil, err
	}

	m := &Message{
		PublicID:             domain.NewPublicID("msg"),
		ConversationPublicID: conversationPublicID,
		Role:                 role,
		Content:              content,
	}
	if err := s.repo.AppendMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
