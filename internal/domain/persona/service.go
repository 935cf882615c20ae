package persona

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"synthia-server/internal/domain"
	"synthia-server/internal/utils/platformerrors"
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:   repo,
		logger: log.With().Str("component", "persona_service").Logger(),
	}
}

// CreateInput carries the caller supplied persona fields. AvatarURL is
// optional; when empty an avatar is detected from the other fields.
type CreateInput struct {
	Name             string
	AvatarURL        string
	ShortDescription string
	Parameters       Parameters
}

func (s *Service) Create(ctx context.Context, principal domain.Principal, in CreateInput) (*Persona, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, platformerrors.NewError(platformerrors.ErrorTypeValidation, platformerrors.LayerService, "persona name is required")
	}

	avatarURL := in.AvatarURL
	if avatarURL == "" {
		avatarURL = DetectAvatarURL(in.Name, in.Parameters.Occupation, in.ShortDescription)
	}

	p := &Persona{
		PublicID:         domain.NewPublicID("pers"),
		CompanyPublicID:  principal.CompanyPublicID,
		Name:             in.Name,
		AvatarURL:        avatarURL,
		ShortDescription: in.ShortDescription,
		Parameters:       in.Parameters,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("persona_id", p.PublicID).
		Str("company_id", principal.CompanyPublicID).
		Msg("persona created")
	return p, nil
}

func (s *Service) Get(ctx context.Context, principal domain.Principal, publicID string) (*Persona, error) {
	return s.repo.FindByPublicID(ctx, principal.CompanyPublicID, publicID)
}

func (s *Service) List(ctx context.Context, principal domain.Principal) ([]*Persona, error) {
	return s.repo.ListByCompany(ctx, principal.CompanyPublicID)
}

type UpdateInput struct {
	Name             *string
	AvatarURL        *string
	ShortDescription *string
	Parameters       *Parameters
}

func (s *Service) Update(ctx context.Context, principal domain.Principal, publicID string, in UpdateInput) (*Persona, error) {
	p, err := s.repo.FindByPublicID(ctx, principal.CompanyPublicID, publicID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeValidation, platformerrors.LayerService, "persona name cannot be empty")
		}
		p.Name = *in.Name
	}
	if in.AvatarURL != nil {
		p.AvatarURL = *in.AvatarURL
	}
	if in.ShortDescription != nil {
		p.ShortDescription = *in.ShortDescription
	}
	if in.Parameters != nil {
		p.Parameters = *in.Parameters
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, principal domain.Principal, publicID string) error {
	if err := s.repo.Delete(ctx, principal.CompanyPublicID, publicID); err != nil {
		return err
	}
	s.logger.Info().
		Str("persona_id", publicID).
		Str("company_id", principal.CompanyPublicID).
		Msg("persona deleted")
	return nil
}
