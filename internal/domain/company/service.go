package company

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
		logger: log.With().Str("component", "company_service").Logger(),
	}
}

// Get returns the principal's own company record.
func (s *Service) Get(ctx context.Context, principal domain.Principal) (*Company, error) {
	return s.repo.FindByPublicID(ctx, principal.CompanyPublicID)
}

type UpdateInput struct {
	Name              *string
	LogoURL           *string
	PrimaryColor      *string
	PublicContextText *string
	Industry          *string
}

func (s *Service) Update(ctx context.Context, principal domain.Principal, in UpdateInput) (*Company, error) {
	record, err := s.repo.FindByPublicID(ctx, principal.CompanyPublicID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeValidation, platformerrors.LayerService, "company name cannot be empty")
		}
		record.Name = *in.Name
	}
	if in.LogoURL != nil {
		record.LogoURL = *in.LogoURL
	}
	if in.PrimaryColor != nil {
		record.PrimaryColor = *in.PrimaryColor
	}
	if in.PublicContextText != nil {
		record.PublicContextText = *in.PublicContextText
	}
	if in.Industry != nil {
		record.Industry = *in.Industry
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().Str("company_id", record.PublicID).Msg("company updated")
	return record, nil
}
