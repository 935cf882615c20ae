package persona

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"synthia-server/internal/domain/persona"
	"synthia-server/internal/infrastructure/database/entities"
	"synthia-server/internal/utils/platformerrors"
)

type PostgresRepository struct {
	db *gorm.DB
}

var _ persona.Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindByPublicID is company scoped: a persona owned by another company
// comes back as NotFound, never as data.
func (r *PostgresRepository) FindByPublicID(ctx context.Context, companyPublicID, publicID string) (*persona.Persona, error) {
	var entity entities.Persona
	err := r.db.WithContext(ctx).
		Where("public_id = ? AND company_public_id = ?", publicID, companyPublicID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "persona not found")
		}
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "find persona", err)
	}

	domainPersona, err := entity.EtoD()
	if err != nil {
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "decode persona parameters", err)
	}
	return domainPersona, nil
}

func (r *PostgresRepository) ListByCompany(ctx context.Context, companyPublicID string) ([]*persona.Persona, error) {
	var rows []entities.Persona
	err := r.db.WithContext(ctx).
		Where("company_public_id = ?", companyPublicID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "list personas", err)
	}

	personas := make([]*persona.Persona, 0, len(rows))
	for i := range rows {
		p, err := rows[i].EtoD()
		if err != nil {
			return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "decode persona parameters", err)
		}
		personas = append(personas, p)
	}
	return personas, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *persona.Persona) error {
	entity, err := entities.NewSchemaPersona(p)
	if err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "encode persona parameters", err)
	}
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "create persona", err)
	}

	stored, err := entity.EtoD()
	if err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "decode persona parameters", err)
	}
	*p = *stored
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *persona.Persona) error {
	entity, err := entities.NewSchemaPersona(p)
	if err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "encode persona parameters", err)
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Persona{}).
		Where("public_id = ? AND company_public_id = ?", p.PublicID, p.CompanyPublicID).
		Updates(map[string]any{
			"name":               entity.Name,
			"avatar_url":         entity.AvatarURL,
			"short_description":  entity.ShortDescription,
			"persona_parameters": entity.Parameters,
		})
	if result.Error != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "update persona", result.Error)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "persona not found")
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, companyPublicID, publicID string) error {
	result := r.db.WithContext(ctx).
		Where("public_id = ? AND company_public_id = ?", publicID, companyPublicID).
		Delete(&entities.Persona{})
	if result.Error != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "delete persona", result.Error)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "persona not found")
	}
	return nil
}
