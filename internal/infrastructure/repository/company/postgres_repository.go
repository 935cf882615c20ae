package company

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"synthia-server/internal/domain/company"
	"synthia-server/internal/infrastructure/database/entities"
	"synthia-server/internal/utils/platformerrors"
)

type PostgresRepository struct {
	db *gorm.DB
}

var _ company.Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByPublicID(ctx context.Context, publicID string) (*company.Company, error) {
	var entity entities.Company
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "company not found")
		}
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "find company", err)
	}
	return entity.EtoD(), nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *company.Company) error {
	entity := entities.NewSchemaCompany(c)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "create company", err)
	}
	*c = *entity.EtoD()
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *company.Company) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Company{}).
		Where("public_id = ?", c.PublicID).
		Updates(map[string]any{
			"name":                c.Name,
			"logo_url":            c.LogoURL,
			"primary_color":       c.PrimaryColor,
			"public_context_text": c.PublicContextText,
			"industry":            c.Industry,
		})
	if result.Error != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "update company", result.Error)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "company not found")
	}
	return nil
}
