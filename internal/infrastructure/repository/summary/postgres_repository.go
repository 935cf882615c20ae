package summary

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"synthia-server/internal/domain/summary"
	"synthia-server/internal/infrastructure/database/entities"
	"synthia-server/internal/utils/platformerrors"
)

type PostgresRepository struct {
	db *gorm.DB
}

var _ summary.Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByConversationID(ctx context.Context, conversationPublicID string) (*summary.Summary, error) {
	var entity entities.ConversationSummary
	err := r.db.WithContext(ctx).
		Where("conversation_public_id = ?", conversationPublicID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "summary not found")
		}
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "find summary", err)
	}

	record, err := entity.EtoD()
	if err != nil {
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "decode summary payload", err)
	}
	return record, nil
}

// Upsert writes the summary atomically: one INSERT with an ON CONFLICT
// clause on conversation_public_id, so concurrent regenerations cannot
// produce duplicate rows. The existing row's id, public_id and
// created_at are preserved on conflict.
func (r *PostgresRepository) Upsert(ctx context.Context, s *summary.Summary) error {
	entity, err := entities.NewSchemaConversationSummary(s)
	if err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "encode summary payload", err)
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "conversation_public_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"summary_json", "message_count_at_generation", "updated_at"}),
		}).
		Create(entity).Error
	if err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "upsert summary", err)
	}
	return nil
}
