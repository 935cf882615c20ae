package conversation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"synthia-server/internal/domain/conversation"
	"synthia-server/internal/infrastructure/database/entities"
	"synthia-server/internal/utils/platformerrors"
)

type PostgresRepository struct {
	db *gorm.DB
}

var _ conversation.Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByPublicID(ctx context.Context, companyPublicID, publicID string) (*conversation.Conversation, error) {
	var entity entities.Conversation
	err := r.db.WithContext(ctx).
		Where("public_id = ? AND company_public_id = ?", publicID, companyPublicID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(platformerrors.ErrorTypeNotFound, platformerrors.LayerRepository, "conversation not found")
		}
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "find conversation", err)
	}
	return entity.EtoD(), nil
}

func (r *PostgresRepository) ListByCompany(ctx context.Context, companyPublicID string) ([]*conversation.Conversation, error) {
	var rows []entities.Conversation
	err := r.db.WithContext(ctx).
		Where("company_public_id = ?", companyPublicID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "list conversations", err)
	}

	conversations := make([]*conversation.Conversation, 0, len(rows))
	for i := range rows {
		conversations = append(conversations, rows[i].EtoD())
	}
	return conversations, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *conversation.Conversation) error {
	entity := entities.NewSchemaConversation(c)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "create conversation", err)
	}
	*c = *entity.EtoD()
	return nil
}

// ListMessages returns the message log ordered by creation time
// ascending, id ascending as a tiebreak for same-timestamp rows.
func (r *PostgresRepository) ListMessages(ctx context.Context, conversationPublicID string) ([]*conversation.Message, error) {
	var rows []entities.Message
	err := r.db.WithContext(ctx).
		Where("conversation_public_id = ?", conversationPublicID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "list messages", err)
	}

	messages := make([]*conversation.Message, 0, len(rows))
	for i := range rows {
		messages = append(messages, rows[i].EtoD())
	}
	return messages, nil
}

func (r *PostgresRepository) CountMessages(ctx context.Context, conversationPublicID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Message{}).
		Where("conversation_public_id = ?", conversationPublicID).
		Count(&count).Error
	if err != nil {
		return 0, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "count messages", err)
	}
	return int(count), nil
}

func (r *PostgresRepository) CountMessagesByRole(ctx context.Context, conversationPublicID string, role conversation.MessageRole) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Message{}).
		Where("conversation_public_id = ? AND role = ?", conversationPublicID, string(role)).
		Count(&count).Error
	if err != nil {
		return 0, platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "count messages by role", err)
	}
	return int(count), nil
}

func (r *PostgresRepository) AppendMessage(ctx context.Context, m *conversation.Message) error {
	entity := entities.NewSchemaMessage(m)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewErrorWithContext(platformerrors.ErrorTypeDatabaseError, platformerrors.LayerRepository, "append message", err)
	}
	*m = *entity.EtoD()
	return nil
}
