package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"synthia-server/internal/domain/summary"
)

// ConversationSummary keeps at most one row per conversation; the
// unique index on conversation_public_id is what the upsert conflicts
// against.
type ConversationSummary struct {
	ID                       int64          `gorm:"primaryKey;autoIncrement"`
	PublicID                 string         `gorm:"column:public_id;uniqueIndex;size:64;not null"`
	ConversationPublicID     string         `gorm:"column:conversation_public_id;uniqueIndex;size:64;not null"`
	Payload                  datatypes.JSON `gorm:"column:summary_json;type:jsonb;not null"`
	MessageCountAtGeneration int            `gorm:"column:message_count_at_generation;not null"`
	CreatedAt                time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                time.Time      `gorm:"autoUpdateTime"`
}

func (ConversationSummary) TableName() string {
	return "conversation_summary"
}

func (e *ConversationSummary) EtoD() (*summary.Summary, error) {
	var payload summary.Payload
	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return nil, err
	}

	return &summary.Summary{
		ID:                       e.ID,
		PublicID:                 e.PublicID,
		ConversationPublicID:     e.ConversationPublicID,
		Payload:                  payload,
		MessageCountAtGeneration: e.MessageCountAtGeneration,
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}, nil
}

func NewSchemaConversationSummary(d *summary.Summary) (*ConversationSummary, error) {
	payload, err := json.Marshal(d.Payload)
	if err != nil {
		return nil, err
	}

	return &ConversationSummary{
		ID:                       d.ID,
		PublicID:                 d.PublicID,
		ConversationPublicID:     d.ConversationPublicID,
		Payload:                  datatypes.JSON(payload),
		MessageCountAtGeneration: d.MessageCountAtGeneration,
	}, nil
}
