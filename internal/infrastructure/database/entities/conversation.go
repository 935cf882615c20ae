package entities

import (
	"time"

	"synthia-server/internal/domain/conversation"
)

type Conversation struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	PublicID        string    `gorm:"column:public_id;uniqueIndex;size:64;not null"`
	CompanyPublicID string    `gorm:"column:company_public_id;index;size:64;not null"`
	PersonaPublicID string    `gorm:"column:persona_public_id;index;size:64;not null"`
	Title           string    `gorm:"size:512"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversation"
}

func (e *Conversation) EtoD() *conversation.Conversation {
	return &conversation.Conversation{
		ID:              e.ID,
		PublicID:        e.PublicID,
		CompanyPublicID: e.CompanyPublicID,
		PersonaPublicID: e.PersonaPublicID,
		Title:           e.Title,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func NewSchemaConversation(d *conversation.Conversation) *Conversation {
	return &Conversation{
		ID:              d.ID,
		PublicID:        d.PublicID,
		CompanyPublicID: d.CompanyPublicID,
		PersonaPublicID: d.PersonaPublicID,
		Title:           d.Title,
	}
}

type Message struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	PublicID             string    `gorm:"column:public_id;uniqueIndex;size:64;not null"`
	ConversationPublicID string    `gorm:"column:conversation_public_id;index;size:64;not null"`
	Role                 string    `gorm:"size:16;not null"`
	Content              string    `gorm:"type:text;not null"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "message"
}

func (e *Message) EtoD() *conversation.Message {
	return &conversation.Message{
		ID:                   e.ID,
		PublicID:             e.PublicID,
		ConversationPublicID: e.ConversationPublicID,
		Role:                 conversation.MessageRole(e.Role),
		Content:              e.Content,
		CreatedAt:            e.CreatedAt,
	}
}

func NewSchemaMessage(d *conversation.Message) *Message {
	return &Message{
		ID:                   d.ID,
		PublicID:             d.PublicID,
		ConversationPublicID: d.ConversationPublicID,
		Role:                 string(d.Role),
		Content:              d.Content,
	}
}
