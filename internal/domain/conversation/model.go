// Package conversation holds conversations and their append-only
// message log.
package conversation

import (
	"context"
	"time"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type Conversation struct {
	ID              int64
	PublicID        string
	CompanyPublicID string
	PersonaPublicID string
	Title           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Message struct {
	ID                   int64
	PublicID             string
	ConversationPublicID string
	Role                 MessageRole
	Content              string
	CreatedAt            time.Time
}

type Repository interface {
	FindByPublicID(ctx context.Context, companyPublicID, publicID string) (*Conversation, error)
	ListByCompany(ctx context.Context, companyPublicID string) ([]*Conversation, error)
	Create(ctx context.Context, c *Conversation) error

	// ListMessages returns every message of the conversation ordered by
	// creation time ascending.
	ListMessages(ctx context.Context, conversationPublicID string) ([]*Message, error)
	CountMessages(ctx context.Context, conversationPublicID string) (int, error)
	CountMessagesByRole(ctx context.Context, conversationPublicID string, role MessageRole) (int, error)
	AppendMessage(ctx context.Context, m *Message) error
}
