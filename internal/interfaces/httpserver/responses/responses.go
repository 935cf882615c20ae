// Package responses holds the JSON response bodies of the HTTP API.
package responses

import (
	"time"

	"synthia-server/internal/domain/company"
	"synthia-server/internal/domain/conversation"
	"synthia-server/internal/domain/persona"
	"synthia-server/internal/domain/summary"
)

type Chat struct {
	Response string `json:"response"`
}

// SummaryRecord is a summary row as exposed to API callers.
type SummaryRecord struct {
	ID                       string          `json:"id"`
	ConversationID           string          `json:"conversation_id"`
	SummaryJSON              summary.Payload `json:"summary_json"`
	MessageCountAtGeneration int             `json:"message_count_at_generation"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

func NewSummaryRecord(s *summary.Summary) *SummaryRecord {
	if s == nil {
		return nil
	}
	return &SummaryRecord{
		ID:                       s.PublicID,
		ConversationID:           s.ConversationPublicID,
		SummaryJSON:              s.Payload,
		MessageCountAtGeneration: s.MessageCountAtGeneration,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                s.UpdatedAt,
	}
}

type GetSummary struct {
	Summary *SummaryRecord `json:"summary"`
	IsStale bool           `json:"is_stale"`
}

type GenerateSummary struct {
	Summary *SummaryRecord `json:"summary"`
}

type Persona struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	AvatarURL        string             `json:"avatar_url,omitempty"`
	ShortDescription string             `json:"short_description"`
	Parameters       persona.Parameters `json:"persona_parameters"`
	CreatedAt        time.Time          `json:"created_at"`
}

func NewPersona(p *persona.Persona) *Persona {
	return &Persona{
		ID:               p.PublicID,
		Name:             p.Name,
		AvatarURL:        p.AvatarURL,
		ShortDescription: p.ShortDescription,
		Parameters:       p.Parameters,
		CreatedAt:        p.CreatedAt,
	}
}

type Company struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LogoURL           string    `json:"logo_url,omitempty"`
	PrimaryColor      string    `json:"primary_color,omitempty"`
	PublicContextText string    `json:"public_context_text,omitempty"`
	Industry          string    `json:"industry,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewCompany(c *company.Company) *Company {
	return &Company{
		ID:                c.PublicID,
		Name:              c.Name,
		LogoURL:           c.LogoURL,
		PrimaryColor:      c.PrimaryColor,
		PublicContextText: c.PublicContextText,
		Industry:          c.Industry,
		CreatedAt:         c.CreatedAt,
	}
}

type Conversation struct {
	ID        string    `json:"id"`
	PersonaID string    `json:"persona_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func NewConversation(c *conversation.Conversation) *Conversation {
	return &Conversation{
		ID:        c.PublicID,
		PersonaID: c.PersonaPublicID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
	}
}

type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessage(m *conversation.Message) *Message {
	return &Message{
		ID:        m.PublicID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
