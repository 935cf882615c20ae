// Package requests holds the JSON request bodies of the HTTP API.
package requests

import "synthia-server/internal/domain/persona"

type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Chat struct {
	PersonaID           string        `json:"personaId"`
	Message             string        `json:"message"`
	ConversationHistory []HistoryTurn `json:"conversationHistory"`
}

type GenerateSummary struct {
	ConversationID string `json:"conversationId"`
}

type CreatePersona struct {
	Name             string             `json:"name"`
	AvatarURL        string             `json:"avatar_url"`
	ShortDescription string             `json:"short_description"`
	Parameters       persona.Parameters `json:"persona_parameters"`
}

type UpdatePersona struct {
	Name             *string             `json:"name"`
	AvatarURL        *string             `json:"avatar_url"`
	ShortDescription *string             `json:"short_description"`
	Parameters       *persona.Parameters `json:"persona_parameters"`
}

type UpdateCompany struct {
	Name              *string `json:"name"`
	LogoURL           *string `json:"logo_url"`
	PrimaryColor      *string `json:"primary_color"`
	PublicContextText *string `json:"public_context_text"`
	Industry          *string `json:"industry"`
}

type CreateConversation struct {
	PersonaID string `json:"personaId"`
	Title     string `json:"title"`
}

type AppendMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
