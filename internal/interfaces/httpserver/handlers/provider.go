// Package handlers contains the gin HTTP handlers of the API surface.
package handlers

// Provider bundles every handler for route registration.
type Provider struct {
	Chat         *ChatHandler
	Summary      *SummaryHandler
	Persona      *PersonaHandler
	Conversation *ConversationHandler
	Company      *CompanyHandler
}

func NewProvider(
	chat *ChatHandler,
	summary *SummaryHandler,
	persona *PersonaHandler,
	conversation *ConversationHandler,
	company *CompanyHandler,
) *Provider {
	return &Provider{
		Chat:         chat,
		Summary:      summary,
		Persona:      persona,
		Conversation: conversation,
		Company:      company,
	}
}
