package chat

import (
	"encoding/json"
	"strings"

	"synthia-server/internal/domain/company"
	"synthia-server/internal/domain/persona"
)

// Turn is one prior exchange supplied by the caller. History is passed
// in by the client rather than loaded from storage so the chat surface
// also works for unsaved scratch conversations.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const noContextPlaceholder = "No public company context has been provided."

// buildSystemPrompt grounds the completion in the persona's attributes,
// the company's public context, and the supplied history, then pins the
// behavioral constraints the persona must follow.
func buildSystemPrompt(p *persona.Persona, c *company.Company, history []Turn) string {
	var b strings.Builder

	b.WriteString("You are roleplaying as ")
	b.WriteString(p.Name)
	if p.ShortDescription != "" {
		b.WriteString(", ")
		b.WriteString(p.ShortDescription)
	}
	b.WriteString(". You are a synthetic customer persona for the company ")
	b.WriteString(c.Name)
	b.WriteString(".\n\n")

	b.WriteString("Persona attributes:\n")
	if params, err := json.Marshal(p.Parameters); err == nil {
		b.Write(params)
	}
	b.WriteString("\n\n")

	b.WriteString("Company context:\n")
	if c.PublicContextText != "" {
		b.WriteString(c.PublicContextText)
	} else {
		b.WriteString(noContextPlaceholder)
	}
	b.WriteString("\n\n")

	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			b.WriteString(turn.Role)
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Behavioral constraints:\n")
	b.WriteString("- Stay in character as this persona at all times.\n")
	b.WriteString("- Respond only from the persona's stated motivations, pain points, and fears.\n")
	b.WriteString("- Never assume internal company knowledge that has not been disclosed to you.\n")
	b.WriteString("- Remain consistent with everything you have said earlier in the conversation.\n")
	b.WriteString("- Be authentic, but helpful.\n")

	return b.String()
}
