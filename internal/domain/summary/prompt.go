package summary

import (
	"strings"

	"synthia-server/internal/domain/conversation"
)

const analysisInstruction = `You are an expert conversation analyst. Analyze the following conversation between a user and a synthetic customer persona.

Produce exactly three sections:
1. key_insights: 3 to 5 key insights about the customer's needs, behavior, and decision drivers.
2. top_objections: the top objections or concerns the customer raised.
3. executive_summary: exactly 5 concise executive summary bullet points.

Return ONLY a JSON object with the keys "key_insights", "top_objections", and "executive_summary", each an array of strings. Do not include any other text.`

// buildAnalysisPrompt renders the message log as alternating User/
// Assistant lines for the analysis request.
func buildAnalysisPrompt(messages []*conversation.Message) string {
	var b strings.Builder
	b.WriteString("Conversation transcript:\n\n")
	for _, m := range messages {
		switch m.Role {
		case conversation.RoleUser:
			b.WriteString("User: ")
		case conversation.RoleAssistant:
			b.WriteString("Assistant: ")
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}
