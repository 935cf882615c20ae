// Package summary implements conversation summaries: structured
// insight extraction over a conversation's message log, with staleness
// tracking against the live message count.
package summary

import (
	"context"
	"time"
)

// Payload is the structured body of a summary as produced by the
// completion provider.
type Payload struct {
	KeyInsights      []string `json:"key_insights"`
	TopObjections    []string `json:"top_objections"`
	ExecutiveSummary []string `json:"executive_summary"`
}

// Summary is the single per-conversation summary row. At most one
// exists per conversation; regeneration updates it in place.
type Summary struct {
	ID                       int64
	PublicID                 string
	ConversationPublicID     string
	Payload                  Payload
	MessageCountAtGeneration int
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

type Repository interface {
	// FindByConversationID returns the summary for the conversation, or
	// a NotFound platform error when none exists yet.
	FindByConversationID(ctx context.Context, conversationPublicID string) (*Summary, error)

	// Upsert inserts the summary or, when a row for the conversation
	// already exists, updates its payload and message count atomically.
	Upsert(ctx context.Context, s *Summary) error
}
