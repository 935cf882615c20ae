package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewPublicID builds a prefixed public identifier, e.g. "pers_3f9c2ab81d04".
// Public IDs are what the HTTP surface exposes; numeric primary keys
// never leave the persistence layer.
func NewPublicID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:12]
}
