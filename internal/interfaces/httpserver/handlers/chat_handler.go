package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/chat"
	"synthia-server/internal/infrastructure/auth"
	"synthia-server/internal/interfaces/httpserver/requests"
	"synthia-server/internal/interfaces/httpserver/responses"
)

// ChatService is the slice of the chat service the handler consumes.
type ChatService interface {
	Respond(ctx context.Context, principal domain.Principal, personaID, message string, history []chat.Turn) (string, error)
}

type ChatHandler struct {
	service ChatService
}

func NewChatHandler(service ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Respond handles POST /api/chat.
func (h *ChatHandler) Respond(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req requests.Chat
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PersonaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "personaId is required"})
		return
	}

	history := make([]chat.Turn, 0, len(req.ConversationHistory))
	for _, turn := range req.ConversationHistory {
		history = append(history, chat.Turn{Role: turn.Role, Content: turn.Content})
	}

	reply, err := h.service.Respond(c.Request.Context(), principal, req.PersonaID, req.Message, history)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.Chat{Response: reply})
}
