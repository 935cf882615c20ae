package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/conversation"
	"synthia-server/internal/infrastructure/auth"
	"synthia-server/internal/interfaces/httpserver/requests"
	"synthia-server/internal/interfaces/httpserver/responses"
)

type ConversationService interface {
	Create(ctx context.Context, principal domain.Principal, personaID, title string) (*conversation.Conversation, error)
	Get(ctx context.Context, principal domain.Principal, publicID string) (*conversation.Conversation, error)
	List(ctx context.Context, principal domain.Principal, personaID string) ([]*conversation.Conversation, error)
	ListMessages(ctx context.Context, principal domain.Principal, conversationID string) ([]*conversation.Message, error)
	AppendMessage(ctx context.Context, principal domain.Principal, conversationID string, role conversation.MessageRole, content string) (*conversation.Message, error)
}

type ConversationHandler struct {
	service ConversationService
}

func NewConversationHandler(service ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

func (h *ConversationHandler) Create(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req requests.CreateConversation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PersonaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "personaId is required"})
		return
	}

	conv, err := h.service.Create(c.Request.Context(), principal, req.PersonaID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, responses.NewConversation(conv))
}

func (h *ConversationHandler) List(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conversations, err := h.service.List(c.Request.Context(), principal, c.Query("personaId"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]*responses.Conversation, 0, len(conversations))
	for _, conv := range conversations {
		out = append(out, responses.NewConversation(conv))
	}
	c.JSON(http.StatusOK, gin.H{"conversations": out})
}

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	messages, err := h.service.ListMessages(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]*responses.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, responses.NewMessage(m))
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}

func (h *ConversationHandler) AppendMessage(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req requests.AppendMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	m, err := h.service.AppendMessage(c.Request.Context(), principal, c.Param("id"),
		conversation.MessageRole(req.Role), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, responses.NewMessage(m))
}
