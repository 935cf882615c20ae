package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/summary"
	"synthia-server/internal/infrastructure/auth"
	"synthia-server/internal/interfaces/httpserver/requests"
	"synthia-server/internal/interfaces/httpserver/responses"
)

type SummaryService interface {
	Get(ctx context.Context, principal domain.Principal, conversationID string) (*summary.Result, error)
	Generate(ctx context.Context, principal domain.Principal, conversationID string) (*summary.Summary, error)
}

type SummaryHandler struct {
	service SummaryService
}

func NewSummaryHandler(service SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// Get handles GET /api/summary?conversationId=...
func (h *SummaryHandler) Get(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conversationID := c.Query("conversationId")
	if conversationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
		return
	}

	result, err := h.service.Get(c.Request.Context(), principal, conversationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.GetSummary{
		Summary: responses.NewSummaryRecord(result.Summary),
		IsStale: result.IsStale,
	})
}

// Generate handles POST /api/summary.
func (h *SummaryHandler) Generate(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req requests.GenerateSummary
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ConversationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
		return
	}

	record, err := h.service.Generate(c.Request.Context(), principal, req.ConversationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.GenerateSummary{Summary: responses.NewSummaryRecord(record)})
}
