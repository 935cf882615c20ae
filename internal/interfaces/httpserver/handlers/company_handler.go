package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/company"
	"synthia-server/internal/infrastructure/auth"
	"synthia-server/internal/interfaces/httpserver/requests"
	"synthia-server/internal/interfaces/httpserver/responses"
)

type CompanyService interface {
	Get(ctx context.Context, principal domain.Principal) (*company.Company, error)
	Update(ctx context.Context, principal domain.Principal, in company.UpdateInput) (*company.Company, error)
}

type CompanyHandler struct {
	service CompanyService
}

func NewCompanyHandler(service CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Get handles GET /api/company: the caller's own company record.
func (h *CompanyHandler) Get(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	record, err := h.service.Get(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewCompany(record))
}

// Update handles PATCH /api/company.
func (h *CompanyHandler) Update(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req requests.UpdateCompany
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.service.Update(c.Request.Context(), principal, company.UpdateInput{
		Name:              req.Name,
		LogoURL:           req.LogoURL,
		PrimaryColor:      req.PrimaryColor,
		PublicContextText: req.PublicContextText,
		Industry:          req.Industry,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewCompany(record))
}
