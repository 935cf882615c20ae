package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"synthia-server/internal/domain"
	"synthia-server/internal/domain/persona"
	"synthia-server/internal/infrastructure/auth"
	"synthia-server/internal/interfaces/httpserver/requests"
	"synthia-server/internal/interfaces/httpserver/responses"
)

type PersonaService interface {
	Create(ctx context.Context, principal domain.Principal, in persona.CreateInput) (*persona.Persona, error)
	Get(ctx context.Context, principal domain.Principal, publicID string) (*persona.Persona, error)
	List(ctx context.Context, principal domain.Principal) ([]*persona.Persona, error)
	Update(ctx context.Context, principal domain.Principal, publicID string, in persona.UpdateInput) (*persona.Persona, error)
	Delete(ctx context.Context, principal domain.Principal, publicID string) error
}

type PersonaHandler struct {
	service PersonaService
}

func NewPersonaHandler(service PersonaService) *PersonaHandler {
	return &PersonaHandler{service: service}
}

func (h *PersonaHandler) Create(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req requests.CreatePersona
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Create(c.Request.Context(), principal, persona.CreateInput{
		Name:             req.Name,
		AvatarURL:        req.AvatarURL,
		ShortDescription: req.ShortDescription,
		Parameters:       req.Parameters,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, responses.NewPersona(p))
}

func (h *PersonaHandler) Get(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.service.Get(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewPersona(p))
}

func (h *PersonaHandler) List(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	personas, err := h.service.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]*responses.Persona, 0, len(personas))
	for _, p := range personas {
		out = append(out, responses.NewPersona(p))
	}
	c.JSON(http.StatusOK, gin.H{"personas": out})
}

func (h *PersonaHandler) Update(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req requests.UpdatePersona
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Update(c.Request.Context(), principal, c.Param("id"), persona.UpdateInput{
		Name:             req.Name,
		AvatarURL:        req.AvatarURL,
		ShortDescription: req.ShortDescription,
		Parameters:       req.Parameters,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewPersona(p))
}

func (h *PersonaHandler) Delete(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
