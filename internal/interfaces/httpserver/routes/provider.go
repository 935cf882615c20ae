// Package routes registers the HTTP route tree.
package routes

import (
	"github.com/gin-gonic/gin"

	"synthia-server/internal/interfaces/httpserver/handlers"
	"synthia-server/internal/interfaces/httpserver/routes/api"
)

type Provider struct {
	handlers *handlers.Provider
}

func NewProvider(h *handlers.Provider) *Provider {
	return &Provider{handlers: h}
}

// Register mounts every authenticated route group on the router.
func (p *Provider) Register(group *gin.RouterGroup) {
	api.Register(group, p.handlers)
}
