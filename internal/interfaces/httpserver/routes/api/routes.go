// Package api wires the /api route group.
package api

import (
	"github.com/gin-gonic/gin"

	"synthia-server/internal/interfaces/httpserver/handlers"
)

// Register mounts the API routes. The group is expected to already
// carry the auth middleware.
func Register(group *gin.RouterGroup, h *handlers.Provider) {
	group.POST("/chat", h.Chat.Respond)

	group.GET("/summary", h.Summary.Get)
	group.POST("/summary", h.Summary.Generate)

	group.GET("/company", h.Company.Get)
	group.PATCH("/company", h.Company.Update)

	personas := group.Group("/personas")
	{
		personas.GET("", h.Persona.List)
		personas.POST("", h.Persona.Create)
		personas.GET("/:id", h.Persona.Get)
		personas.PATCH("/:id", h.Persona.Update)
		personas.DELETE("/:id", h.Persona.Delete)
	}

	conversations := group.Group("/conversations")
	{
		conversations.GET("", h.Conversation.List)
		conversations.POST("", h.Conversation.Create)
		conversations.GET("/:id/messages", h.Conversation.ListMessages)
		conversations.POST("/:id/messages", h.Conversation.AppendMessage)
	}
}
