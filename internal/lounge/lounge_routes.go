package lounge

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authChain ...gin.HandlerFunc) {
	lounges := r.Group("/lounges")
	lounges.Use(authChain...)
	{
		lounges.GET("", h.List)
		lounges.GET("/mine", h.Mine)
		lounges.GET("/:id", h.GetByID)
		lounges.GET("/:id/participants", h.Participants)
		lounges.GET("/:id/messages", h.Messages)

		lounges.POST("", middleware.RateLimitByUser(0.2, 2), h.Create)
		lounges.POST("/:id/join", middleware.RateLimitByUser(1, 5), h.Join)
		lounges.POST("/:id/leave", h.Leave)
		lounges.POST("/:id/messages", middleware.RateLimitByUser(2, 10), h.SendMessage)
		lounges.DELETE("/:id", h.Close)
	}
}
