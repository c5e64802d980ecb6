package notification

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the notification endpoints behind the given
// authentication chain.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, authChain ...gin.HandlerFunc) {
	notifications := r.Group("/notifications")
	notifications.Use(authChain...)
	notifications.Use(middleware.RateLimitByUser(5, 20))
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PATCH("/read-all", middleware.RateLimitByUser(0.5, 2), h.MarkAllAsRead)
		notifications.PATCH("/:id/read", h.MarkAsRead)
		notifications.GET("/preferences", h.GetPreferences)
		notifications.PUT("/preferences", h.UpdatePreferences)
	}
}
