package gamification

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authChain ...gin.HandlerFunc) {
	g := r.Group("/gamification")
	g.Use(authChain...)
	{
		g.GET("/leaderboard", h.Leaderboard)
		g.GET("/leaderboard/:activity", h.TopPerformers)
		g.GET("/rank", h.MyRank)
		g.GET("/summary", h.Summary)
		g.GET("/badges", h.ListBadges)
		g.GET("/badges/progress", h.BadgeProgress)
		g.POST("/badges/acknowledge", h.AcknowledgeBadges)
		g.POST("/activities", middleware.RateLimitByUser(2, 10), h.RecordActivity)
		g.POST("/badges/:id/award", middleware.RoleMiddleware(middleware.RoleAdmin), h.AwardBadge)
	}
}
