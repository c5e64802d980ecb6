package mentorship

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authChain ...gin.HandlerFunc) {
	m := r.Group("/mentorship")
	m.Use(authChain...)
	m.Use(middleware.RequireCompany())
	{
		m.GET("/programs", h.ListPrograms)
		m.GET("/programs/:id", h.GetProgram)
		m.POST("/programs", middleware.RoleMiddleware(middleware.RoleCorporateAdmin, middleware.RoleAdmin), h.CreateProgram)

		m.GET("/summary", h.Summary)
		m.GET("/relationships", h.Relationships)
		m.POST("/relationships", middleware.RateLimitByUser(0.2, 3), h.RequestMentorship)
		m.PUT("/relationships/:id/status", h.UpdateRelationshipStatus)
		m.POST("/relationships/:id/feedback", h.AddFeedback)
		m.GET("/relationships/:id/sessions", h.Sessions)
		m.POST("/relationships/:id/sessions", h.ScheduleSession)

		m.PUT("/sessions/:id/status", h.UpdateSessionStatus)
	}
}
