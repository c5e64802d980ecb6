package company

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authChain ...gin.HandlerFunc) {
	companyAdmin := middleware.RoleMiddleware(middleware.RoleCorporateAdmin, middleware.RoleAdmin)

	companies := r.Group("/companies")
	companies.Use(authChain...)
	{
		companies.POST("",
			middleware.RateLimitByUser(0.1, 1),
			companyAdmin,
			handler.Create,
		)
		companies.GET("", middleware.RoleMiddleware(middleware.RoleAdmin), handler.ListActive)
		companies.POST("/:id/deactivate",
			middleware.RoleMiddleware(middleware.RoleAdmin),
			handler.Deactivate,
		)

		mine := companies.Group("/me", middleware.RequireCompany())
		mine.GET("", middleware.RateLimitByUser(2, 10), handler.GetMine)
		mine.PUT("", middleware.RateLimitByUser(0.1, 1), companyAdmin, handler.UpdateMine)
		mine.GET("/settings", handler.GetSettings)
		mine.PUT("/settings", middleware.RateLimitByUser(0.5, 2), companyAdmin, handler.UpdateSettings)
		mine.GET("/announcements", handler.ListAnnouncements)
		mine.POST("/announcements", middleware.RateLimitByUser(0.5, 2), companyAdmin, handler.CreateAnnouncement)
		mine.GET("/invitations", companyAdmin, handler.ListInvitations)
		mine.GET("/invitations/pending-count", companyAdmin, handler.PendingCount)
		mine.POST("/invitations", middleware.RateLimitByUser(1, 5), companyAdmin, handler.Invite)
		mine.DELETE("/invitations/:id", companyAdmin, handler.CancelInvitation)
	}

	invitations := r.Group("/invitations")
	invitations.Use(authChain...)
	{
		invitations.GET("/mine", handler.MyInvitations)
		invitations.POST("/accept", middleware.RateLimitByUser(0.5, 3), handler.AcceptInvitation)
	}
}
