package user

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authChain ...gin.HandlerFunc) {
	users := r.Group("/users")
	users.Use(authChain...)
	{
		users.GET("/me", handler.Me)
		users.PUT("/me", middleware.RateLimitByUser(0.5, 2), handler.UpdateMe)
		users.GET("/me/preferences", handler.GetPreferences)
		users.PUT("/me/preferences", middleware.RateLimitByUser(0.5, 2), handler.UpdatePreferences)

		users.GET("/search", middleware.RateLimitByUser(3, 10), handler.Search)
		users.GET("/suggestions", middleware.RateLimitByUser(5, 10), handler.Suggestions)
		users.GET("/company", middleware.RequireCompany(), handler.CompanyMembers)
		users.GET("/:id", handler.GetByID)

		users.PATCH("/:id/status",
			middleware.RoleMiddleware(middleware.RoleAdmin),
			handler.SetStatus,
		)
	}
}
