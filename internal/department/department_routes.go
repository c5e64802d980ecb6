package department

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authChain ...gin.HandlerFunc) {
	companyAdmin := middleware.RoleMiddleware(middleware.RoleCorporateAdmin, middleware.RoleAdmin)

	departments := r.Group("/departments")
	departments.Use(authChain...)
	departments.Use(middleware.RequireCompany())
	{
		departments.GET("", h.GetAll)
		departments.GET("/mine", h.Mine)
		departments.GET("/:id", h.GetByID)
		departments.GET("/:id/members", h.Members)

		departments.POST("", middleware.RateLimitByUser(0.5, 3), companyAdmin, h.Create)
		departments.PUT("/:id", middleware.RateLimitByUser(0.5, 3), companyAdmin, h.Update)
		departments.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), companyAdmin, h.Delete)
		departments.POST("/:id/members", companyAdmin, h.AddMember)
		departments.DELETE("/:id/members/:userId", companyAdmin, h.RemoveMember)
	}
}
