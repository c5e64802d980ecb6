package subscription

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authChain ...gin.HandlerFunc) {
	companyAdmin := middleware.RoleMiddleware(middleware.RoleCorporateAdmin, middleware.RoleAdmin)

	subs := r.Group("/subscriptions")
	subs.Use(authChain...)
	{
		subs.GET("/plans", h.Plans)

		scoped := subs.Group("", middleware.RequireCompany())
		scoped.GET("/current", h.Current)
		scoped.GET("/can-upgrade/:plan", h.CanUpgrade)
		scoped.GET("/payments", companyAdmin, h.Payments)
		scoped.GET("/history", companyAdmin, h.History)
		scoped.POST("", companyAdmin, h.Create)
		scoped.PUT("/plan", companyAdmin, h.ChangePlan)
		scoped.POST("/cancel", companyAdmin, h.Cancel)
		scoped.POST("/reactivate", companyAdmin, h.Reactivate)
	}
}
