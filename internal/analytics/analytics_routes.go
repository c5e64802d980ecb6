package analytics

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authChain ...gin.HandlerFunc) {
	admin := middleware.RoleMiddleware(middleware.RoleAdmin)
	companyAdmin := middleware.RoleMiddleware(middleware.RoleCorporateAdmin, middleware.RoleAdmin)

	a := r.Group("/analytics")
	a.Use(authChain...)
	{
		a.GET("/overview", admin, h.Overview)
		a.POST("/rollup", admin, h.Rollup)

		a.GET("/me", h.MyStats)
		a.POST("/behaviors", middleware.RateLimitByUser(5, 20), h.TrackBehavior)
		a.POST("/behaviors/batch", middleware.RateLimitByUser(1, 5), h.TrackBatch)
		a.POST("/interactions", middleware.RateLimitByUser(5, 20), h.RecordInteraction)

		a.GET("/insights", h.Insights)
		a.POST("/insights/generate", middleware.RateLimitByUser(0.1, 2), h.GenerateInsights)
		a.PUT("/insights/:id/read", h.MarkInsightRead)
		a.PUT("/insights/:id/actioned", h.MarkInsightActioned)
		a.POST("/insights/:id/feedback", h.AddInsightFeedback)

		company := a.Group("/company", middleware.RequireCompany())
		company.GET("/metrics", h.MetricSeries)
		company.GET("/metrics/available", h.AvailableMetrics)
		company.GET("/snapshot", h.CompanySnapshot)
		company.POST("/metrics", companyAdmin, h.RecordMetric)
	}
}
