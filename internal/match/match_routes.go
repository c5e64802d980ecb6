package match

import (
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authChain ...gin.HandlerFunc) {
	matches := r.Group("/matches")
	matches.Use(authChain...)
	{
		matches.POST("", middleware.RateLimitByUser(0.2, 3), h.Request)
		matches.GET("", h.List)
		matches.GET("/suggestions", h.Suggestions)
		matches.GET("/quality", middleware.RoleMiddleware(middleware.RoleAdmin), h.QualityStats)
		matches.GET("/:id", h.GetByID)
		matches.POST("/:id/respond", h.Respond)
		matches.GET("/:id/chat", h.Chat)
		matches.POST("/:id/feedback", h.SubmitFeedback)
		matches.GET("/:id/feedback", h.Feedback)
		matches.GET("/:id/starters", h.Starters)
		matches.GET("/:id/meetings", h.MatchMeetings)
		matches.POST("/:id/meetings", middleware.RateLimitByUser(0.5, 5), h.ScheduleMeeting)
		matches.GET("/:id/time-slots", h.TimeSlots)
	}

	meetings := r.Group("/meetings")
	meetings.Use(authChain...)
	{
		meetings.GET("/upcoming", h.UpcomingMeetings)
		meetings.PUT("/:id/reschedule", h.RescheduleMeeting)
		meetings.POST("/:id/cancel", h.CancelMeeting)
		meetings.POST("/:id/start", h.StartMeeting)
		meetings.POST("/:id/complete", h.CompleteMeeting)
	}
}
