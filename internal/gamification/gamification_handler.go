package gamification

import (
	"net/http"
	"strconv"

	gamificationerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/gamification/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("gamification.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gamification.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("gamification request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func queryLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLeaderboardLimit)))
	return limit
}

func (h *Handler) Leaderboard(c *gin.Context) {
	entries, err := h.service.Leaderboard(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries, nil)
}

func (h *Handler) TopPerformers(c *gin.Context) {
	activity := ActivityType(c.Param("activity"))
	entries, err := h.service.TopPerformers(c.Request.Context(), activity, queryLimit(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries, nil)
}

func (h *Handler) MyRank(c *gin.Context) {
	rank, err := h.service.UserRank(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rank": rank}, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, nil)
}

func (h *Handler) ListBadges(c *gin.Context) {
	badges, err := h.service.ListBadges(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, badges, nil)
}

func (h *Handler) BadgeProgress(c *gin.Context) {
	progress, err := h.service.BadgeProgress(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, progress, nil)
}

func (h *Handler) RecordActivity(c *gin.Context) {
	var req RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.RecordActivity(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result, nil)
}

func (h *Handler) AwardBadge(c *gin.Context) {
	badgeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, gamificationerrors.ErrInvalidBadgeID)
		return
	}

	var req AwardBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ub, err := h.service.AwardBadge(c.Request.Context(), req.UserID, badgeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ub, nil)
}

func (h *Handler) AcknowledgeBadges(c *gin.Context) {
	updated, err := h.service.AcknowledgeBadges(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated}, nil)
}
