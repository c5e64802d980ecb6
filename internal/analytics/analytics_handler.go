package analytics

import (
	"net/http"
	"strconv"
	"time"

	analyticserrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/analytics/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("analytics request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) Overview(c *gin.Context) {
	res, err := h.svc.Overview(c.Request.Context(), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// Rollup recomputes one day, yesterday unless ?date=YYYY-MM-DD is given.
func (h *Handler) Rollup(c *gin.Context) {
	date := time.Now().AddDate(0, 0, -1)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("date", "must be YYYY-MM-DD"))
			return
		}
		date = parsed
	}
	res, err := h.svc.RollupDay(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) MetricSeries(c *gin.Context) {
	var q SeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.MetricSeries(c.Request.Context(), c.GetInt64("company_id"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) AvailableMetrics(c *gin.Context) {
	res, err := h.svc.AvailableMetrics(c.Request.Context(), c.GetInt64("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CompanySnapshot(c *gin.Context) {
	res, err := h.svc.CompanySnapshot(c.Request.Context(), c.GetInt64("company_id"), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) RecordMetric(c *gin.Context) {
	var req RecordMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.RecordMetric(c.Request.Context(), c.GetInt64("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) MyStats(c *gin.Context) {
	res, err := h.svc.UserStats(c.Request.Context(), c.GetInt64("user_id"), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) TrackBehavior(c *gin.Context) {
	var req TrackBehaviorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if err := h.svc.TrackBehavior(c.Request.Context(), c.GetInt64("user_id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *Handler) TrackBatch(c *gin.Context) {
	var req TrackBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	n, err := h.svc.TrackBatch(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"tracked": n}, nil)
}

func (h *Handler) RecordInteraction(c *gin.Context) {
	var req RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if err := h.svc.RecordInteraction(c.Request.Context(), c.GetInt64("user_id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *Handler) Insights(c *gin.Context) {
	filter := InsightFilter{
		Status: c.Query("status"),
		Type:   InsightType(c.Query("type")),
	}
	res, err := h.svc.Insights(c.Request.Context(), c.GetInt64("user_id"), filter, time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GenerateInsights(c *gin.Context) {
	res, err := h.svc.GenerateInsights(c.Request.Context(), c.GetInt64("user_id"), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) MarkInsightRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, analyticserrors.ErrInvalidID)
		return
	}
	res, err := h.svc.MarkInsightRead(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) MarkInsightActioned(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, analyticserrors.ErrInvalidID)
		return
	}
	res, err := h.svc.MarkInsightActioned(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) AddInsightFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, analyticserrors.ErrInvalidID)
		return
	}
	var req InsightFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.AddInsightFeedback(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
