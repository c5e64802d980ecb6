package mentorship

import (
	"net/http"
	"strconv"
	"time"

	mentorshiperrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/mentorship/errors"
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
	l := zap.L().Named("mentorship.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mentorship.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("mentorship request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) ListPrograms(c *gin.Context) {
	res, err := h.svc.ListPrograms(c.Request.Context(), c.GetInt64("company_id"), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetProgram(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, mentorshiperrors.ErrInvalidID)
		return
	}
	res, err := h.svc.GetProgram(c.Request.Context(), c.GetInt64("company_id"), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CreateProgram(c *gin.Context) {
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.CreateProgram(c.Request.Context(), c.GetInt64("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Relationships(c *gin.Context) {
	res, err := h.svc.Relationships(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) RequestMentorship(c *gin.Context) {
	var req CreateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.RequestMentorship(c.Request.Context(), c.GetInt64("company_id"), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateRelationshipStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, mentorshiperrors.ErrInvalidID)
		return
	}
	var req RelationshipStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.UpdateRelationshipStatus(c.Request.Context(), id, c.GetInt64("user_id"), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) AddFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, mentorshiperrors.ErrInvalidID)
		return
	}
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.AddFeedback(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Sessions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, mentorshiperrors.ErrInvalidID)
		return
	}
	res, err := h.svc.Sessions(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ScheduleSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, mentorshiperrors.ErrInvalidID)
		return
	}
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.ScheduleSession(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateSessionStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, mentorshiperrors.ErrInvalidID)
		return
	}
	var req SessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.UpdateSessionStatus(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	res, err := h.svc.Summary(c.Request.Context(), c.GetInt64("user_id"), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
