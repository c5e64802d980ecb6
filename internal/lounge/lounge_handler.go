package lounge

import (
	"net/http"
	"strconv"
	"time"

	loungeerrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/lounge/errors"
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
	l := zap.L().Named("lounge.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lounge.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("lounge request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func loungeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Query:     c.Query("q"),
		Topic:     c.Query("topic"),
		Category:  c.Query("category"),
		Tag:       c.Query("tag"),
		Featured:  c.Query("featured") == "true",
		WithSpace: c.Query("available") == "true",
	}
	res, err := h.svc.List(c.Request.Context(), c.GetInt64("user_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	res, err := h.svc.Mine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := loungeID(c)
	if !ok {
		h.writeServiceError(c, loungeerrors.ErrInvalidLoungeID)
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLoungeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Join(c *gin.Context) {
	id, ok := loungeID(c)
	if !ok {
		h.writeServiceError(c, loungeerrors.ErrInvalidLoungeID)
		return
	}
	res, err := h.svc.Join(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Leave(c *gin.Context) {
	id, ok := loungeID(c)
	if !ok {
		h.writeServiceError(c, loungeerrors.ErrInvalidLoungeID)
		return
	}
	if err := h.svc.Leave(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Participants(c *gin.Context) {
	id, ok := loungeID(c)
	if !ok {
		h.writeServiceError(c, loungeerrors.ErrInvalidLoungeID)
		return
	}
	res, err := h.svc.Participants(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Messages(c *gin.Context) {
	id, ok := loungeID(c)
	if !ok {
		h.writeServiceError(c, loungeerrors.ErrInvalidLoungeID)
		return
	}

	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeServiceError(c, apperror.New(apperror.CodeInvalidInput, "since must be an RFC3339 timestamp", http.StatusBadRequest))
			return
		}
		since = &t
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	res, err := h.svc.Messages(c.Request.Context(), id, c.GetInt64("user_id"), since, limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) SendMessage(c *gin.Context) {
	id, ok := loungeID(c)
	if !ok {
		h.writeServiceError(c, loungeerrors.ErrInvalidLoungeID)
		return
	}
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.SendMessage(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Close(c *gin.Context) {
	id, ok := loungeID(c)
	if !ok {
		h.writeServiceError(c, loungeerrors.ErrInvalidLoungeID)
		return
	}
	if err := h.svc.Close(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
