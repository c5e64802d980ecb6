package match

import (
	"net/http"
	"strconv"

	matcherrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/match/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc      Service
	meetings MeetingService
	logger   *zap.Logger
}

func NewHandler(service Service, meetings MeetingService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("match.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("match.handler")
	}
	return &Handler{svc: service, meetings: meetings, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("match request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

func (h *Handler) Request(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.Request(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) List(c *gin.Context) {
	status := Status(c.Query("status"))
	if status != "" && !status.Valid() {
		h.writeServiceError(c, apperror.New(apperror.CodeInvalidInput, "invalid match status", http.StatusBadRequest))
		return
	}
	res, err := h.svc.List(c.Request.Context(), c.GetInt64("user_id"), status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Suggestions(c *gin.Context) {
	res, err := h.svc.Suggestions(c.Request.Context(), c.GetInt64("user_id"), queryInt(c, "limit"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) QualityStats(c *gin.Context) {
	res, err := h.svc.QualityStats(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Respond(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.Respond(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Chat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	res, err := h.svc.Chat(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) SubmitFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.svc.SubmitFeedback(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Feedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	res, err := h.svc.Feedback(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Starters(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	res, err := h.svc.Starters(c.Request.Context(), id, c.GetInt64("user_id"), queryInt(c, "limit"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ScheduleMeeting(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	var req ScheduleMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.meetings.Schedule(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) MatchMeetings(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	res, err := h.meetings.ForMatch(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) TimeSlots(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMatchID)
		return
	}
	res, err := h.meetings.SuggestTimes(c.Request.Context(), id, c.GetInt64("user_id"), queryInt(c, "duration"), queryInt(c, "count"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpcomingMeetings(c *gin.Context) {
	res, err := h.meetings.Upcoming(c.Request.Context(), c.GetInt64("user_id"), queryInt(c, "days"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) RescheduleMeeting(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMeetingID)
		return
	}
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	res, err := h.meetings.Reschedule(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CancelMeeting(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMeetingID)
		return
	}
	var req MeetingNoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}
	if err := h.meetings.Cancel(c.Request.Context(), id, c.GetInt64("user_id"), req.Notes); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) StartMeeting(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMeetingID)
		return
	}
	res, err := h.meetings.Start(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CompleteMeeting(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.writeServiceError(c, matcherrors.ErrInvalidMeetingID)
		return
	}
	var req MeetingNoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}
	res, err := h.meetings.Complete(c.Request.Context(), id, c.GetInt64("user_id"), req.Notes)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
