package auth

import (
	"net/http"
	"strings"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

// NewHandler builds the auth handler. secureCookie should be true in production.
func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookie: secureCookie, logger: l}
}

func isWebClient(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("X-Client-Type"), "web")
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("auth request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) setCookies(c *gin.Context, tokens TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookie, tokens.AccessToken, int(AccessTokenTTL.Seconds()), "/", "", h.secureCookie, true)
	c.SetCookie(refreshCookie, tokens.RefreshToken, int(RefreshTokenTTL.Seconds()), "/", "", h.secureCookie, true)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if isWebClient(c) {
		h.setCookies(c, res.TokenPair)
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if isWebClient(c) {
		h.setCookies(c, res.TokenPair)
	}
	response.Success(c, http.StatusOK, res, nil)
}

// Refresh reads the refresh token from the cookie for web clients and from
// the body otherwise.
func (h *Handler) Refresh(c *gin.Context) {
	var token string
	if isWebClient(c) {
		token, _ = c.Cookie(refreshCookie)
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
		token = req.RefreshToken
	}
	if token == "" {
		h.writeServiceError(c, apperror.RequiredField("refresh_token"))
		return
	}

	res, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if isWebClient(c) {
		h.setCookies(c, res.TokenPair)
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookie, "", -1, "/", "", h.secureCookie, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}
