package middleware

import (
	"strconv"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger copies request metadata set by RequestID and AuthMiddleware
// into the request context together with a logger carrying the same fields.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = c.GetString("request_id")
			ctx = contextutil.WithRequestID(ctx, rid)
		}

		if uid := c.GetInt64("user_id"); uid > 0 {
			ctx = contextutil.WithUserID(ctx, strconv.FormatInt(uid, 10))
		}
		if cid := c.GetInt64("company_id"); cid > 0 {
			ctx = contextutil.WithCompanyID(ctx, strconv.FormatInt(cid, 10))
		}

		reqLogger := logger.With(contextutil.ExtractMetadata(ctx).Fields()...)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
