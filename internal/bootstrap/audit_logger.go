package bootstrap

import (
	"context"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	"go.uber.org/zap"
)

// ZapAuditLogger writes audit entries as structured log lines on the "audit" logger.
type ZapAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapAuditLogger(logger ...*zap.Logger) *ZapAuditLogger {
	base := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		base = logger[0]
	}
	return &ZapAuditLogger{logger: base.Named("audit"), now: time.Now}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := append(contextutil.ExtractMetadata(ctx).Fields(),
		zap.Time("at", l.now().UTC()),
		zap.String("action", entry.Action),
	)
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	l.logger.Info(entry.Message, fields...)
}
