package bootstrap_test

import (
	"context"
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/bootstrap"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := bootstrap.NewZapAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "SERVER_STOPPED",
		Message: "server stopped",
		Meta:    map[string]any{"port": "8080"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	assert.Equal(t, "server stopped", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "SERVER_STOPPED", fields["action"])
	assert.Contains(t, fields, "meta")
}

func TestZapAuditLogger_OmitsEmptyMeta(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := bootstrap.NewZapAuditLogger(zap.New(core))

	audit.Log(context.Background(), bootstrap.AuditLog{Action: "SERVER_STARTED", Message: "server started"})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "meta")
	assert.NotContains(t, fields, "request_id")
}
