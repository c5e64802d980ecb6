package bootstrap_test

import (
	"context"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func (r *recordingAudit) last() bootstrap.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[len(r.entries)-1]
}

func healthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func waitServe(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
		return nil
	}
}

func TestServe_DrainsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	audit := &recordingAudit{}
	hookRan := make(chan struct{})
	cfg := bootstrap.ServerConfig{Env: "test", ReadTimeout: time.Second, WriteTimeout: time.Second, ShutdownTimeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- bootstrap.Serve(ctx, ln, healthRouter(), cfg, audit, func() { close(hookRan) })
	}()

	res, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	require.NoError(t, waitServe(t, done))

	select {
	case <-hookRan:
	default:
		t.Fatal("shutdown hook did not run")
	}
	assert.Equal(t, []string{"API_STARTED", "API_DRAINING", "API_STOPPED"}, audit.actions())

	stopped := audit.last()
	assert.Equal(t, bootstrap.ServiceName, stopped.Meta["service"])
	assert.Equal(t, "signal", stopped.Meta["reason"])
	assert.Equal(t, true, stopped.Meta["drained"])
}

func TestServe_ListenerFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	audit := &recordingAudit{}
	done := make(chan error, 1)
	go func() {
		done <- bootstrap.Serve(context.Background(), ln, healthRouter(), bootstrap.ServerConfig{Env: "test"}, audit)
	}()

	assert.Error(t, waitServe(t, done))
	assert.Equal(t, []string{"API_STARTED", "API_DRAINING", "API_STOPPED"}, audit.actions())
	assert.Equal(t, "listener_failed", audit.last().Meta["reason"])
}
