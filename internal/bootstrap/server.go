package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ServiceName tags the audit trail written by the API process.
const ServiceName = "water-cooler-network-api"

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// StartHTTPServer serves the API on cfg.Port until SIGINT or SIGTERM.
func StartHTTPServer(handler http.Handler, cfg ServerConfig, auditLogger AuditLogger, onShutdown ...func()) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		zap.L().Fatal("api listen failed", zap.String("port", cfg.Port), zap.Error(err))
	}
	if err := Serve(ctx, ln, handler, cfg, auditLogger, onShutdown...); err != nil {
		zap.L().Error("api stopped with error", zap.Error(err))
	}
}

// Serve runs the API on ln until ctx ends or the listener fails, then drains
// in-flight requests for up to cfg.ShutdownTimeout. onShutdown hooks run after
// the drain, so workers and pools close once no handler can reach them.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg ServerConfig, auditLogger AuditLogger, onShutdown ...func()) error {
	log := zap.L().Named("server")
	addr := ln.Addr().String()
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	log.Info("api listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	auditLogger.Log(ctx, AuditLog{
		Action:  "API_STARTED",
		Message: "water cooler api accepting requests",
		Meta: map[string]any{
			"service":          ServiceName,
			"addr":             addr,
			"env":              cfg.Env,
			"read_timeout_ms":  cfg.ReadTimeout.Milliseconds(),
			"write_timeout_ms": cfg.WriteTimeout.Milliseconds(),
		},
	})

	reason := "signal"
	var listenErr error
	select {
	case <-ctx.Done():
	case listenErr = <-serveErr:
		reason = "listener_failed"
		log.Error("api listener failed", zap.String("addr", addr), zap.Error(listenErr))
	}

	auditLogger.Log(context.Background(), AuditLog{
		Action:  "API_DRAINING",
		Message: "draining in-flight api requests",
		Meta: map[string]any{
			"service":    ServiceName,
			"reason":     reason,
			"timeout_ms": timeout.Milliseconds(),
		},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	started := time.Now()
	drainErr := server.Shutdown(shutdownCtx)
	if drainErr != nil {
		log.Error("api drain cut short", zap.Duration("timeout", timeout), zap.Error(drainErr))
	} else {
		log.Info("api drained", zap.Duration("took", time.Since(started)))
	}

	for _, fn := range onShutdown {
		fn()
	}

	auditLogger.Log(context.Background(), AuditLog{
		Action:  "API_STOPPED",
		Message: "water cooler api stopped",
		Meta: map[string]any{
			"service":  ServiceName,
			"reason":   reason,
			"drained":  drainErr == nil,
			"drain_ms": time.Since(started).Milliseconds(),
		},
	})

	if listenErr != nil && !errors.Is(listenErr, http.ErrServerClosed) {
		return listenErr
	}
	return drainErr
}
