// Package logger is the structured logging entry point, built on
// log/slog. Handlers are picked at init: human-readable text in
// development, JSON in production, optionally teed into MongoDB when
// MONGO_LOG_URI is set.
//
// WithCtx returns a logger pre-tagged with the request id, so handler
// code gets correlated lines for free:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", order.ID)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/charvi/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler
	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	if uri := config.Get("MONGO_LOG_URI", ""); uri != "" {
		sink, err := NewMongoHandler(uri,
			config.Get("MONGO_LOG_DB", "charvi"),
			config.Get("MONGO_LOG_COLLECTION", "logs"),
		)
		if err != nil {
			slog.Warn("logger: mongo handler disabled", "error", err)
		} else {
			handler = NewMultiHandler(handler, sink)
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

type ctxKey struct{}

// InjectLogger stores a request-scoped logger in ctx. The Logger
// middleware calls this after tagging the logger with the request id.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// WithCtx returns the request-scoped logger from ctx, or the base logger
// when none was injected.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Debug, Info, Warn and Error log through the base logger.

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
