package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"tekimax.app/docs/common/logger"
)

// Logger writes one line per request. Query strings are left out since the
// auth callback carries codes in them.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.ErrorContext(ctx, "request failed", attrs...)
		case status >= 400:
			slog.WarnContext(ctx, "request error", attrs...)
		default:
			slog.InfoContext(ctx, "request", attrs...)
		}
	}
}

// TraceHeader echoes the request's trace id so clients can quote it in bug reports.
func TraceHeader(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if traceID := logger.TraceID(c.Request.Context()); traceID != "" && name != "" {
			c.Header(name, traceID)
		}
		c.Next()
	}
}
