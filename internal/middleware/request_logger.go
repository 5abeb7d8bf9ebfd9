package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/bhumicrm/bhumi-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request through the global slog logger, tagged
// with the authenticated user when the auth middleware ran first.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		// Health probes and swagger assets are noise
		if path == "/api/v1/health" || strings.HasPrefix(path, "/swagger/") {
			return
		}

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", latency),
		}

		if userID, exists := c.Get("userID"); exists {
			attrs = append(attrs, slog.Any("user_id", userID))
		}
		if role, exists := c.Get("userRole"); exists {
			attrs = append(attrs, slog.Any("role", role))
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			attrs = append(attrs, slog.String("error", errs))
		}

		msg := "Request"
		switch {
		case status >= 500:
			logger.Log.Error(msg, attrs...)
		case status >= 400:
			logger.Log.Warn(msg, attrs...)
		default:
			logger.Log.Info(msg, attrs...)
		}
	}
}
