package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
)

// RequestLogger logs every HTTP request with a short request id that is
// echoed back in the X-Request-ID header.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()[:8]
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		log := pkglogger.GetLogger()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP())

		if userID := GetUserID(c); userID != "" {
			event.Str("user_id", userID)
		}
		if len(c.Errors) > 0 {
			event.Str("errors", c.Errors.String())
		}

		event.Msg("request")
	}
}
