package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/logger"
)

// RequestLogger logs one record per request after the handler chain ran.
func RequestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		log := l
		if last := c.Errors.Last(); last != nil {
			log = l.WithError(last.Err)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request", attrs...)
		case status >= 400:
			log.Warn("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}
