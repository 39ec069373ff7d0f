package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aldonunez05/sb-hacks/internal/logger"
)

// Logging writes one access log record per request.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

func (l *Logging) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			l.logger.Error("http request failed", args...)
		case status >= http.StatusBadRequest:
			l.logger.Info("http request rejected", args...)
		default:
			l.logger.Info("http request completed", args...)
		}
	}
}
