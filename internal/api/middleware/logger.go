package middleware

import (
	"time"

	"sheetsync/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger writes one access line per request through the service logger.
// Server errors are logged at error level so they show with LOG_LEVEL=error.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		line := "%s %s %d %s %s"
		args := []interface{}{c.Request.Method, path, status, time.Since(start), c.ClientIP()}
		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			line += " %s"
			args = append(args, msg)
		}

		if status >= 500 {
			log.Error(line, args...)
		} else {
			log.Info(line, args...)
		}
	}
}
