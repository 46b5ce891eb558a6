package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key of the request id
const RequestIDKey = "request_id"

// Ginrus returns a gin middleware writing one logrus entry per request
func Ginrus(prefix string) gin.HandlerFunc {
	return GinrusWithLogger(logrus.StandardLogger(), prefix)
}

// GinrusWithLogger - same as Ginrus with a given logger
func GinrusWithLogger(logger *logrus.Logger, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"prefix":     prefix,
			"status":     status,
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency":    time.Since(start),
			"user-agent": c.Request.UserAgent(),
			"size":       c.Writer.Size(),
		})
		if requestID := c.GetString(RequestIDKey); requestID != "" {
			entry = entry.WithField(RequestIDKey, requestID)
		}

		switch {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.String())
		case status >= 500:
			entry.Warn()
		default:
			entry.Info()
		}
	}
}
