package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitmark-inc/boundary-api/logmodule"
)

const (
	requestIDHeader     = "X-Request-ID"
	districtsPathPrefix = "/api/districts/"
)

// requestIDMiddleware keeps the client request id or generates a new one
func requestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	c.Set(logmodule.RequestIDKey, requestID)
	c.Header(requestIDHeader, requestID)
	c.Next()
}

// metricsMiddleware counts requests and their latency by route template and status
func (s *Server) metricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}

	scope := s.metrics.Tagged(map[string]string{
		"route":  route,
		"method": c.Request.Method,
		"status": strconv.Itoa(c.Writer.Status()),
	})
	scope.Counter("requests").Inc(1)
	scope.Timer("latency").Record(time.Since(start))
}

// allowAnyOriginMiddleware sets the allow origin header on every response,
// including requests without an Origin header and same host requests
func allowAnyOriginMiddleware(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Next()
}

// noRoute answers any unmatched path below /api/districts/ (e.g. "Kerala/")
// with the unknown state body
func noRoute(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, districtsPathPrefix) {
		abortWithEncoding(c, http.StatusNotFound, errorStateNotFound)
	}
}
