package api

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/boundary-api/logmodule"
	"github.com/bitmark-inc/boundary-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.BoundaryStore

	// request metrics
	metrics tally.Scope
}

// NewServer new instance of server
func NewServer(boundaryStore store.BoundaryStore, metrics tally.Scope) *Server {
	if metrics == nil {
		metrics = tally.NoopScope
	}

	return &Server{
		store:   boundaryStore,
		metrics: metrics,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.setupRouter(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	// state names are matched as given, "odisha/" is not "odisha"
	r.RedirectTrailingSlash = false
	r.UseRawPath = true

	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(requestIDMiddleware)
	r.Use(s.metricsMiddleware)

	// browser clients are served from another origin
	r.Use(allowAnyOriginMiddleware)
	r.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders:   []string{"Content-Length", requestIDHeader},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.GET("/states", s.getStates)
		apiRoute.HEAD("/states", s.getStates)
		apiRoute.GET("/districts/", s.getDistricts)
		apiRoute.HEAD("/districts/", s.getDistricts)
		apiRoute.GET("/districts/:stateName", s.getDistricts)
		apiRoute.HEAD("/districts/:stateName", s.getDistricts)
	}

	r.GET("/healthz", s.healthz)
	r.NoRoute(noRoute)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	sentry.CaptureException(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
