package logmodule

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestGinrusLogsRequest(t *testing.T) {
	logger, hook := test.NewNullLogger()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(RequestIDKey, "req-1")
	})
	router.Use(GinrusWithLogger(logger, "API"))
	router.GET("/api/states", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"type": "FeatureCollection"})
	})

	req := httptest.NewRequest("GET", "/api/states", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.Len(t, hook.Entries, 1) {
		entry := hook.LastEntry()
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "API", entry.Data["prefix"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
		assert.Equal(t, "/api/states", entry.Data["path"])
		assert.Equal(t, "GET", entry.Data["method"])
		assert.Equal(t, "req-1", entry.Data[RequestIDKey])
	}
}

func TestGinrusLogsErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinrusWithLogger(logger, "API"))
	router.GET("/api/states", func(c *gin.Context) {
		c.Error(errors.New("open data/india-states-detailed.geojson: no such file or directory"))
		c.AbortWithStatus(http.StatusInternalServerError)
	})

	req := httptest.NewRequest("GET", "/api/states", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if assert.Len(t, hook.Entries, 1) {
		entry := hook.LastEntry()
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Contains(t, entry.Message, "no such file or directory")
		_, ok := entry.Data[RequestIDKey]
		assert.False(t, ok)
	}
}
