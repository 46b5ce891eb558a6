package api

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/bitmark-inc/boundary-api/store BoundaryStore

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/boundary-api/store"
)

// getStates returns the state boundaries
func (s *Server) getStates(c *gin.Context) {
	doc, err := s.store.States(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, doc.Content)
}

// getDistricts returns the district boundaries of the state given in the path.
// The state name is only lowercased before the lookup.
func (s *Server) getDistricts(c *gin.Context) {
	doc, err := s.store.Districts(c.Request.Context(), c.Param("stateName"))
	if errors.Is(err, store.ErrStateNotFound) {
		abortWithEncoding(c, http.StatusNotFound, errorStateNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, doc.Content)
}
