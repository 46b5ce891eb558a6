package store

import (
	"context"
	"errors"

	"github.com/bitmark-inc/boundary-api/schema"
)

var (
	ErrStateNotFound       = errors.New("state data not found")
	ErrBoundaryNotImported = errors.New("boundary document not imported")
	ErrUnknownDriver       = errors.New("unknown boundary store driver")
)

// BoundaryStore - read access to boundary documents
type BoundaryStore interface {
	States(ctx context.Context) (*schema.BoundaryDocument, error)
	Districts(ctx context.Context, stateName string) (*schema.BoundaryDocument, error)
	Pinger
	Closer
}

// Closer - close the underlying storage
type Closer interface {
	Close()
}

// Pinger - check the underlying storage
type Pinger interface {
	Ping() error
}

// Registry resolves a boundary layer to its source file
type Registry struct {
	states    string
	districts map[string]string
}

// NewRegistry returns a registry keyed by normalized state name
func NewRegistry(statesFile string, districtFiles map[string]string) Registry {
	districts := make(map[string]string, len(districtFiles))
	for state, file := range districtFiles {
		districts[schema.NormalizeStateName(state)] = file
	}

	return Registry{
		states:    statesFile,
		districts: districts,
	}
}

// StatesSource - file of the state boundaries
func (r Registry) StatesSource() string {
	return r.states
}

// DistrictsSource returns the layer key and file of the district boundaries of a state
func (r Registry) DistrictsSource(stateName string) (string, string, error) {
	state := schema.NormalizeStateName(stateName)
	file, ok := r.districts[state]
	if !ok {
		return "", "", ErrStateNotFound
	}
	return schema.DistrictsLayer(state), file, nil
}

// Layers returns every configured layer with its file
func (r Registry) Layers() map[string]string {
	layers := map[string]string{
		schema.StatesLayer: r.states,
	}
	for state, file := range r.districts {
		layers[schema.DistrictsLayer(state)] = file
	}
	return layers
}
