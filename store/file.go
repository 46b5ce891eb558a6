package store

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/boundary-api/schema"
)

const fileLogPrefix = "store"

type fileStore struct {
	registry Registry
}

// NewFileStore returns a boundary store reading the registry files on every call
func NewFileStore(registry Registry) BoundaryStore {
	return &fileStore{
		registry: registry,
	}
}

func (f *fileStore) States(ctx context.Context) (*schema.BoundaryDocument, error) {
	return readBoundaryFile(schema.StatesLayer, f.registry.StatesSource())
}

func (f *fileStore) Districts(ctx context.Context, stateName string) (*schema.BoundaryDocument, error) {
	layer, file, err := f.registry.DistrictsSource(stateName)
	if err != nil {
		return nil, err
	}
	return readBoundaryFile(layer, file)
}

// Ping - every configured file has to exist
func (f *fileStore) Ping() error {
	for layer, file := range f.registry.Layers() {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("boundary %s: %w", layer, err)
		}
	}
	return nil
}

func (f *fileStore) Close() {}

func readBoundaryFile(layer, file string) (*schema.BoundaryDocument, error) {
	log.WithField("prefix", fileLogPrefix).Debugf("read boundary %s from %s", layer, file)

	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	content, err := schema.DecodeBoundary(r)
	if err != nil {
		return nil, fmt.Errorf("parse boundary file %s: %w", file, err)
	}

	return &schema.BoundaryDocument{
		Layer:   layer,
		Source:  file,
		Content: content,
	}, nil
}
