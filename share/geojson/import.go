package geojson

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/boundary-api/schema"
)

const importLogPrefix = "import"

// NewBoundaryRecord validates the content of a boundary file and wraps it as a record
func NewBoundaryRecord(layer, geoJSONFile string, data []byte) (*schema.BoundaryRecord, error) {
	if _, err := schema.DecodeBoundary(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("invalid geojson file %s: %w", geoJSONFile, err)
	}

	return &schema.BoundaryRecord{
		Layer:      layer,
		Source:     geoJSONFile,
		ImportedAt: time.Now().UTC(),
		Document:   string(data),
	}, nil
}

// ImportBoundary stores a GeoJSON file as the document of a boundary layer.
// An existing document of the same layer is replaced.
func ImportBoundary(ctx context.Context, client *mongo.Client, dbName, layer, geoJSONFile string) error {
	data, err := ioutil.ReadFile(geoJSONFile)
	if err != nil {
		return err
	}

	record, err := NewBoundaryRecord(layer, geoJSONFile, data)
	if err != nil {
		return err
	}

	if _, err := client.Database(dbName).Collection(schema.BoundaryDocumentCollection).ReplaceOne(
		ctx,
		bson.M{"_id": layer},
		record,
		options.Replace().SetUpsert(true),
	); err != nil {
		return err
	}

	log.WithField("prefix", importLogPrefix).Infof("imported boundary %s from %s (%d bytes)", layer, geoJSONFile, len(data))
	return nil
}

// ImportBoundaries imports every layer of a layer -> file mapping
func ImportBoundaries(ctx context.Context, client *mongo.Client, dbName string, layers map[string]string) error {
	for layer, file := range layers {
		if err := ImportBoundary(ctx, client, dbName, layer, file); err != nil {
			return fmt.Errorf("import boundary %s: %w", layer, err)
		}
	}
	return nil
}
