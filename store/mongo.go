package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/boundary-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

type mongoDB struct {
	client   *mongo.Client
	database string
	registry Registry
}

// NewMongoStore returns a boundary store reading documents imported by import-boundary.
// The registry still decides which states exist.
func NewMongoStore(client *mongo.Client, database string, registry Registry) BoundaryStore {
	return &mongoDB{
		client:   client,
		database: database,
		registry: registry,
	}
}

func (m *mongoDB) States(ctx context.Context) (*schema.BoundaryDocument, error) {
	return m.findBoundary(ctx, schema.StatesLayer)
}

func (m *mongoDB) Districts(ctx context.Context, stateName string) (*schema.BoundaryDocument, error) {
	layer, _, err := m.registry.DistrictsSource(stateName)
	if err != nil {
		return nil, err
	}
	return m.findBoundary(ctx, layer)
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m *mongoDB) findBoundary(ctx context.Context, layer string) (*schema.BoundaryDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var record schema.BoundaryRecord
	c := m.client.Database(m.database).Collection(schema.BoundaryDocumentCollection)
	if err := c.FindOne(ctx, bson.M{"_id": layer}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %s", ErrBoundaryNotImported, layer)
		}
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("found boundary %s imported at %s", layer, record.ImportedAt)

	content, err := schema.DecodeBoundary(strings.NewReader(record.Document))
	if err != nil {
		return nil, err
	}

	return &schema.BoundaryDocument{
		Layer:   layer,
		Source:  record.Source,
		Content: content,
	}, nil
}
