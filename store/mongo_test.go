package store

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/boundary-api/schema"
	"github.com/bitmark-inc/boundary-api/share/geojson"
)

type MongoStoreTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	dir          string
	registry     Registry
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewMongoStoreTestSuite(connURI, dbName string) *MongoStoreTestSuite {
	return &MongoStoreTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MongoStoreTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	dir, err := ioutil.TempDir("", "boundary-mongo")
	if err != nil {
		s.T().Fatal(err)
	}
	s.dir = dir

	statesFile := filepath.Join(dir, "states.geojson")
	districtsFile := filepath.Join(dir, "odisha.geojson")
	if err := ioutil.WriteFile(statesFile, []byte(testStatesBoundary), 0600); err != nil {
		s.T().Fatal(err)
	}
	if err := ioutil.WriteFile(districtsFile, []byte(testDistrictsBoundary), 0600); err != nil {
		s.T().Fatal(err)
	}

	s.registry = NewRegistry(statesFile, map[string]string{"odisha": districtsFile})

	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures imports the boundary files of the test registry
func (s *MongoStoreTestSuite) LoadMongoDBFixtures() error {
	return geojson.ImportBoundaries(context.Background(), s.mongoClient, s.testDBName, s.registry.Layers())
}

// CleanMongoDB drops the whole test database
func (s *MongoStoreTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *MongoStoreTestSuite) TearDownSuite() {
	os.RemoveAll(s.dir)
	_ = s.CleanMongoDB()
	_ = s.mongoClient.Disconnect(context.Background())
}

func (s *MongoStoreTestSuite) assertContent(expected string, doc *schema.BoundaryDocument) {
	out, err := json.Marshal(doc.Content)
	s.NoError(err)
	s.JSONEq(expected, string(out))
}

func (s *MongoStoreTestSuite) TestPing() {
	store := NewMongoStore(s.mongoClient, s.testDBName, s.registry)
	s.NoError(store.Ping())
}

func (s *MongoStoreTestSuite) TestStates() {
	store := NewMongoStore(s.mongoClient, s.testDBName, s.registry)

	doc, err := store.States(context.Background())
	s.NoError(err)
	s.Equal(schema.StatesLayer, doc.Layer)
	s.Equal(s.registry.StatesSource(), doc.Source)
	s.assertContent(testStatesBoundary, doc)
}

func (s *MongoStoreTestSuite) TestDistricts() {
	store := NewMongoStore(s.mongoClient, s.testDBName, s.registry)

	doc, err := store.Districts(context.Background(), "ODISHA")
	s.NoError(err)
	s.Equal("districts:odisha", doc.Layer)
	s.assertContent(testDistrictsBoundary, doc)

	_, err = store.Districts(context.Background(), "Kerala")
	s.Equal(ErrStateNotFound, err)
}

func (s *MongoStoreTestSuite) TestDistrictsNotImported() {
	registry := NewRegistry(s.registry.StatesSource(), map[string]string{
		"odisha": "odisha.geojson",
		"kerala": "kerala.geojson",
	})
	store := NewMongoStore(s.mongoClient, s.testDBName, registry)

	_, err := store.Districts(context.Background(), "kerala")
	s.Error(err)
	s.NotEqual(ErrStateNotFound, err)
}

func (s *MongoStoreTestSuite) TestReimportReplacesDocument() {
	updated := filepath.Join(s.dir, "states-updated.geojson")
	s.Require().NoError(ioutil.WriteFile(updated, []byte(`{"type":"FeatureCollection","features":[]}`), 0600))
	s.Require().NoError(geojson.ImportBoundary(context.Background(), s.mongoClient, s.testDBName, "states-updated", updated))
	s.Require().NoError(geojson.ImportBoundary(context.Background(), s.mongoClient, s.testDBName, "states-updated", updated))

	count, err := s.testDatabase.Collection(schema.BoundaryDocumentCollection).CountDocuments(context.Background(), map[string]string{"_id": "states-updated"})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *MongoStoreTestSuite) TestDocumentWithoutObjectRoot() {
	raw := `[{"type":"Feature","properties":{"$date":"2020-01-01"},"geometry":null}]`
	file := filepath.Join(s.dir, "array.geojson")
	s.Require().NoError(ioutil.WriteFile(file, []byte(raw), 0600))
	s.Require().NoError(geojson.ImportBoundary(context.Background(), s.mongoClient, s.testDBName, schema.DistrictsLayer("array"), file))

	registry := NewRegistry(s.registry.StatesSource(), map[string]string{"array": file})
	store := NewMongoStore(s.mongoClient, s.testDBName, registry)

	doc, err := store.Districts(context.Background(), "Array")
	s.NoError(err)
	s.assertContent(raw, doc)
}

func TestMongoStore(t *testing.T) {
	connURI := os.Getenv("BOUNDARY_TEST_MONGO")
	if connURI == "" {
		t.Skip("BOUNDARY_TEST_MONGO is not set")
	}
	suite.Run(t, NewMongoStoreTestSuite(connURI, "test-db"))
}
