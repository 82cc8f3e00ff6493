//go:build integration

// Package testutil starts the MongoDB containers used by integration tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoImage is the server image the integration suite runs against.
const MongoImage = "mongo:7.0"

// MongoDBContainer is a running MongoDB testcontainer and its connection string.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a dedicated container. Prefer GetSharedMongoDB from a TestMain.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

// SeedDocuments inserts raw documents as-is, so tests can store rows in the loose shapes
// the catalog accepts (string prices, numeric ids, missing fields).
func SeedDocuments(ctx context.Context, coll *mongo.Collection, docs ...interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed %s: %w", coll.Name(), err)
	}
	return nil
}
