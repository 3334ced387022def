// internal/repository/mongo/snapshot_repo.go
package mongo

import (
	"alcyxob/wellness-app/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotCollectionName = "snapshots"

// snapshotDocument is the stored shape; the store key doubles as _id.
type snapshotDocument struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoSnapshotRepository implements repository.SnapshotRepository
type mongoSnapshotRepository struct {
	client     *mongo.Client // nil when the caller owns the client
	collection *mongo.Collection
}

// NewMongoSnapshotRepository creates a repository over an existing database.
// The caller keeps ownership of the client.
func NewMongoSnapshotRepository(db *mongo.Database) repository.SnapshotRepository {
	return &mongoSnapshotRepository{
		collection: db.Collection(snapshotCollectionName),
	}
}

// Open connects to uri and returns a repository that disconnects on Close.
func Open(ctx context.Context, uri, dbName string) (repository.SnapshotRepository, error) {
	client, err := ConnectDB(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return &mongoSnapshotRepository{
		client:     client,
		collection: client.Database(dbName).Collection(snapshotCollectionName),
	}, nil
}

// Load retrieves the snapshot stored under key.
func (r *mongoSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := repository.ValidateKey(key); err != nil {
		return nil, err
	}
	var doc snapshotDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return []byte(doc.Data), nil
}

// Save upserts the snapshot stored under key.
func (r *mongoSnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}
	doc := snapshotDocument{
		Key:       key,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrSaveFailed, err)
	}
	return nil
}

// Delete removes the snapshot stored under key; a missing document is fine.
func (r *mongoSnapshotRepository) Delete(ctx context.Context, key string) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Close disconnects the client if this repository opened it.
func (r *mongoSnapshotRepository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return DisconnectDB(ctx, r.client)
}
