package mongo

import (
	"alcyxob/wellness-app/internal/repository"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live server: MONGO_TEST_URI=mongodb://localhost:27017 go test ./...
func TestMongoSnapshotRepository(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := "wellness_test_" + time.Now().UTC().Format("20060102150405")
	repo, err := Open(ctx, uri, dbName)
	require.NoError(t, err)
	defer func() {
		client, err := ConnectDB(ctx, uri)
		if err == nil {
			_ = client.Database(dbName).Drop(ctx)
			_ = DisconnectDB(ctx, client)
		}
		assert.NoError(t, repo.Close(ctx))
	}()

	_, err = repo.Load(ctx, "health-storage")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Save(ctx, "health-storage", []byte(`{"isOnboarded":false}`)))
	require.NoError(t, repo.Save(ctx, "health-storage", []byte(`{"isOnboarded":true}`)))

	data, err := repo.Load(ctx, "health-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"isOnboarded":true}`, string(data))

	require.NoError(t, repo.Delete(ctx, "health-storage"))
	require.NoError(t, repo.Delete(ctx, "health-storage"))
	_, err = repo.Load(ctx, "health-storage")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Save(ctx, "../escape", nil), repository.ErrInvalidKey)
}
