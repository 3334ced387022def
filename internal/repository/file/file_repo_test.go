package file_test

import (
	"alcyxob/wellness-app/internal/repository"
	"alcyxob/wellness-app/internal/repository/file"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSnapshotRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	repo, err := file.NewFileSnapshotRepository(fs, "/data")
	require.NoError(t, err)

	_, err = repo.Load(ctx, "health-storage")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Save(ctx, "health-storage", []byte(`{"isOnboarded":true}`)))
	got, err := repo.Load(ctx, "health-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"isOnboarded":true}`, string(got))

	// Overwrite replaces the previous document and leaves no temp files behind.
	require.NoError(t, repo.Save(ctx, "health-storage", []byte(`{"isOnboarded":false}`)))
	got, err = repo.Load(ctx, "health-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"isOnboarded":false}`, string(got))

	entries, err := afero.ReadDir(fs, "/data")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "health-storage.json", entries[0].Name())
}

func TestFileSnapshotRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, err := file.NewFileSnapshotRepository(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "missing"), "deleting an absent key is not an error")

	require.NoError(t, repo.Save(ctx, "k", []byte("{}")))
	require.NoError(t, repo.Delete(ctx, "k"))
	_, err = repo.Load(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFileSnapshotRepository_RejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	repo, err := file.NewFileSnapshotRepository(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		assert.ErrorIs(t, repo.Save(ctx, key, []byte("{}")), repository.ErrInvalidKey, key)
	}
}
