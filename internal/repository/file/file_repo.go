// Package file stores snapshots as JSON documents in a local data directory.
package file

import (
	"alcyxob/wellness-app/internal/repository"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const fileExt = ".json"

// fileSnapshotRepository implements repository.SnapshotRepository on top of afero.
type fileSnapshotRepository struct {
	fs  afero.Fs
	dir string
}

// NewFileSnapshotRepository creates the data directory if needed and returns a
// repository writing one <key>.json file per store.
func NewFileSnapshotRepository(fs afero.Fs, dir string) (repository.SnapshotRepository, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &fileSnapshotRepository{fs: fs, dir: dir}, nil
}

func (r *fileSnapshotRepository) path(key string) string {
	return filepath.Join(r.dir, key+fileExt)
}

// Load reads the snapshot file for key.
func (r *fileSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := repository.ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(r.fs, r.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Save writes to a temp file in the same directory and renames it over the
// previous snapshot, so readers never observe a half-written document.
func (r *fileSnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := afero.TempFile(r.fs, r.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrSaveFailed, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("%w: %v", repository.ErrSaveFailed, err)
	}
	if err := tmp.Close(); err != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("%w: %v", repository.ErrSaveFailed, err)
	}
	if err := r.fs.Rename(tmpName, r.path(key)); err != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("%w: %v", repository.ErrSaveFailed, err)
	}
	return nil
}

// Delete removes the snapshot file. A missing file is ignored.
func (r *fileSnapshotRepository) Delete(ctx context.Context, key string) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}
	if err := r.fs.Remove(r.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Close is a no-op for the file backend.
func (r *fileSnapshotRepository) Close(ctx context.Context) error {
	return nil
}
