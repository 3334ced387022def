package repository

import (
	"context"
	"regexp"
)

// Error constants for repository layer
var (
	ErrNotFound    = RepositoryError("not found")
	ErrInvalidKey  = RepositoryError("invalid snapshot key")
	ErrSaveFailed  = RepositoryError("save failed")
	ErrCorruptData = RepositoryError("corrupt snapshot data")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SnapshotRepository is durable key/value storage for serialised store
// snapshots. Each store writes one document under a fixed key.
type SnapshotRepository interface {
	// Load returns the document stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the document stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes the document. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any underlying resources.
	Close(ctx context.Context) error
}

var keyRx = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// ValidateKey checks that key is usable by every backend (file names included).
func ValidateKey(key string) error {
	if !keyRx.MatchString(key) {
		return ErrInvalidKey
	}
	return nil
}
