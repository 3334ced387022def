package storage

import (
	"context"
	"errors"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// Error constants for storage layer
var (
	ErrObjectNotFound   = errors.New("object not found in storage")
	ErrChecksumMismatch = errors.New("backup checksum mismatch")
)

// BackupStorage defines the object storage operations used for snapshot backups.
type BackupStorage interface {
	// Upload stores data under objectKey together with its checksum.
	Upload(ctx context.Context, objectKey string, data []byte) error

	// Download fetches the object and verifies its checksum.
	Download(ctx context.Context, objectKey string) ([]byte, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
