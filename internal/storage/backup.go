package storage

import (
	"context"
	"fmt"
	"path"
	"time"
)

// latestName is the object that always mirrors the newest backup.
const latestName = "latest.json"

// BackupKey returns the object key of a timestamped backup.
func BackupKey(prefix, storeKey string, at time.Time) string {
	return path.Join(prefix, storeKey, at.UTC().Format("20060102T150405Z")+".json")
}

// LatestKey returns the object key of the newest backup of storeKey.
func LatestKey(prefix, storeKey string) string {
	return path.Join(prefix, storeKey, latestName)
}

// BackupSnapshot uploads data as a timestamped backup and refreshes the
// latest copy. It returns the timestamped object key.
func BackupSnapshot(ctx context.Context, bs BackupStorage, prefix, storeKey string, data []byte, at time.Time) (string, error) {
	key := BackupKey(prefix, storeKey, at)
	if err := bs.Upload(ctx, key, data); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	if err := bs.Upload(ctx, LatestKey(prefix, storeKey), data); err != nil {
		return key, fmt.Errorf("upload latest: %w", err)
	}
	return key, nil
}

// RestoreSnapshot downloads the backup at objectKey, or the latest backup of
// storeKey when objectKey is empty.
func RestoreSnapshot(ctx context.Context, bs BackupStorage, prefix, storeKey, objectKey string) ([]byte, error) {
	if objectKey == "" {
		objectKey = LatestKey(prefix, storeKey)
	}
	data, err := bs.Download(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", objectKey, err)
	}
	return data, nil
}
