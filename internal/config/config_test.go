package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "health-storage", cfg.Storage.Key)
	assert.Equal(t, 5*time.Second, cfg.Storage.PersistTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Zero(t, cfg.Reminder.BackupInterval)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
storage:
  backend: sqlite
  sqlite_path: /tmp/w.db
reminder:
  backup_interval: 6h
s3:
  bucket_name: wellness-backups
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("STORAGE_KEY", "alt-store")
	t.Setenv("S3_ACCESS_KEY_ID", "AKIA")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/w.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "alt-store", cfg.Storage.Key)
	assert.Equal(t, 6*time.Hour, cfg.Reminder.BackupInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "AKIA", cfg.S3.AccessKeyID)
	assert.True(t, cfg.S3.Enabled())
}

func TestLoadConfig_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")
	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "unknown storage backend")
}
