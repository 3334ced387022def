package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Log      LogConfig      `mapstructure:"log"`
}

// StorageConfig selects where store snapshots live.
type StorageConfig struct {
	Backend        string        `mapstructure:"backend"` // file | sqlite | mongo
	Key            string        `mapstructure:"key"`     // Snapshot key, one per store
	Dir            string        `mapstructure:"dir"`     // Data dir for the file backend
	SQLitePath     string        `mapstructure:"sqlite_path"`
	PersistTimeout time.Duration `mapstructure:"persist_timeout"`
}

// DatabaseConfig is used by the mongo backend.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// S3Config points at the S3-compatible bucket used for backups.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	Prefix          string `mapstructure:"prefix"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether enough is configured to talk to a bucket.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// ReminderConfig controls the background scheduler.
type ReminderConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	BackupInterval time.Duration `mapstructure:"backup_interval"` // 0 disables scheduled backups
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// storage.backend -> STORAGE_BACKEND
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
		// Defaults and env vars are enough to run.
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}
	return config, config.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.key", "health-storage")
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.sqlite_path", "./data/wellness.db")
	v.SetDefault("storage.persist_timeout", "5s")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "wellness_app")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.prefix", "backups")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.backup_interval", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	// AutomaticEnv only resolves keys viper already knows about; the S3
	// credentials have no default, so bind them explicitly.
	_ = v.BindEnv("s3.endpoint")
	_ = v.BindEnv("s3.access_key_id")
	_ = v.BindEnv("s3.secret_access_key")
	_ = v.BindEnv("s3.bucket_name")
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMongo:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Key == "" {
		return errors.New("storage key must not be empty")
	}
	if c.Reminder.BackupInterval < 0 {
		return errors.New("reminder backup interval must not be negative")
	}
	return nil
}
