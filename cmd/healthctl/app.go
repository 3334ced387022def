package main

import (
	"alcyxob/wellness-app/internal/config"
	"alcyxob/wellness-app/internal/logging"
	"alcyxob/wellness-app/internal/repository"
	"alcyxob/wellness-app/internal/repository/file"
	"alcyxob/wellness-app/internal/repository/mongo"
	"alcyxob/wellness-app/internal/repository/sqlite"
	"alcyxob/wellness-app/internal/service"
	"alcyxob/wellness-app/internal/storage"
	"alcyxob/wellness-app/internal/store"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// app carries everything a command needs. It is populated by setup before
// a command runs and released by close afterwards.
type app struct {
	// Flags
	configDir string
	backend   string
	dataDir   string
	key       string
	jsonOut   bool

	// Test seams
	fs     afero.Fs
	now    func() time.Time
	logger *zap.Logger

	cfg   config.Config
	repo  repository.SnapshotRepository
	store *store.Store

	onboarding service.OnboardingService
	workouts   service.WorkoutService
	moods      service.MoodService
	dashboard  service.DashboardService
	calendar   service.CalendarService
	navigation service.NavigationService
}

func newApp() *app {
	return &app{fs: afero.NewOsFs()}
}

// setup loads configuration and opens the store.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.LoadConfig(a.configDir)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if a.backend != "" {
		cfg.Storage.Backend = a.backend
	}
	if a.dataDir != "" {
		cfg.Storage.Dir = a.dataDir
	}
	if a.key != "" {
		cfg.Storage.Key = a.key
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := repository.ValidateKey(cfg.Storage.Key); err != nil {
		return fmt.Errorf("storage key %q: %w", cfg.Storage.Key, err)
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("could not build logger: %w", err)
		}
		a.logger = logger
	}

	repo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}
	a.repo = repo

	opts := []store.Option{
		store.WithRepository(repo),
		store.WithKey(cfg.Storage.Key),
		store.WithLogger(a.logger),
		store.WithPersistTimeout(cfg.Storage.PersistTimeout),
	}
	if a.now != nil {
		opts = append(opts, store.WithClock(a.now))
	}
	a.store = store.Open(ctx, opts...)

	a.onboarding = service.NewOnboardingService(a.store)
	a.workouts = service.NewWorkoutService(a.store)
	a.moods = service.NewMoodService(a.store)
	a.dashboard = service.NewDashboardService(a.store, a.moods)
	a.calendar = service.NewCalendarService(a.store)
	a.navigation = service.NewNavigationService(a.store)
	return nil
}

func (a *app) openRepository(ctx context.Context) (repository.SnapshotRepository, error) {
	a.logger.Debug("Opening snapshot repository", zap.String("backend", a.cfg.Storage.Backend))
	switch a.cfg.Storage.Backend {
	case config.BackendSQLite:
		return sqlite.Open(ctx, a.cfg.Storage.SQLitePath)
	case config.BackendMongo:
		return mongo.Open(ctx, a.cfg.Database.URI, a.cfg.Database.Name)
	default:
		return file.NewFileSnapshotRepository(a.fs, a.cfg.Storage.Dir)
	}
}

func (a *app) backupStorage(ctx context.Context) (storage.BackupStorage, error) {
	if !a.cfg.S3.Enabled() {
		return nil, fmt.Errorf("backups need s3.bucket_name (or S3_BUCKET_NAME) to be set")
	}
	return storage.NewS3Storage(ctx, a.cfg.S3, a.logger)
}

// backup uploads the current snapshot and returns the object key.
func (a *app) backup(ctx context.Context, bs storage.BackupStorage) (string, error) {
	data, err := store.EncodeSnapshot(a.store.Snapshot())
	if err != nil {
		return "", err
	}
	return storage.BackupSnapshot(ctx, bs, a.cfg.S3.Prefix, a.store.Key(), data, a.store.Now())
}

func (a *app) close() {
	if a.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.repo.Close(ctx); err != nil {
			a.logger.Warn("Failed to close repository", zap.Error(err))
		}
		cancel()
		a.repo = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// output prints v as JSON with --json, otherwise calls text.
func (a *app) output(w io.Writer, v any, text func() error) error {
	if a.jsonOut {
		return writeJSON(w, v)
	}
	return text()
}
