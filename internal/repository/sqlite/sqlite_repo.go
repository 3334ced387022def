// Package sqlite keeps store snapshots in an embedded SQLite database.
package sqlite

import (
	"alcyxob/wellness-app/internal/repository"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var ddl embed.FS

// sqliteSnapshotRepository implements repository.SnapshotRepository.
type sqliteSnapshotRepository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(ctx context.Context, path string) (repository.SnapshotRepository, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}
	// A single connection keeps writes serialised; the store is single-writer anyway.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &sqliteSnapshotRepository{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, string(b))
	return err
}

// Load returns the stored document for key.
func (r *sqliteSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := repository.ValidateKey(key); err != nil {
		return nil, err
	}
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

// Save upserts the document for key.
func (r *sqliteSnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO snapshots (key, data, updated_at) VALUES (?,?,?)
        ON CONFLICT(key) DO UPDATE SET data=excluded.data,
            updated_at=excluded.updated_at
    `, key, string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrSaveFailed, err)
	}
	return nil
}

// Delete removes the row for key, if any.
func (r *sqliteSnapshotRepository) Delete(ctx context.Context, key string) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key)
	return err
}

// Close closes the database handle.
func (r *sqliteSnapshotRepository) Close(ctx context.Context) error {
	return r.db.Close()
}
