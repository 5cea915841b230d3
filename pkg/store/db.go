// Package store keeps the client's local state in sqlite: a key-value table
// backing the session and the contractor activity feed.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// migration queries
	createKVTableSQL = `
  CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
  )`

	createActivityTableSQL = `
  CREATE TABLE IF NOT EXISTS activity (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  project_id TEXT NOT NULL,
  kind TEXT NOT NULL,
  label TEXT NOT NULL,
  created_at DATETIME NOT NULL
  )`

	createActivityIndexSQL = `CREATE INDEX IF NOT EXISTS activity_project_idx ON activity (project_id, created_at)`

	// kv queries
	getValueSQL    = `SELECT value FROM kv WHERE key = ?`
	setValueSQL    = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteValueSQL = `DELETE FROM kv WHERE key = ?`

	// activity queries
	createActivitySQL = `INSERT INTO activity (project_id, kind, label, created_at) VALUES (:project_id, :kind, :label, :created_at)`
	listActivitySQL   = `SELECT id, project_id, kind, label, created_at FROM activity WHERE project_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`
)

type Repo struct {
	db *sqlx.DB
}

// DefaultPath is ~/.local/share/reno/reno.db, or under $XDG_DATA_HOME when set.
func DefaultPath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".local", "share")
	}
	return filepath.Join(base, "reno", "reno.db")
}

func NewRepo(dbPath string) (*Repo, error) {
	// ensure directory exists
	err := os.MkdirAll(filepath.Dir(dbPath), 0o700)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// open database
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// verify connection with database
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &Repo{db: db}

	// run migrations
	if err := repo.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

// runs migrations on initial start
func (r *Repo) runMigrations() error {
	tables := []string{
		createKVTableSQL,
		createActivityTableSQL,
		createActivityIndexSQL,
	}

	for _, tableSQL := range tables {
		if _, err := r.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// +---------------------+
// |                     |
// |     KV Queries      |
// |                     |
// +---------------------+

// Get returns the value stored under key and whether it exists.
func (r *Repo) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(getValueSQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *Repo) Set(key, value string) error {
	_, err := r.db.Exec(setValueSQL, key, value)
	return err
}

func (r *Repo) Delete(key string) error {
	_, err := r.db.Exec(deleteValueSQL, key)
	return err
}

// +---------------------+
// |                     |
// |  Activity Queries   |
// |                     |
// +---------------------+

type Activity struct {
	ID        int64     `db:"id"`
	ProjectID string    `db:"project_id"`
	Kind      string    `db:"kind"`
	Label     string    `db:"label"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *Repo) AddActivity(a Activity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := r.db.NamedExec(createActivitySQL, a)
	return err
}

// ListActivity returns the newest entries of a project first.
func (r *Repo) ListActivity(projectID string, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Activity
	if err := r.db.Select(&entries, listActivitySQL, projectID, limit); err != nil {
		return nil, err
	}
	return entries, nil
}
