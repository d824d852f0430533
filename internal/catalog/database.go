// Package catalog implements the thread-color reference database on SQLite.
// The CLI palette commands list and search it; the CLI import tooling writes
// it.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Database represents a SQLite database connection
type Database struct {
	db   *sql.DB
	path string
}

// DatabaseConfig holds connection pool configuration
type DatabaseConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultDatabaseConfig returns default connection pool settings
func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		MaxOpenConns:    1, // SQLite single-writer model
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// NewDatabase creates a new database connection with default settings
func NewDatabase(path string) (*Database, error) {
	return NewDatabaseWithConfig(path, DefaultDatabaseConfig())
}

// NewDatabaseWithConfig creates a new database connection with custom config
func NewDatabaseWithConfig(path string, config DatabaseConfig) (*Database, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		db.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(config.ConnMaxLifetime)
	}
	if config.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(config.ConnMaxIdleTime)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &Database{db: db, path: path}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// migrate creates the schema when it does not exist yet.
func (d *Database) migrate() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS threads (
			brand TEXT NOT NULL,
			number TEXT NOT NULL,
			name TEXT NOT NULL,
			color TEXT NOT NULL,
			bead_length REAL,
			bead_diameter REAL,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (brand, number)
		);
		CREATE INDEX IF NOT EXISTS idx_threads_brand ON threads(brand);
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}
