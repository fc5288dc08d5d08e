package sqlite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// NewSQLite opens (and creates if needed) the database file at path.
// ":memory:" gives a private in-memory database; the pool is pinned to a
// single connection so every query sees the same database.
func NewSQLite(path string) (*sqlx.DB, error) {
	if path == "" {
		path = "clinic.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
