package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SQLRepository stores one row per bucket. Works against Postgres (pgx) and
// SQLite; queries are written with ? placeholders and rebound per driver.
type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Migrate(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS app_state (
            bucket  TEXT PRIMARY KEY,
            payload TEXT NOT NULL
        )
    `)
	return err
}

func (r *SQLRepository) Get(ctx context.Context, bucket string) ([]byte, error) {
	var payload string
	query := r.DB.Rebind(`SELECT payload FROM app_state WHERE bucket = ?`)
	err := r.DB.GetContext(ctx, &payload, query, bucket)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (r *SQLRepository) Put(ctx context.Context, bucket string, payload []byte) error {
	query := r.DB.Rebind(`
        INSERT INTO app_state (bucket, payload) VALUES (?, ?)
        ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload
    `)
	_, err := r.DB.ExecContext(ctx, query, bucket, string(payload))
	return err
}
