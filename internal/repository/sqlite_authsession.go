package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sehyunpark/jindo/internal/db"
)

// SQLiteAuthSessionRepo stores the logged-in username in a single row.
type SQLiteAuthSessionRepo struct {
	db db.DBTX
}

func NewSQLiteAuthSessionRepo(db db.DBTX) *SQLiteAuthSessionRepo {
	return &SQLiteAuthSessionRepo{db: db}
}

func (r *SQLiteAuthSessionRepo) Current(ctx context.Context) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT username FROM auth_session WHERE id = 'default'`)
	var username string
	if err := row.Scan(&username); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("active session: %w", ErrNotFound)
		}
		return "", fmt.Errorf("scanning session: %w", err)
	}
	return username, nil
}

func (r *SQLiteAuthSessionRepo) SetCurrent(ctx context.Context, username string) error {
	query := `INSERT INTO auth_session (id, username) VALUES ('default', ?)
		ON CONFLICT(id) DO UPDATE SET username = excluded.username`
	if _, err := r.db.ExecContext(ctx, query, username); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_session WHERE id = 'default'`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
