package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sehyunpark/jindo/internal/db"
)

// SQLiteStateRepo implements StateRepo over a SQLite database. It accepts a
// DBTX so week restructuring can write several namespaces in one transaction.
type SQLiteStateRepo struct {
	db db.DBTX
}

func NewSQLiteStateRepo(db db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: db}
}

func (r *SQLiteStateRepo) Load(ctx context.Context, username, namespace string, v any) error {
	query := `SELECT doc FROM state_docs WHERE username = ? AND namespace = ?`
	row := r.db.QueryRowContext(ctx, query, username, namespace)

	var doc string
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("state %s/%s: %w", username, namespace, ErrNotFound)
		}
		return fmt.Errorf("loading state %s/%s: %w", username, namespace, err)
	}

	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return fmt.Errorf("decoding state %s/%s: %w", username, namespace, err)
	}
	return nil
}

func (r *SQLiteStateRepo) Save(ctx context.Context, username, namespace string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding state %s/%s: %w", username, namespace, err)
	}

	query := `INSERT INTO state_docs (username, namespace, doc, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(username, namespace) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, username, namespace, string(doc), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving state %s/%s: %w", username, namespace, err)
	}
	return nil
}
