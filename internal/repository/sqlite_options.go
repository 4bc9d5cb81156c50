package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mhennig/kalender/internal/db"
	"github.com/mhennig/kalender/internal/domain"
)

// SQLiteOptionRepo implements OptionRepo using a SQLite database.
type SQLiteOptionRepo struct {
	db db.DBTX
}

// NewSQLiteOptionRepo creates a new SQLiteOptionRepo. Pass a transaction
// DBTX to compose multi-statement operations atomically.
func NewSQLiteOptionRepo(conn db.DBTX) *SQLiteOptionRepo {
	return &SQLiteOptionRepo{db: conn}
}

func (r *SQLiteOptionRepo) List(ctx context.Context, kind domain.OptionKind) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT value FROM list_options WHERE kind = ? ORDER BY position`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("listing %s options: %w", kind, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s option: %w", kind, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *SQLiteOptionRepo) Append(ctx context.Context, kind domain.OptionKind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s value must not be empty", kind)
	}

	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM list_options WHERE kind = ? AND value = ?`,
		string(kind), value).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking %s option: %w", kind, err)
	}
	if exists > 0 {
		return fmt.Errorf("%s %q: %w", kind, value, ErrDuplicate)
	}

	// Positions may contain gaps after removals; MAX keeps appends stable.
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO list_options (kind, value, position)
		 SELECT ?, ?, COALESCE(MAX(position), -1) + 1 FROM list_options WHERE kind = ?`,
		string(kind), value, string(kind))
	if err != nil {
		return fmt.Errorf("appending %s option: %w", kind, err)
	}
	return nil
}

func (r *SQLiteOptionRepo) Remove(ctx context.Context, kind domain.OptionKind, value string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM list_options WHERE kind = ? AND value = ?`, string(kind), value)
	if err != nil {
		return fmt.Errorf("removing %s option: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("removing %s option: %w", kind, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", kind, value, ErrNotFound)
	}
	return nil
}

func (r *SQLiteOptionRepo) RemoveAt(ctx context.Context, kind domain.OptionKind, index int) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM list_options WHERE kind = ? ORDER BY position LIMIT 1 OFFSET ?`,
		string(kind), index).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%s index %d: %w", kind, index, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("resolving %s index %d: %w", kind, index, err)
	}

	if err := r.Remove(ctx, kind, value); err != nil {
		return "", err
	}
	return value, nil
}
