package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mhennig/kalender/internal/db"
	"github.com/mhennig/kalender/internal/domain"
)

// SQLiteThemeRepo implements ThemeRepo using a SQLite database.
type SQLiteThemeRepo struct {
	db db.DBTX
}

// NewSQLiteThemeRepo creates a new SQLiteThemeRepo.
func NewSQLiteThemeRepo(conn db.DBTX) *SQLiteThemeRepo {
	return &SQLiteThemeRepo{db: conn}
}

func (r *SQLiteThemeRepo) Create(ctx context.Context, t *domain.Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}

	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM themes WHERE name = ?`, t.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking theme: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("theme %q: %w", t.Name, ErrDuplicate)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO themes (id, name, prompt, examples, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Prompt, packExamples(t.Examples), nowUTC(), nowUTC())
	if err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}
	return nil
}

func (r *SQLiteThemeRepo) GetByName(ctx context.Context, name string) (*domain.Theme, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, prompt, examples, created_at, updated_at
		 FROM themes WHERE name = ?`, name)

	t, err := scanTheme(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("theme %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning theme: %w", err)
	}
	return t, nil
}

func (r *SQLiteThemeRepo) List(ctx context.Context) ([]*domain.Theme, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, prompt, examples, created_at, updated_at
		 FROM themes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing themes: %w", err)
	}
	defer rows.Close()

	var themes []*domain.Theme
	for rows.Next() {
		t, err := scanTheme(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning theme: %w", err)
		}
		themes = append(themes, t)
	}
	return themes, rows.Err()
}

func (r *SQLiteThemeRepo) Update(ctx context.Context, t *domain.Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE themes SET name = ?, prompt = ?, examples = ?, updated_at = ? WHERE id = ?`,
		t.Name, t.Prompt, packExamples(t.Examples), nowUTC(), t.ID)
	if err != nil {
		return fmt.Errorf("updating theme: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating theme: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("theme %q: %w", t.Name, ErrNotFound)
	}
	return nil
}

func (r *SQLiteThemeRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM themes WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting theme: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting theme: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("theme %q: %w", name, ErrNotFound)
	}
	return nil
}

func scanTheme(scan func(dest ...any) error) (*domain.Theme, error) {
	var t domain.Theme
	var examples, createdAt, updatedAt string
	if err := scan(&t.ID, &t.Name, &t.Prompt, &examples, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.Examples = unpackExamples(examples)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}

// Examples are stored newline-packed; values never contain newlines
// because the CLI collects them comma-separated.
func packExamples(examples []string) string {
	trimmed := make([]string, 0, len(examples))
	for _, e := range examples {
		e = strings.TrimSpace(e)
		if e != "" {
			trimmed = append(trimmed, e)
		}
	}
	return strings.Join(trimmed, "\n")
}

func unpackExamples(packed string) []string {
	if packed == "" {
		return nil
	}
	return strings.Split(packed, "\n")
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
