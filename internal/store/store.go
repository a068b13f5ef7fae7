// Package store handles SQLite persistence of saved practice texts.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/zitype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when no text has the requested name.
var ErrNotFound = errors.New("text not found")

// Store wraps SQLite access for the text library.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS texts (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_texts_created_at ON texts(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveText stores content under name, replacing any text with the same name.
func (s *Store) SaveText(ctx context.Context, name, content string, createdAt time.Time) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO texts (name, content, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET content = excluded.content, created_at = excluded.created_at
		 RETURNING id`,
		name,
		content,
		createdAt.Format(time.RFC3339Nano),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetText returns the text stored under name.
func (s *Store) GetText(ctx context.Context, name string) (model.SavedText, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, content, created_at FROM texts WHERE name = ?`, name)
	text, err := scanText(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SavedText{}, ErrNotFound
	}
	return text, err
}

// ListTexts returns all saved texts ordered by creation time.
func (s *Store) ListTexts(ctx context.Context) ([]model.SavedText, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, content, created_at FROM texts ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.SavedText
	for rows.Next() {
		text, err := scanText(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteText removes the text stored under name.
func (s *Store) DeleteText(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM texts WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanText(row scanner) (model.SavedText, error) {
	var text model.SavedText
	var createdAt string
	if err := row.Scan(&text.ID, &text.Name, &text.Content, &createdAt); err != nil {
		return model.SavedText{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.SavedText{}, err
	}
	text.CreatedAt = parsed
	return text, nil
}
