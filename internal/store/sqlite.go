package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/ggonc/gonc/internal/domain"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Store holds the tagger lexicon in a SQLite database
type Store struct {
	db *sql.DB
}

// New opens the database at dbPath and ensures the schema exists
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Count returns the number of lexicon forms
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM lexicon").Scan(&n); err != nil {
		return 0, fmt.Errorf("count lexicon: %w", err)
	}
	return n, nil
}

// ReplaceEntries swaps the whole lexicon for entries in one transaction
func (s *Store) ReplaceEntries(entries []domain.LexEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM lexicon"); err != nil {
		return fmt.Errorf("clear lexicon: %w", err)
	}

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO lexicon (form, pos) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Form, string(e.POS)); err != nil {
			return fmt.Errorf("insert %q: %w", e.Form, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Entries returns every lexicon form ordered by form
func (s *Store) Entries() ([]domain.LexEntry, error) {
	rows, err := s.db.Query("SELECT form, pos FROM lexicon ORDER BY form")
	if err != nil {
		return nil, fmt.Errorf("list lexicon: %w", err)
	}
	defer rows.Close()

	var entries []domain.LexEntry
	for rows.Next() {
		var e domain.LexEntry
		var pos string
		if err := rows.Scan(&e.Form, &pos); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.POS = domain.POS(pos)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Lookup returns the tag of a single form
func (s *Store) Lookup(form string) (domain.POS, bool, error) {
	var pos string
	err := s.db.QueryRow("SELECT pos FROM lexicon WHERE form = ?", form).Scan(&pos)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup %q: %w", form, err)
	}
	return domain.POS(pos), true, nil
}

// SetMeta stores a key/value pair describing the installed lexicon
func (s *Store) SetMeta(key, value string) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}

// Meta returns a stored value, or "" when the key is unset
func (s *Store) Meta(key string) (string, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get meta %s: %w", key, err)
	}
	return v, nil
}

// CountByPOS returns the number of forms per tag
func (s *Store) CountByPOS() (map[domain.POS]int, error) {
	rows, err := s.db.Query("SELECT pos, COUNT(*) FROM lexicon GROUP BY pos")
	if err != nil {
		return nil, fmt.Errorf("count by pos: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.POS]int)
	for rows.Next() {
		var pos string
		var n int
		if err := rows.Scan(&pos, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[domain.POS(pos)] = n
	}
	return out, rows.Err()
}
