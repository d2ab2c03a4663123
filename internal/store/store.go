// Package store persists token streams and vocabularies in SQLite.
//
// The store is the durable form of a prepared corpus: the ordered
// token stream round-trips exactly, and a vocabulary is stored as its
// ID-ordered token list.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/motif-ml/motif/internal/vocab"
)

// Store is a SQLite-backed corpus store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS streams(
			name     TEXT NOT NULL,
			position INTEGER NOT NULL,
			token    TEXT NOT NULL,
			PRIMARY KEY(name, position)
		)`,
		`CREATE TABLE IF NOT EXISTS vocabs(
			name  TEXT NOT NULL,
			id    INTEGER NOT NULL,
			token TEXT NOT NULL,
			PRIMARY KEY(name, id)
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveStream stores an ordered token stream under name, replacing any
// previous stream with that name.
func (s *Store) SaveStream(name string, tokens []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save stream %q: %w", name, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM streams WHERE name = ?", name); err != nil {
		return fmt.Errorf("save stream %q: %w", name, err)
	}
	for i, tok := range tokens {
		if _, err := tx.Exec("INSERT INTO streams(name, position, token) VALUES(?,?,?)", name, i, tok); err != nil {
			return fmt.Errorf("save stream %q position %d: %w", name, i, err)
		}
	}

	return tx.Commit()
}

// LoadStream returns the ordered token stream stored under name.
func (s *Store) LoadStream(name string) ([]string, error) {
	rows, err := s.db.Query("SELECT token FROM streams WHERE name = ? ORDER BY position", name)
	if err != nil {
		return nil, fmt.Errorf("load stream %q: %w", name, err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return nil, fmt.Errorf("load stream %q: %w", name, err)
		}
		tokens = append(tokens, tok)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load stream %q: %w", name, err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: stream %q", ErrNotFound, name)
	}
	return tokens, nil
}

// ListStreams returns the names of all stored streams.
func (s *Store) ListStreams() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT name FROM streams ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list streams: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list streams: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SaveVocab stores a vocabulary under name, replacing any previous
// vocabulary with that name.
func (s *Store) SaveVocab(name string, v *vocab.Vocabulary) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save vocab %q: %w", name, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM vocabs WHERE name = ?", name); err != nil {
		return fmt.Errorf("save vocab %q: %w", name, err)
	}
	for id, tok := range v.Tokens() {
		if _, err := tx.Exec("INSERT INTO vocabs(name, id, token) VALUES(?,?,?)", name, id, tok); err != nil {
			return fmt.Errorf("save vocab %q id %d: %w", name, id, err)
		}
	}

	return tx.Commit()
}

// LoadVocab returns the vocabulary stored under name.
func (s *Store) LoadVocab(name string) (*vocab.Vocabulary, error) {
	rows, err := s.db.Query("SELECT token FROM vocabs WHERE name = ? ORDER BY id", name)
	if err != nil {
		return nil, fmt.Errorf("load vocab %q: %w", name, err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return nil, fmt.Errorf("load vocab %q: %w", name, err)
		}
		tokens = append(tokens, tok)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load vocab %q: %w", name, err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: vocab %q", ErrNotFound, name)
	}
	return vocab.FromTokens(tokens)
}
