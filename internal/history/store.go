// Package history persists looked up words and the last query in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"lexibar/internal/eventbus"
)

const (
	createHistoryTable = `
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL,
			looked_up_at INTEGER NOT NULL
		)`

	createHistoryIndexes = `
		CREATE INDEX IF NOT EXISTS idx_history_word ON history(word)`

	createSettingsTable = `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`
)

// settings keys
const (
	keyLastQuery  = "last_query"
	keyLastCursor = "last_cursor"
)

// Lookup is one row of the aggregated history
type Lookup struct {
	Word  string
	Last  time.Time
	Count int
}

// Store is the history database
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	// one writer; the event bus and the UI share the handle
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, now: time.Now}, nil
}

func initSchema(db *sql.DB) error {
	for _, stmt := range []string{createHistoryTable, createHistoryIndexes, createSettingsTable} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordLookup appends word to the history
func (s *Store) RecordLookup(ctx context.Context, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (word, looked_up_at) VALUES (?, ?)`,
		word, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// Suggestions returns distinct words, most recently looked up first
func (s *Store) Suggestions(ctx context.Context, limit int) ([]string, error) {
	recent, err := s.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(recent))
	for i, r := range recent {
		words[i] = r.Word
	}
	return words, nil
}

// Recent returns the aggregated history, most recent first
func (s *Store) Recent(ctx context.Context, limit int) ([]Lookup, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT word, MAX(looked_up_at), COUNT(*)
		FROM history
		GROUP BY word
		ORDER BY MAX(id) DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Lookup
	for rows.Next() {
		var (
			l    Lookup
			last int64
		)
		if err := rows.Scan(&l.Word, &last, &l.Count); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		l.Last = time.UnixMilli(last)
		out = append(out, l)
	}
	return out, rows.Err()
}

// Clear deletes the history. The saved query is kept.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// SaveQuery persists the input text and cursor
func (s *Store) SaveQuery(ctx context.Context, query string, cursor int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to save query: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`
	if _, err := tx.ExecContext(ctx, upsert, keyLastQuery, query); err != nil {
		return fmt.Errorf("failed to save query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, keyLastCursor, strconv.Itoa(cursor)); err != nil {
		return fmt.Errorf("failed to save cursor: %w", err)
	}
	return tx.Commit()
}

// LastQuery returns the persisted input text and cursor; empty when none was saved
func (s *Store) LastQuery(ctx context.Context) (string, int, error) {
	query, err := s.setting(ctx, keyLastQuery)
	if err != nil {
		return "", 0, err
	}
	raw, err := s.setting(ctx, keyLastCursor)
	if err != nil {
		return "", 0, err
	}
	cursor, err := strconv.Atoi(raw)
	if err != nil {
		cursor = len([]rune(query))
	}
	return query, cursor, nil
}

func (s *Store) setting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

// Attach mirrors the query and completed lookups from the bus into the store.
// Writes are one-way: nothing here feeds back into the bar.
func (s *Store) Attach(bus eventbus.EventBus) func() {
	unsubQuery := bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.QueryChangedEvent)
		if err := s.SaveQuery(context.Background(), ev.Query, ev.Cursor); err != nil {
			log.Printf("History: %v", err)
		}
	})
	unsubLookup := bus.Subscribe(eventbus.EventLookupCompleted, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.LookupCompletedEvent)
		if err := s.RecordLookup(context.Background(), ev.Entry.Word); err != nil {
			log.Printf("History: %v", err)
		}
	})
	return func() {
		unsubQuery()
		unsubLookup()
	}
}
