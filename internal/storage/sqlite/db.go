package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a sql.DB connection to the offline-review SQLite database.
type DB struct {
	*sql.DB
}

// Open creates a new SQLite connection with WAL mode and foreign keys
// enabled, and ensures the schema exists.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Single-writer SQLite
	db.SetMaxOpenConns(1)

	wrapped := &DB{DB: db}
	if err := wrapped.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return wrapped, nil
}

func (db *DB) ensureSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS lessons (
		id               TEXT PRIMARY KEY,
		level            TEXT NOT NULL,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		payload          TEXT NOT NULL,
		fetched_at       DATETIME NOT NULL DEFAULT (datetime('now'))
	);
	CREATE INDEX IF NOT EXISTS idx_lessons_level ON lessons(level);

	CREATE TABLE IF NOT EXISTS vocabulary (
		id               TEXT PRIMARY KEY,
		lesson_id        TEXT NOT NULL DEFAULT '',
		word             TEXT NOT NULL,
		translation      TEXT NOT NULL DEFAULT '',
		phonetic         TEXT NOT NULL DEFAULT '',
		example_sentence TEXT NOT NULL DEFAULT '',
		audio_url        TEXT NOT NULL DEFAULT '',
		image_url        TEXT NOT NULL DEFAULT '',
		fetched_at       DATETIME NOT NULL DEFAULT (datetime('now'))
	);
	CREATE INDEX IF NOT EXISTS idx_vocabulary_lesson ON vocabulary(lesson_id);
	CREATE INDEX IF NOT EXISTS idx_vocabulary_word ON vocabulary(word);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
