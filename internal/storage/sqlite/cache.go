// Package sqlite mirrors fetched lessons and vocabulary into a local
// database so review keeps working without the network. The mirror is
// write-through: every successful online fetch replaces the rows for
// its scope, matching the store's replace-whole-slice semantics.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sikaai/sikaai/internal/domain"
)

// ErrNotFound is returned when no cached row matches.
var ErrNotFound = errors.New("not cached")

// Cache is the offline mirror of server-fetched resources.
type Cache struct {
	db *DB
}

// NewCache creates a cache backed by the database at path.
func NewCache(path string) (*Cache, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// ReplaceLessons swaps the cached lesson summaries for a level.
func (c *Cache) ReplaceLessons(level domain.Level, lessons []domain.Lesson) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM lessons WHERE level = ?", string(level)); err != nil {
		return fmt.Errorf("clear lessons: %w", err)
	}

	for _, lesson := range lessons {
		if err := upsertLesson(tx, lesson); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveLesson caches a single lesson detail (with content and vocabulary).
func (c *Cache) SaveLesson(lesson domain.Lesson) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := upsertLesson(tx, lesson); err != nil {
		return err
	}
	for _, v := range lesson.Vocabulary {
		if v.LessonID == "" {
			v.LessonID = lesson.ID
		}
		if err := upsertVocabulary(tx, v); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LessonsByLevel returns the cached lesson summaries for a level.
func (c *Cache) LessonsByLevel(level domain.Level) ([]domain.Lesson, error) {
	rows, err := c.db.Query(
		"SELECT payload FROM lessons WHERE level = ? ORDER BY title", string(level))
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []domain.Lesson
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		var lesson domain.Lesson
		if err := json.Unmarshal([]byte(payload), &lesson); err != nil {
			return nil, fmt.Errorf("decode lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	return lessons, rows.Err()
}

// Lesson returns a cached lesson by id.
func (c *Cache) Lesson(id string) (*domain.Lesson, error) {
	var payload string
	err := c.db.QueryRow("SELECT payload FROM lessons WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query lesson: %w", err)
	}

	var lesson domain.Lesson
	if err := json.Unmarshal([]byte(payload), &lesson); err != nil {
		return nil, fmt.Errorf("decode lesson: %w", err)
	}
	return &lesson, nil
}

// ReplaceVocabulary swaps the cached vocabulary for a lesson scope.
// An empty lessonID replaces the unscoped entries.
func (c *Cache) ReplaceVocabulary(lessonID string, entries []domain.Vocabulary) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM vocabulary WHERE lesson_id = ?", lessonID); err != nil {
		return fmt.Errorf("clear vocabulary: %w", err)
	}

	for _, v := range entries {
		if v.LessonID == "" {
			v.LessonID = lessonID
		}
		if err := upsertVocabulary(tx, v); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Vocabulary returns cached entries, optionally scoped to a lesson.
func (c *Cache) Vocabulary(lessonID string) ([]domain.Vocabulary, error) {
	query := "SELECT id, lesson_id, word, translation, phonetic, example_sentence, audio_url, image_url FROM vocabulary"
	args := []interface{}{}
	if lessonID != "" {
		query += " WHERE lesson_id = ?"
		args = append(args, lessonID)
	}
	query += " ORDER BY word"

	return c.queryVocabulary(query, args...)
}

// SearchVocabulary returns cached entries whose word or translation
// contains term.
func (c *Cache) SearchVocabulary(term string) ([]domain.Vocabulary, error) {
	pattern := "%" + term + "%"
	return c.queryVocabulary(
		`SELECT id, lesson_id, word, translation, phonetic, example_sentence, audio_url, image_url
		 FROM vocabulary WHERE word LIKE ? OR translation LIKE ? ORDER BY word`,
		pattern, pattern)
}

func (c *Cache) queryVocabulary(query string, args ...interface{}) ([]domain.Vocabulary, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vocabulary: %w", err)
	}
	defer rows.Close()

	var entries []domain.Vocabulary
	for rows.Next() {
		var v domain.Vocabulary
		if err := rows.Scan(&v.ID, &v.LessonID, &v.Word, &v.Translation,
			&v.Phonetic, &v.ExampleSentence, &v.AudioURL, &v.ImageURL); err != nil {
			return nil, fmt.Errorf("scan vocabulary: %w", err)
		}
		entries = append(entries, v)
	}

	return entries, rows.Err()
}

func upsertLesson(tx *sql.Tx, lesson domain.Lesson) error {
	payload, err := json.Marshal(lesson)
	if err != nil {
		return fmt.Errorf("encode lesson: %w", err)
	}
	_, err = tx.Exec(`INSERT INTO lessons (id, level, title, description, duration_minutes, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			level = excluded.level,
			title = excluded.title,
			description = excluded.description,
			duration_minutes = excluded.duration_minutes,
			payload = excluded.payload,
			fetched_at = datetime('now')`,
		lesson.ID, string(lesson.Level), lesson.Title, lesson.Description,
		lesson.DurationMinutes, string(payload))
	if err != nil {
		return fmt.Errorf("upsert lesson: %w", err)
	}
	return nil
}

func upsertVocabulary(tx *sql.Tx, v domain.Vocabulary) error {
	_, err := tx.Exec(`INSERT INTO vocabulary (id, lesson_id, word, translation, phonetic, example_sentence, audio_url, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			lesson_id = excluded.lesson_id,
			word = excluded.word,
			translation = excluded.translation,
			phonetic = excluded.phonetic,
			example_sentence = excluded.example_sentence,
			audio_url = excluded.audio_url,
			image_url = excluded.image_url,
			fetched_at = datetime('now')`,
		v.ID, v.LessonID, v.Word, v.Translation, v.Phonetic,
		v.ExampleSentence, v.AudioURL, v.ImageURL)
	if err != nil {
		return fmt.Errorf("upsert vocabulary: %w", err)
	}
	return nil
}
