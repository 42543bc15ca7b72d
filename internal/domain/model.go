// Package domain defines the entities shared across the client: users,
// lessons, vocabulary and progress aggregates. Types carry the JSON
// field names the server speaks.
package domain

import "fmt"

// Level is a CEFR proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
)

// ParseLevel validates and normalizes a level string.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelA1, LevelA2, LevelB1, LevelB2:
		return Level(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Language is a UI language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageNepali  Language = "ne"
)

// User is an account record.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	NativeLanguage string `json:"native_language,omitempty"`
}

// Lesson is a unit of study. List endpoints return summaries; the
// detail endpoint fills Content and Vocabulary.
type Lesson struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Level           Level         `json:"level"`
	DurationMinutes int           `json:"duration_minutes,omitempty"`
	Content         LessonContent `json:"content,omitempty"`
	Vocabulary      []Vocabulary  `json:"vocabulary,omitempty"`
}

// LessonContent groups a lesson's teaching material by section.
type LessonContent struct {
	Introduction string        `json:"introduction,omitempty"`
	Letters      []ContentItem `json:"letters,omitempty"`
	Phrases      []ContentItem `json:"phrases,omitempty"`
	Pronouns     []ContentItem `json:"pronouns,omitempty"`
	Objects      []ContentItem `json:"objects,omitempty"`
	Verbs        []ContentItem `json:"verbs,omitempty"`
}

// ContentItem is one teachable item with its translation.
type ContentItem struct {
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
	Phonetic    string `json:"phonetic,omitempty"`
}

// Vocabulary is one word entry.
type Vocabulary struct {
	ID              string `json:"id"`
	LessonID        string `json:"lesson_id,omitempty"`
	Word            string `json:"word"`
	Translation     string `json:"translation"`
	Phonetic        string `json:"phonetic,omitempty"`
	ExampleSentence string `json:"example_sentence,omitempty"`
	AudioURL        string `json:"audio_url,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
}

// Progress is the server-owned learning aggregate for a user.
type Progress struct {
	TotalCompleted int              `json:"total_completed"`
	AverageScore   float64          `json:"average_score"`
	Streak         Streak           `json:"streak"`
	Lessons        []LessonProgress `json:"lessons,omitempty"`
}

// Streak tracks consecutive study days.
type Streak struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// LessonProgress is a user's standing on one lesson.
type LessonProgress struct {
	LessonID  string `json:"lesson_id"`
	Completed bool   `json:"completed"`
	Score     int    `json:"score,omitempty"`
}

// Profile is a user's public profile with earned badges.
type Profile struct {
	UserID string  `json:"user_id"`
	Badges []Badge `json:"badges,omitempty"`
}

// Badge is an earned achievement.
type Badge struct {
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// QuizVerdict is the server's grading of one submitted answer.
type QuizVerdict struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Points        int    `json:"points,omitempty"`
	Feedback      string `json:"feedback,omitempty"`
}
