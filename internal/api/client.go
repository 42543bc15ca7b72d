// Package api is the typed REST client for the learning backend. It owns
// identity propagation, status classification and retry policy; callers
// never touch net/http directly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/google/uuid"

	"github.com/sikaai/sikaai/internal/domain"
)

// CredentialSource supplies the persisted identity attached to every
// request. Clear is invoked by the transport itself when the server
// answers 401, so a stale identity is never reused.
type CredentialSource interface {
	Credentials() (userID, token string)
	Clear()
}

// Config holds settings for creating a Client.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration

	Credentials    CredentialSource
	OnUnauthorized func()
	Logger         *slog.Logger
}

// Client is the REST client for the learning API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	creds          CredentialSource
	onUnauthorized func()
	retrier        retry.Retry[[]byte]
	logger         *slog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000/api"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     newHTTPClient(cfg.Timeout),
		creds:          cfg.Credentials,
		onUnauthorized: cfg.OnUnauthorized,
		retrier:        newRetrier[[]byte](cfg.RetryAttempts, cfg.RetryBaseDelay),
		logger:         cfg.Logger,
	}
}

// CreateUserRequest contains data for account creation.
type CreateUserRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	NativeLanguage string `json:"native_language"`
}

// CreateUser registers a new account and returns the user record.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	var user domain.User
	if err := c.post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Lessons returns the lesson summaries for a level.
func (c *Client) Lessons(ctx context.Context, level domain.Level) ([]domain.Lesson, error) {
	query := url.Values{"level": {string(level)}}
	var lessons []domain.Lesson
	if err := c.get(ctx, "/lessons", query, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// Lesson returns the full lesson detail including vocabulary.
func (c *Client) Lesson(ctx context.Context, id string) (*domain.Lesson, error) {
	var lesson domain.Lesson
	if err := c.get(ctx, "/lessons/"+url.PathEscape(id), nil, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// DailyLesson returns the lesson assigned to the user for today.
func (c *Client) DailyLesson(ctx context.Context, userID string) (*domain.Lesson, error) {
	var lesson domain.Lesson
	if err := c.get(ctx, "/lessons/daily/"+url.PathEscape(userID), nil, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// CompleteLessonRequest contains data for marking a lesson complete.
type CompleteLessonRequest struct {
	UserID string `json:"userId"`
	Score  int    `json:"score"`
}

// Ack is the server's acknowledgement of a write.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CompleteLesson records a lesson completion with a score.
func (c *Client) CompleteLesson(ctx context.Context, lessonID string, req CompleteLessonRequest) (*Ack, error) {
	var ack Ack
	path := "/progress/lesson/" + url.PathEscape(lessonID) + "/complete"
	if err := c.post(ctx, path, req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// SubmitQuizAnswer posts an answer and returns the server verdict.
func (c *Client) SubmitQuizAnswer(ctx context.Context, quizID, answer string) (*domain.QuizVerdict, error) {
	payload := struct {
		UserAnswer string `json:"userAnswer"`
	}{UserAnswer: answer}

	var verdict domain.QuizVerdict
	path := "/quizzes/" + url.PathEscape(quizID) + "/answer"
	if err := c.post(ctx, path, payload, &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}

// Profile returns the user profile with earned badges.
func (c *Client) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.get(ctx, "/users/"+url.PathEscape(userID)+"/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Progress returns the user's learning progress aggregate.
func (c *Client) Progress(ctx context.Context, userID string) (*domain.Progress, error) {
	var progress domain.Progress
	if err := c.get(ctx, "/progress/"+url.PathEscape(userID), nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// Vocabulary returns vocabulary entries, optionally scoped to a lesson.
func (c *Client) Vocabulary(ctx context.Context, lessonID string) ([]domain.Vocabulary, error) {
	var query url.Values
	if lessonID != "" {
		query = url.Values{"lessonId": {lessonID}}
	}
	var entries []domain.Vocabulary
	if err := c.get(ctx, "/vocabulary", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SearchVocabulary returns vocabulary entries matching a term.
func (c *Client) SearchVocabulary(ctx context.Context, term string) ([]domain.Vocabulary, error) {
	var entries []domain.Vocabulary
	if err := c.get(ctx, "/vocabulary/search/"+url.PathEscape(term), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// get performs an idempotent request through the retry policy.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, err := c.retrier.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return c.roundTrip(ctx, http.MethodGet, path, query, nil)
	})
	if err != nil {
		return err
	}
	return decode(body, out)
}

// post performs a write. Writes carry no idempotency keys, so they are
// never retried.
func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := c.roundTrip(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	c.setHeaders(req, payload != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, c.statusError(resp.StatusCode, data, req.URL.Path)
	}

	return data, nil
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	if c.creds != nil {
		userID, token := c.creds.Credentials()
		if userID != "" {
			req.Header.Set("X-User-ID", userID)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func (c *Client) statusError(status int, body []byte, path string) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}

	switch {
	case status == http.StatusUnauthorized:
		if c.creds != nil {
			c.creds.Clear()
		}
		c.logger.Warn("unauthorized response, identity cleared", "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	case status == http.StatusForbidden:
		c.logger.Warn("access forbidden", "path", path)
	case status >= 500:
		c.logger.Error("server error", "status", status, "path", path)
	}

	return &Error{StatusCode: status, Message: msg}
}

func decode(body []byte, out interface{}) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
