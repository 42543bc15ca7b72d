// Package store is the single source of truth the UI layer reads:
// authenticated session, language preference and every server-fetched
// cache slice. It mediates all network calls through an injected backend
// and owns the shared loading and error state.
//
// Each cache slice is replaced wholesale on fetch, never merged.
// Overlapping fetches to the same slice are sequenced with per-slice
// request tokens: a response carrying a stale token is discarded, so the
// latest-issued request always determines the cached value.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sikaai/sikaai/internal/api"
	"github.com/sikaai/sikaai/internal/domain"
	"github.com/sikaai/sikaai/internal/storage/sqlite"
)

// Backend is the slice of the API client the store depends on.
type Backend interface {
	CreateUser(ctx context.Context, req api.CreateUserRequest) (*domain.User, error)
	Lessons(ctx context.Context, level domain.Level) ([]domain.Lesson, error)
	Lesson(ctx context.Context, id string) (*domain.Lesson, error)
	DailyLesson(ctx context.Context, userID string) (*domain.Lesson, error)
	CompleteLesson(ctx context.Context, lessonID string, req api.CompleteLessonRequest) (*api.Ack, error)
	SubmitQuizAnswer(ctx context.Context, quizID, answer string) (*domain.QuizVerdict, error)
	Profile(ctx context.Context, userID string) (*domain.Profile, error)
	Progress(ctx context.Context, userID string) (*domain.Progress, error)
	Vocabulary(ctx context.Context, lessonID string) ([]domain.Vocabulary, error)
	SearchVocabulary(ctx context.Context, term string) ([]domain.Vocabulary, error)
}

// sliceID names one independently fetched cache slice.
type sliceID int

const (
	sliceAccount sliceID = iota
	sliceLessons
	sliceCurrentLesson
	sliceDailyLesson
	sliceVocabulary
	sliceProgress
	sliceProfile
	sliceSearch
	numSlices
)

// Store holds the session and all cached server resources.
type Store struct {
	backend  Backend
	identity *Identity
	cache    *sqlite.Cache // optional offline mirror
	logger   *slog.Logger

	mu            sync.RWMutex
	user          *domain.User
	language      domain.Language
	lessons       []domain.Lesson
	currentLesson *domain.Lesson
	dailyLesson   *domain.Lesson
	vocabulary    []domain.Vocabulary
	progress      *domain.Progress
	profile       *domain.Profile
	inflight      int
	errMsg        string
	seq           [numSlices]uint64
}

// Option configures optional store collaborators.
type Option func(*Store)

// WithOfflineCache mirrors fetched lessons and vocabulary into the given
// cache so they stay available without the network.
func WithOfflineCache(cache *sqlite.Cache) Option {
	return func(s *Store) { s.cache = cache }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a store. The language preference is restored immediately;
// the session is not — call RestoreSession at startup.
func New(backend Backend, identity *Identity, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		identity: identity,
		language: domain.LanguageNepali,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if identity != nil {
		s.language = identity.LoadLanguage()
	}
	return s
}

// begin issues a request token for a slice and marks the store loading.
func (s *Store) begin(sl sliceID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[sl]++
	s.inflight++
	return s.seq[sl]
}

// resolve settles a request. A stale token leaves the cache and error
// state untouched; the latest token applies the update (or records the
// failure) atomically.
func (s *Store) resolve(sl sliceID, tok uint64, err error, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if s.seq[sl] != tok {
		s.logger.Debug("discarding stale response", "slice", int(sl), "token", tok)
		return
	}
	if err != nil {
		s.errMsg = api.UserMessage(err)
		return
	}
	s.errMsg = ""
	if apply != nil {
		apply()
	}
}

func (s *Store) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = api.UserMessage(err)
}

// CreateAccount registers a new account and installs it as the active
// session. Missing fields short-circuit before any network call.
func (s *Store) CreateAccount(ctx context.Context, username, email, password, nativeLanguage string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if nativeLanguage == "" {
		nativeLanguage = string(domain.LanguageEnglish)
	}

	tok := s.begin(sliceAccount)
	user, err := s.backend.CreateUser(ctx, api.CreateUserRequest{
		Username:       username,
		Email:          email,
		Password:       password,
		NativeLanguage: nativeLanguage,
	})
	s.resolve(sliceAccount, tok, err, func() {
		s.user = user
	})
	if err != nil {
		return nil, err
	}

	if s.identity != nil {
		if perr := s.identity.SaveSession(user, ""); perr != nil {
			s.logger.Warn("persist session failed", "error", perr)
		}
	}
	return user, nil
}

// RestoreSession installs the persisted identity, if any, as the active
// (unvalidated) session. Never contacts the network; idempotent.
func (s *Store) RestoreSession() *domain.User {
	if s.identity == nil {
		return nil
	}

	user := s.identity.LoadUser()
	if user == nil {
		if userID, _ := s.identity.Credentials(); userID != "" {
			user = &domain.User{ID: userID}
		}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user
}

// EndSession clears the session and its dependent caches and erases the
// persisted identity. Idempotent.
func (s *Store) EndSession() {
	s.mu.Lock()
	s.user = nil
	s.profile = nil
	s.progress = nil
	s.mu.Unlock()

	if s.identity != nil {
		s.identity.Clear()
	}
}

// FetchLessons replaces the lessons cache with the server's list for a
// level.
func (s *Store) FetchLessons(ctx context.Context, level domain.Level) ([]domain.Lesson, error) {
	if _, err := domain.ParseLevel(string(level)); err != nil {
		return nil, err
	}

	tok := s.begin(sliceLessons)
	lessons, err := s.backend.Lessons(ctx, level)
	s.resolve(sliceLessons, tok, err, func() {
		s.lessons = lessons
	})
	if err != nil {
		return nil, err
	}

	s.mirror(func() error { return s.cache.ReplaceLessons(level, lessons) })
	return lessons, nil
}

// FetchLessonDetail replaces the current-lesson cache.
func (s *Store) FetchLessonDetail(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	tok := s.begin(sliceCurrentLesson)
	lesson, err := s.backend.Lesson(ctx, lessonID)
	s.resolve(sliceCurrentLesson, tok, err, func() {
		s.currentLesson = lesson
	})
	if err != nil {
		return nil, err
	}

	s.mirror(func() error { return s.cache.SaveLesson(*lesson) })
	return lesson, nil
}

// FetchDailyLesson replaces the daily-lesson cache.
func (s *Store) FetchDailyLesson(ctx context.Context, userID string) (*domain.Lesson, error) {
	tok := s.begin(sliceDailyLesson)
	lesson, err := s.backend.DailyLesson(ctx, userID)
	s.resolve(sliceDailyLesson, tok, err, func() {
		s.dailyLesson = lesson
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// CompleteLesson posts a completion for the active session and then
// re-fetches progress so the cache observes the result. The progress
// cache is never patched locally; the server owns it.
func (s *Store) CompleteLesson(ctx context.Context, lessonID string, score int) (*api.Ack, error) {
	user := s.User()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}

	ack, err := s.backend.CompleteLesson(ctx, lessonID, api.CompleteLessonRequest{
		UserID: user.ID,
		Score:  score,
	})
	if err != nil {
		s.setError(err)
		return nil, err
	}

	if _, err := s.FetchProgress(ctx, user.ID); err != nil {
		s.logger.Warn("progress refresh after completion failed", "error", err)
	}
	return ack, nil
}

// SubmitQuizAnswer posts an answer and returns the server verdict. No
// cache slice is touched.
func (s *Store) SubmitQuizAnswer(ctx context.Context, quizID, answer string) (*domain.QuizVerdict, error) {
	verdict, err := s.backend.SubmitQuizAnswer(ctx, quizID, answer)
	if err != nil {
		s.setError(err)
		return nil, err
	}
	return verdict, nil
}

// FetchProfile replaces the profile cache.
func (s *Store) FetchProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	tok := s.begin(sliceProfile)
	profile, err := s.backend.Profile(ctx, userID)
	s.resolve(sliceProfile, tok, err, func() {
		s.profile = profile
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// FetchProgress replaces the progress cache.
func (s *Store) FetchProgress(ctx context.Context, userID string) (*domain.Progress, error) {
	tok := s.begin(sliceProgress)
	progress, err := s.backend.Progress(ctx, userID)
	s.resolve(sliceProgress, tok, err, func() {
		s.progress = progress
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// FetchVocabulary replaces the vocabulary cache, optionally scoped to a
// lesson.
func (s *Store) FetchVocabulary(ctx context.Context, lessonID string) ([]domain.Vocabulary, error) {
	tok := s.begin(sliceVocabulary)
	entries, err := s.backend.Vocabulary(ctx, lessonID)
	s.resolve(sliceVocabulary, tok, err, func() {
		s.vocabulary = entries
	})
	if err != nil {
		return nil, err
	}

	s.mirror(func() error { return s.cache.ReplaceVocabulary(lessonID, entries) })
	return entries, nil
}

// SearchVocabulary returns matches directly to the caller without
// caching them.
func (s *Store) SearchVocabulary(ctx context.Context, term string) ([]domain.Vocabulary, error) {
	if term == "" {
		return nil, domain.ErrEmptySearch
	}

	tok := s.begin(sliceSearch)
	entries, err := s.backend.SearchVocabulary(ctx, term)
	s.resolve(sliceSearch, tok, err, nil)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ToggleLanguage flips the language preference and persists it.
func (s *Store) ToggleLanguage() domain.Language {
	s.mu.Lock()
	if s.language == domain.LanguageNepali {
		s.language = domain.LanguageEnglish
	} else {
		s.language = domain.LanguageNepali
	}
	lang := s.language
	s.mu.Unlock()

	s.persistLanguage(lang)
	return lang
}

// SetLanguage sets the language preference and persists it.
func (s *Store) SetLanguage(lang domain.Language) {
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()

	s.persistLanguage(lang)
}

func (s *Store) persistLanguage(lang domain.Language) {
	if s.identity == nil {
		return
	}
	if err := s.identity.SaveLanguage(lang); err != nil {
		s.logger.Warn("persist language failed", "error", err)
	}
}

// ClearError resets the shared error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// mirror runs a write against the offline cache, best effort.
func (s *Store) mirror(write func() error) {
	if s.cache == nil {
		return
	}
	if err := write(); err != nil {
		s.logger.Warn("offline cache write failed", "error", err)
	}
}

// OfflineLessons returns cached lesson summaries for a level without
// touching the network.
func (s *Store) OfflineLessons(level domain.Level) ([]domain.Lesson, error) {
	if s.cache == nil {
		return nil, sqlite.ErrNotFound
	}
	return s.cache.LessonsByLevel(level)
}

// OfflineVocabulary returns cached vocabulary without touching the
// network.
func (s *Store) OfflineVocabulary(lessonID string) ([]domain.Vocabulary, error) {
	if s.cache == nil {
		return nil, sqlite.ErrNotFound
	}
	return s.cache.Vocabulary(lessonID)
}

// OfflineSearch searches cached vocabulary without touching the network.
func (s *Store) OfflineSearch(term string) ([]domain.Vocabulary, error) {
	if s.cache == nil {
		return nil, sqlite.ErrNotFound
	}
	return s.cache.SearchVocabulary(term)
}

// Accessors. Views read these after triggering fetches.

func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *Store) Lessons() []domain.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lessons
}

func (s *Store) CurrentLesson() *domain.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLesson
}

func (s *Store) DailyLesson() *domain.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dailyLesson
}

func (s *Store) Vocabulary() []domain.Vocabulary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vocabulary
}

func (s *Store) Progress() *domain.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

func (s *Store) Profile() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Loading reports whether any fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// Err returns the current user-facing error message, empty when the last
// settled operation succeeded.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
