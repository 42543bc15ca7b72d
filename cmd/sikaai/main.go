package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sikaai/sikaai/internal/api"
	"github.com/sikaai/sikaai/internal/config"
	"github.com/sikaai/sikaai/internal/store"
	"github.com/sikaai/sikaai/internal/storage/local"
	"github.com/sikaai/sikaai/internal/storage/sqlite"
)

// Version is set at build time via ldflags
var Version = "dev"

const cacheFileName = "cache.db"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "signup":
		err = cmdSignup(os.Args[2:])
	case "logout":
		err = cmdLogout()
	case "whoami":
		err = cmdWhoami()
	case "lessons":
		err = cmdLessons(os.Args[2:])
	case "lesson":
		err = cmdLesson(os.Args[2:])
	case "daily":
		err = cmdDaily()
	case "complete":
		err = cmdComplete(os.Args[2:])
	case "quiz":
		err = cmdQuiz(os.Args[2:])
	case "vocab":
		err = cmdVocab(os.Args[2:])
	case "search":
		err = cmdSearch(os.Args[2:])
	case "progress":
		err = cmdProgress()
	case "profile":
		err = cmdProfile()
	case "lang":
		err = cmdLang(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("sikaai %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Sikaai - English learning from the terminal

Usage:
  sikaai <command> [arguments]

Account Commands:
  signup          Create an account and start a session
  logout          End the session and clear local identity
  whoami          Show the active session

Lesson Commands:
  lessons         List lessons (--level A1, --offline)
  lesson <id>     Show full lesson content and vocabulary
  daily           Show today's assigned lesson
  complete        Mark a lesson complete: complete <id> <score>
  quiz            Answer a quiz: quiz <id> <answer>

Vocabulary Commands:
  vocab           List vocabulary (--lesson <id>, --offline)
  search <term>   Search vocabulary (--offline)

Progress Commands:
  progress        Show learning statistics and streak
  profile         Show earned badges

Settings:
  lang [en|ne]    Show or set the display language

Other:
  help            Show this help message
  version         Show version information

Examples:
  sikaai signup learner me@example.com
  sikaai lessons --level A1
  sikaai complete lesson-42 85
  sikaai vocab --offline`)
}

// app wires the configuration, transport, persistence and store for one
// command invocation.
type app struct {
	cfg   *config.Config
	store *store.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	ucfg, err := config.LoadUserConfig(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	ucfg.Apply(cfg)

	logger := newLogger(cfg)

	localStore, err := local.NewStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	identity := store.NewIdentity(localStore, logger)

	client := api.NewClient(api.Config{
		BaseURL:        cfg.APIBaseURL,
		Timeout:        cfg.RequestTimeout,
		RetryAttempts:  cfg.RetryAttempts,
		RetryBaseDelay: cfg.RetryBaseDelay,
		Credentials:    identity,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "Session expired. Please sign up or log in again.")
		},
		Logger: logger,
	})

	opts := []store.Option{store.WithLogger(logger)}
	if cfg.OfflineCache {
		cache, err := sqlite.NewCache(filepath.Join(cfg.DataDir, cacheFileName))
		if err != nil {
			logger.Warn("offline cache unavailable", "error", err)
		} else {
			opts = append(opts, store.WithOfflineCache(cache))
		}
	}

	st := store.New(client, identity, opts...)
	st.RestoreSession()

	return &app{cfg: cfg, store: st}, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
