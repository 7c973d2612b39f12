package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	logFile *os.File
	logPath string
	output  io.Writer

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for an optional log file, including filename.
// Creates all necessary parent directories. Ignored in the browser build,
// which only has the console.
func SetLogPath(path string) {
	logPath = path
}

// SetLogOutput replaces stdout as the console destination. Must be called
// before the first logger is requested.
func SetLogOutput(w io.Writer) {
	output = w
}

func setup() {
	setupOnce.Do(func() {
		console := output
		if console == nil {
			console = os.Stdout
		}
		multiWriter = console

		if logPath == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}
		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			return
		}
		multiWriter = io.MultiWriter(console, logFile)
	})
}

// newHandler writes text for a human at a terminal and JSON everywhere
// else, including the browser console and log files.
func newHandler(level *slog.LevelVar) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := multiWriter.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return slog.NewTextHandler(multiWriter, opts)
	}
	return slog.NewJSONHandler(multiWriter, opts)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		setup()
		logger = slog.New(newHandler(levelVar))
	})
	return logger
}

// GetInternalLogger returns the logger used by the router and the
// framework plumbing. It defaults to errors only.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		setup()
		internalLogger = slog.New(newHandler(internalLevelVar)).With("component", "waypoint")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
