// Package logging provides category file logging for salesdash. The TUI
// owns the terminal, so diagnostics go to per-category files under
// <state-dir>/logs instead of stderr. Logging is off unless debug mode is
// enabled in the config; one-shot CLI subcommands use zap instead.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category identifies a log stream.
type Category string

const (
	CategoryBoot    Category = "boot"    // startup, config, teardown
	CategorySession Category = "session" // login/logout, persistence
	CategoryAPI     Category = "api"     // remote ERP requests
	CategoryView    Category = "view"    // page loads, joins, pagination
)

// Config mirrors the logging section of the app config; it is passed in
// rather than imported to keep this package free of config dependencies.
type Config struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Categories map[string]bool
}

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger writes one category's stream to its own file.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	mu       sync.RWMutex
	loggers  = make(map[Category]*Logger)
	logsDir  string
	cfg      Config
	logLevel = LevelInfo
)

// Initialize sets the logs directory and config. A disabled debug mode is
// a silent no-op: no directory is created and every logger is inert.
func Initialize(stateDir string, c Config) error {
	mu.Lock()
	cfg = c
	switch c.Level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}
	mu.Unlock()

	if !c.DebugMode {
		return nil
	}
	if stateDir == "" {
		return fmt.Errorf("state dir required")
	}

	dir := filepath.Join(stateDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create logs directory: %w", err)
	}
	mu.Lock()
	logsDir = dir
	mu.Unlock()

	Boot("=== salesdash logging initialized ===")
	Boot("logs directory: %s, level: %s", dir, c.Level)
	return nil
}

func enabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if !cfg.DebugMode || logsDir == "" {
		return false
	}
	if cfg.Categories == nil {
		return true
	}
	on, exists := cfg.Categories[string(category)]
	return !exists || on
}

// Get returns the logger for a category, creating its file on first use.
// Disabled categories get an inert logger.
func Get(category Category) *Logger {
	if !enabled(category) {
		return &Logger{category: category}
	}

	mu.RLock()
	l, ok := loggers[category]
	mu.RUnlock()
	if ok {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	name := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), category)
	file, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open log file: %v\n", err)
		return &Logger{category: category}
	}

	l = &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...any) { l.printf(LevelDebug, "DEBUG", format, args...) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) { l.printf(LevelInfo, "INFO", format, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) { l.printf(LevelWarn, "WARN", format, args...) }

// Error always logs when the logger is live.
func (l *Logger) Error(format string, args ...any) { l.printf(LevelError, "ERROR", format, args...) }

func (l *Logger) printf(level int, tag, format string, args ...any) {
	if l.logger == nil || logLevel > level {
		return
	}
	l.logger.Printf("[%s] %s", tag, fmt.Sprintf(format, args...))
}

// CloseAll closes every open log file. Call at shutdown.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Timer measures one operation and logs its duration on Stop.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation.
func StartTimer(category Category, op string) *Timer {
	return &Timer{category: category, op: op, start: time.Now()}
}

// Stop logs the elapsed time at debug level and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// Convenience helpers per category. No-ops when the category is disabled.

func Boot(format string, args ...any)         { Get(CategoryBoot).Info(format, args...) }
func BootError(format string, args ...any)    { Get(CategoryBoot).Error(format, args...) }
func Session(format string, args ...any)      { Get(CategorySession).Info(format, args...) }
func SessionWarn(format string, args ...any)  { Get(CategorySession).Warn(format, args...) }
func SessionError(format string, args ...any) { Get(CategorySession).Error(format, args...) }
func API(format string, args ...any)          { Get(CategoryAPI).Info(format, args...) }
func APIDebug(format string, args ...any)     { Get(CategoryAPI).Debug(format, args...) }
func APIError(format string, args ...any)     { Get(CategoryAPI).Error(format, args...) }
func View(format string, args ...any)         { Get(CategoryView).Info(format, args...) }
func ViewDebug(format string, args ...any)    { Get(CategoryView).Debug(format, args...) }
func ViewWarn(format string, args ...any)     { Get(CategoryView).Warn(format, args...) }
