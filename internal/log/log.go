// Package log provides a leveled, categorized file logger for the TUI.
// Because the terminal is owned by bubbletea, all diagnostics are written
// to a log file instead of stdout/stderr.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level controls which entries are written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the bracketed level tag used in log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category identifies the subsystem a log entry originates from.
type Category string

const (
	CatUI     Category = "ui"
	CatAPI    Category = "api"
	CatAI     Category = "ai"
	CatDraft  Category = "draft"
	CatServer Category = "server"
	CatConfig Category = "config"
)

var (
	mu       sync.Mutex
	out      *os.File
	minLevel = LevelDebug
)

// Init opens the log file at path, creating parent directories as needed.
// It returns a cleanup function that flushes and closes the file.
// Logging before Init (or after cleanup) is a no-op.
func Init(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	mu.Lock()
	out = f
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		_ = f.Sync()
		_ = f.Close()
		if out == f {
			out = nil
		}
	}, nil
}

// ParseLevel maps a level name to its Level, defaulting to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetLevel sets the minimum level that will be written.
func SetLevel(l Level) {
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// Debug writes a debug-level entry.
func Debug(cat Category, msg string, kv ...any) { write(LevelDebug, cat, msg, kv...) }

// Info writes an info-level entry.
func Info(cat Category, msg string, kv ...any) { write(LevelInfo, cat, msg, kv...) }

// Warn writes a warn-level entry.
func Warn(cat Category, msg string, kv ...any) { write(LevelWarn, cat, msg, kv...) }

// Error writes an error-level entry.
func Error(cat Category, msg string, kv ...any) { write(LevelError, cat, msg, kv...) }

func write(level Level, cat Category, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()

	if out == nil || level < minLevel {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] [")
	b.WriteString(string(cat))
	b.WriteString("] ")
	b.WriteString(msg)

	// Trailing unpaired key is written as-is so it isn't silently dropped.
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 == 1 {
		fmt.Fprintf(&b, " %v", kv[len(kv)-1])
	}
	b.WriteByte('\n')

	_, _ = out.WriteString(b.String())
}
