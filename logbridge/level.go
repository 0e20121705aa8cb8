package logbridge

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Level is the verbosity of a log record. Lower values are more severe.
type Level int32

const (
	LevelError Level = 0
	LevelWarn  Level = 1
	LevelInfo  Level = 2
	LevelDebug Level = 3
	LevelTrace Level = 4
)

// LevelTraceSlog is the slog level used for TRACE records.
const LevelTraceSlog = slog.LevelDebug - 4

var (
	// ErrInvalidLevel is returned when a level name or code is not recognised.
	ErrInvalidLevel = errors.New("invalid log level")
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return fmt.Sprintf("LEVEL(%d)", int32(l))
	}
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelError && l <= LevelTrace
}

// Enabled reports whether a record at level l passes the most verbose
// allowed level.
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// ParseLevel converts a level name into a Level.
func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, value)
	}
}

// FromSlog maps a slog level onto the nearest Level at or below its severity.
func FromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Slog returns the slog level for l.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return LevelTraceSlog
	}
}
