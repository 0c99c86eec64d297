// Package logger provides the levelled console logger used across the tool.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel defines log severity levels
type LogLevel int

const (
	// Log levels from least to most restrictive
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Interface is the logging surface the library packages depend on.
type Interface interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(format string, args ...interface{}) {}
func (Nop) Info(format string, args ...interface{})  {}
func (Nop) Warn(format string, args ...interface{})  {}
func (Nop) Error(format string, args ...interface{}) {}

type levelStyle struct {
	name  string
	paint func(format string, a ...interface{}) string
}

var styles = map[LogLevel]levelStyle{
	LevelDebug: {"DEBUG", color.CyanString},
	LevelInfo:  {"INFO", color.BlueString},
	LevelWarn:  {"WARN", color.YellowString},
	LevelError: {"ERROR", color.RedString},
}

// Logger writes timestamped, levelled lines to an io.Writer.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	useColors bool
	level     LogLevel
	now       func() time.Time
}

// New creates a Logger. verbose lowers the level to Debug.
func New(out io.Writer, verbose bool, useColors bool) *Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}
	return &Logger{
		out:       out,
		useColors: useColors,
		level:     level,
		now:       time.Now,
	}
}

// WithLevel sets the log level and returns the logger
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.level = level
	return l
}

// SetLevel sets the level from its name; unknown names mean Info.
func (l *Logger) SetLevel(levelStr string) {
	l.WithLevel(ParseLevel(levelStr))
}

// Level reports the active level.
func (l *Logger) Level() LogLevel {
	return l.level
}

// IsDebug reports whether debug lines are written.
func (l *Logger) IsDebug() bool {
	return l.level <= LevelDebug
}

// ParseLevel converts a level name to a LogLevel.
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args...) }

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	style := styles[level]
	prefix := style.name
	if l.useColors {
		prefix = style.paint(prefix)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s %s] %s\n", l.now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}
