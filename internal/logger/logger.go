// Package logger provides the levelled stderr logger used by the scytale CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level controls output verbosity.
type Level int

const (
	LevelQuiet   Level = 0
	LevelNormal  Level = 1
	LevelVerbose Level = 2
	LevelDebug   Level = 3
)

// Logger writes levelled diagnostics to stderr. Cipher output goes to stdout
// and never through the logger. Debug verbosity adds timestamps.
type Logger struct {
	level      Level
	output     io.Writer
	mu         sync.Mutex
	timestamps bool
}

// New returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).
func New(verbosity int) *Logger {
	return &Logger{
		level:      Level(verbosity),
		output:     os.Stderr,
		timestamps: verbosity >= int(LevelDebug),
	}
}

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) { l.output = w }

// Info prints when verbosity >= 1. Prefixed with [INF].
func (l *Logger) Info(format string, args ...any) {
	if l.level >= LevelNormal {
		l.write("INF", format, args...)
	}
}

// Warn prints when verbosity >= 1. Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...any) {
	if l.level >= LevelNormal {
		l.write("WRN", format, args...)
	}
}

// Verbose prints when verbosity >= 2. Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...any) {
	if l.level >= LevelVerbose {
		l.write("VRB", format, args...)
	}
}

// Debug prints when verbosity >= 3. Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...any) {
	if l.level >= LevelDebug {
		l.write("DBG", format, args...)
	}
}

// Error always prints regardless of verbosity. Prefixed with [ERR].
func (l *Logger) Error(format string, args ...any) {
	l.write("ERR", format, args...)
}

func (l *Logger) write(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if l.timestamps {
		ts := time.Now().Format("15:04:05.000")
		fmt.Fprintf(l.output, "%s [%s] %s\n", ts, level, msg)
	} else {
		fmt.Fprintf(l.output, "[%s] %s\n", level, msg)
	}
}
