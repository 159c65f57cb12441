// Package logger provides logging functionality for the gig application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger writing one line per message.
type writerLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewVerboseLogger creates a logger that writes prefixed messages to stderr,
// keeping stdout clean for command output.
func NewVerboseLogger() Logger {
	return &writerLogger{out: os.Stderr, prefix: "[VERBOSE] "}
}

// NewWriterLogger creates a logger writing to w with an optional prefix.
func NewWriterLogger(w io.Writer, prefix string) Logger {
	return &writerLogger{out: w, prefix: prefix}
}

// Logf writes a formatted message with thread safety.
func (l *writerLogger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, l.prefix+format+"\n", args...)
}
