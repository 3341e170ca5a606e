package logging

import (
	"fmt"
	"sync"
)

// RecordingLogger captures log messages in memory so tests can assert on
// them. Safe for concurrent use by multiple goroutines.
type RecordingLogger struct {
	mu       sync.Mutex
	verbose  []string
	infos    []string
	warnings []string
	errors   []string
}

// NewRecordingLogger creates a new RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Verbose records a verbose message.
func (l *RecordingLogger) Verbose(format string, args ...interface{}) {
	l.append(&l.verbose, format, args)
}

// Info records an info message.
func (l *RecordingLogger) Info(format string, args ...interface{}) {
	l.append(&l.infos, format, args)
}

// Warn records a warning message.
func (l *RecordingLogger) Warn(format string, args ...interface{}) {
	l.append(&l.warnings, format, args)
}

// Error records an error message.
func (l *RecordingLogger) Error(format string, args ...interface{}) {
	l.append(&l.errors, format, args)
}

// Infos returns all recorded info messages.
func (l *RecordingLogger) Infos() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.infos...)
}

// Warnings returns all recorded warning messages.
func (l *RecordingLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warnings...)
}

// Errors returns all recorded error messages.
func (l *RecordingLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}

func (l *RecordingLogger) append(dst *[]string, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		*dst = append(*dst, fmt.Sprintf(format, args...))
	} else {
		*dst = append(*dst, format)
	}
}
