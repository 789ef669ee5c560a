package mock

import (
	"sync"
)

type LogEntry struct {
	Level   string
	Message string
	Err     error
	Fields  map[string]interface{}
}

// Logger records every entry so tests can assert on warnings and errors.
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) record(level string, err error, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Err: err, Fields: fields})
}

func (l *Logger) Entries(level string) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, 0)
	for _, e := range l.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (l *Logger) Info(msg string) { l.record("info", nil, msg, nil) }

func (l *Logger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.record("info", nil, msg, fields)
}

func (l *Logger) Error(err error, msg string) { l.record("error", err, msg, nil) }

func (l *Logger) ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	l.record("error", err, msg, fields)
}

func (l *Logger) Debug(msg string) { l.record("debug", nil, msg, nil) }

func (l *Logger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.record("debug", nil, msg, fields)
}

func (l *Logger) Warn(msg string) { l.record("warn", nil, msg, nil) }

func (l *Logger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.record("warn", nil, msg, fields)
}
