package sonify

import (
	"io"
	"log"
)

// Logger receives pipeline diagnostics. Element-level fallbacks are reported
// here instead of aborting the run.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NewLogger returns a Logger writing level-prefixed lines to w.
func NewLogger(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

type stdLogger struct {
	l *log.Logger
}

func (s *stdLogger) Infof(format string, args ...any) {
	s.l.Printf("INFO  "+format, args...)
}

func (s *stdLogger) Warnf(format string, args ...any) {
	s.l.Printf("WARN  "+format, args...)
}

func (s *stdLogger) Errorf(format string, args ...any) {
	s.l.Printf("ERROR "+format, args...)
}

// NopLogger returns a Logger that discards all diagnostics.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
