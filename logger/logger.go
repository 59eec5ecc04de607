// Package logger provides leveled logging shared by the game and the
// leaderboard server. Every component receives a *Logger explicitly.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes prefixed info, warning and error lines.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger writing info and warnings to stdout and errors to
// stderr, each line tagged with name.
func New(name string) *Logger {
	return NewWithWriters(name, os.Stdout, os.Stderr)
}

// NewWithWriters is New with explicit destinations.
func NewWithWriters(name string, out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(out, "["+name+"-INFO] ", flags),
		warnLogger:  log.New(out, "["+name+"-WARN] ", flags),
		errorLogger: log.New(errOut, "["+name+"-ERROR] ", flags),
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return NewWithWriters("discard", io.Discard, io.Discard)
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.output(l.infoLogger, msg)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.output(l.warnLogger, msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.output(l.errorLogger, msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.output(l.infoLogger, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.output(l.warnLogger, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.output(l.errorLogger, fmt.Sprintf(format, args...))
}

// Event logs a gameplay or leaderboard event in a greppable form.
func (l *Logger) Event(eventType string, actor string, details string) {
	l.output(l.infoLogger, fmt.Sprintf("[EVENT:%s] Actor:%s | %s", eventType, actor, details))
}

func (l *Logger) output(dst *log.Logger, msg string) {
	if l == nil || dst == nil {
		return
	}
	_ = dst.Output(3, msg)
}
