// Package logging provides the levelled logger shared by the builder, the
// batch runner and the command-line tools.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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
	}
	return "UNKNOWN"
}

// Logger is what the rest of the module logs through.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// StdLogger sends DEBUG and INFO to one writer and WARN and ERROR to
// another, each line tagged with the tool name.
type StdLogger struct {
	tag   string
	debug atomic.Bool
	out   *log.Logger
	err   *log.Logger
}

// New logs to stdout and stderr.
func New(name string, debug bool) *StdLogger {
	return NewWithWriters(name, debug, os.Stdout, os.Stderr)
}

// NewWithWriters logs to out and errOut. An empty name leaves lines untagged.
func NewWithWriters(name string, debug bool, out, errOut io.Writer) *StdLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	l := &StdLogger{
		out: log.New(out, "", flags),
		err: log.New(errOut, "", flags),
	}
	if name != "" {
		l.tag = "[" + name + "] "
	}
	l.debug.Store(debug)
	return l
}

func (l *StdLogger) DebugEnabled() bool    { return l.debug.Load() }
func (l *StdLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }

func (l *StdLogger) logf(level Level, format string, args ...any) {
	if level == LevelDebug && !l.DebugEnabled() {
		return
	}
	dst := l.out
	if level >= LevelWarn {
		dst = l.err
	}
	dst.Printf("%s%s: %s", l.tag, level, fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *StdLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

type nop struct{}

func (nop) DebugEnabled() bool    { return false }
func (nop) SetDebug(bool)         {}
func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}
