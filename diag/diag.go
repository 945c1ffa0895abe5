// Package diag is the leveled diagnostic sink used by the fjson parser.
//
// A Sink is attached process wide with [Attach] and removed with [Detach].
// While no sink is attached, diagnostics are dropped.  Only parsing and
// materialization report here; mutating documents never does.
package diag

import (
	"errors"
	"fmt"
	"sync"
)

// Level is the severity of a diagnostic.
type Level int

const (
	Error Level = iota
	Warning
	Info
)

func (l Level) String() string {
	switch l {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Sink receives diagnostics.
type Sink interface {
	Log(level Level, tag, msg string)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(level Level, tag, msg string)

func (f SinkFunc) Log(level Level, tag, msg string) { f(level, tag, msg) }

var (
	mu       sync.RWMutex
	attached Sink
)

// Attach makes s the process wide sink, replacing any previous one.
func Attach(s Sink) {
	mu.Lock()
	defer mu.Unlock()
	attached = s
}

// Detach removes the process wide sink.
func Detach() {
	Attach(nil)
}

// Attached returns the process wide sink, or nil.
func Attached() Sink {
	mu.RLock()
	defer mu.RUnlock()
	return attached
}

// Log sends a diagnostic to the attached sink, if any.
func Log(level Level, tag, msg string) {
	LogTo(nil, level, tag, msg)
}

// LogTo sends a diagnostic to s, or to the attached sink if s is nil.
func LogTo(s Sink, level Level, tag, msg string) {
	if s == nil {
		s = Attached()
	}
	if s == nil {
		return
	}
	s.Log(level, tag, msg)
}

func Errorf(tag, format string, args ...any) {
	Log(Error, tag, fmt.Sprintf(format, args...))
}

func Warnf(tag, format string, args ...any) {
	Log(Warning, tag, fmt.Sprintf(format, args...))
}

func Infof(tag, format string, args ...any) {
	Log(Info, tag, fmt.Sprintf(format, args...))
}

// Report logs err to s (or the attached sink if s is nil).  Errors which
// have a Notice method returning true are logged at Info level, others at
// Error level.  A nil err is not logged.
func Report(s Sink, tag string, err error) {
	if err == nil {
		return
	}
	LogTo(s, LevelOf(err), tag, err.Error())
}

// LevelOf returns the level at which err is reported.
func LevelOf(err error) Level {
	var n interface{ Notice() bool }
	if errors.As(err, &n) && n.Notice() {
		return Info
	}
	return Error
}
