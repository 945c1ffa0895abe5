package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
)

// NewWriterSink returns a sink writing one line per diagnostic to w, in the
// form
//
//	[ERROR][Json]: message
//
// With colored set, the level is colored red, yellow or cyan.
func NewWriterSink(w io.Writer, colored bool) Sink {
	ws := &writerSink{w: w}
	if colored {
		ws.colors = map[Level]*color.Color{
			Error:   color.New(color.FgRed, color.Bold),
			Warning: color.New(color.FgYellow),
			Info:    color.New(color.FgCyan),
		}
		for _, c := range ws.colors {
			c.EnableColor()
		}
	}
	return ws
}

type writerSink struct {
	w      io.Writer
	colors map[Level]*color.Color
}

func (ws *writerSink) Log(level Level, tag, msg string) {
	lvl := "[" + level.String() + "]"
	if c := ws.colors[level]; c != nil {
		lvl = c.Sprint(lvl)
	}
	fmt.Fprintf(ws.w, "%s[%s]: %s\n", lvl, tag, msg)
}

// NewSlogSink returns a sink logging through l, with the tag as a "tag"
// attribute.
func NewSlogSink(l *slog.Logger) Sink {
	return &slogSink{l: l}
}

type slogSink struct {
	l *slog.Logger
}

func (s *slogSink) Log(level Level, tag, msg string) {
	var sl slog.Level
	switch level {
	case Error:
		sl = slog.LevelError
	case Warning:
		sl = slog.LevelWarn
	default:
		sl = slog.LevelInfo
	}
	s.l.Log(context.Background(), sl, msg, slog.String("tag", tag))
}

// Entry is a recorded diagnostic.
type Entry struct {
	Level Level
	Tag   string
	Msg   string
}

// Recorder is a sink which keeps every diagnostic it receives.
type Recorder struct {
	Entries []Entry
}

func (r *Recorder) Log(level Level, tag, msg string) {
	r.Entries = append(r.Entries, Entry{Level: level, Tag: tag, Msg: msg})
}

// Count returns the number of recorded entries at level.
func (r *Recorder) Count(level Level) int {
	n := 0
	for i := range r.Entries {
		if r.Entries[i].Level == level {
			n++
		}
	}
	return n
}

// Reset forgets all entries.
func (r *Recorder) Reset() {
	r.Entries = r.Entries[:0]
}
