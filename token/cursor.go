package token

import "strings"

// Cursor is a read-only view of a window [start, end) of a text buffer.
//
// The zero Cursor is an empty view.
type Cursor struct {
	d          string
	start, end int
}

// NewCursor returns a Cursor over all of d.
func NewCursor(d string) Cursor {
	return Cursor{d: d, end: len(d)}
}

// Len returns the length of the window.
func (c Cursor) Len() int { return c.end - c.start }

// Offset returns the position of the window start in the underlying text.
func (c Cursor) Offset() int { return c.start }

// At returns the byte at index i of the window, or 0 if i is out of range.
func (c Cursor) At(i int) byte {
	if i < 0 || i >= c.Len() {
		return 0
	}
	return c.d[c.start+i]
}

// String returns the window contents.
func (c Cursor) String() string { return c.d[c.start:c.end] }

// Trim returns the window without leading and trailing white space.
func (c Cursor) Trim() Cursor {
	for c.start < c.end && isSpace(c.d[c.start]) {
		c.start++
	}
	for c.end > c.start && isSpace(c.d[c.end-1]) {
		c.end--
	}
	return c
}

// TrimLeft returns the window without leading white space.
func (c Cursor) TrimLeft() Cursor {
	for c.start < c.end && isSpace(c.d[c.start]) {
		c.start++
	}
	return c
}

// Substring returns the sub window [start, end) relative to c.  A negative
// end means the end of the window.  Out of range bounds are clamped.
func (c Cursor) Substring(start, end int) Cursor {
	n := c.Len()
	if end < 0 || end > n {
		end = n
	}
	start = max(0, min(start, end))
	return Cursor{d: c.d, start: c.start + start, end: c.start + end}
}

// Advance returns the window with its first n bytes removed.
func (c Cursor) Advance(n int) Cursor {
	return c.Substring(n, -1)
}

// IndexOf returns the index relative to the window of the first occurrence
// of needle at or after from, or -1.
func (c Cursor) IndexOf(needle string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > c.Len() {
		return -1
	}
	i := strings.Index(c.d[c.start+from:c.end], needle)
	if i < 0 {
		return -1
	}
	return i + from
}

// StartsWith reports whether the window begins with s.
func (c Cursor) StartsWith(s string) bool {
	return strings.HasPrefix(c.String(), s)
}

// EndsWith reports whether the window ends with s.
func (c Cursor) EndsWith(s string) bool {
	return strings.HasSuffix(c.String(), s)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
