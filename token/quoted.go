package token

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// closingQuote returns the index in d of the first '"' after d[0] which is
// not escaped by an odd run of backslashes, or -1.
func closingQuote(d string) int {
	bs := 0
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			bs++
			continue
		case '"':
			if bs%2 == 0 {
				return i
			}
		}
		bs = 0
	}
	return -1
}

// Escape returns the wire form of v, suitable for placing between double
// quotes.
func Escape(v string) string {
	if !needsEscape(v) {
		return v
	}
	var b strings.Builder
	b.Grow(len(v) + 2)
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte("0123456789abcdef"[c>>4])
				b.WriteByte("0123456789abcdef"[c&0xf])
				continue
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

func needsEscape(v string) bool {
	for i := 0; i < len(v); i++ {
		if c := v[i]; c == '"' || c == '\\' || c < 0x20 {
			return true
		}
	}
	return false
}

// Quote returns v escaped and wrapped in double quotes.
func Quote(v string) string {
	return `"` + Escape(v) + `"`
}

// Unescape decodes the backslash escapes of wire text v.  Unknown or
// malformed escapes are kept literally.
func Unescape(v string) string {
	i := strings.IndexByte(v, '\\')
	if i < 0 {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	b.WriteString(v[:i])
	for i < len(v) {
		c := v[i]
		if c != '\\' || i == len(v)-1 {
			b.WriteByte(c)
			i++
			continue
		}
		switch e := v[i+1]; e {
		case '"', '\\', '/':
			b.WriteByte(e)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, n := unicodeEscape(v[i:])
			if n == 0 {
				b.WriteString(v[i : i+2])
				break
			}
			b.WriteRune(r)
			i += n
			continue
		default:
			b.WriteString(v[i : i+2])
		}
		i += 2
	}
	return b.String()
}

// unicodeEscape decodes a \uXXXX escape at the start of d, joining a
// following low surrogate escape if present.  n is the number of bytes
// consumed, 0 if d does not start with a valid escape.
func unicodeEscape(d string) (rune, int) {
	r1, ok := hex4(d)
	if !ok {
		return 0, 0
	}
	if !utf16.IsSurrogate(r1) {
		return r1, 6
	}
	if r2, ok := hex4(d[6:]); ok {
		if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
			return r, 12
		}
	}
	return utf8.RuneError, 6
}

func hex4(d string) (rune, bool) {
	if len(d) < 6 || d[0] != '\\' || d[1] != 'u' {
		return 0, false
	}
	v, err := strconv.ParseUint(d[2:6], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// Compact returns raw with all white space outside of quoted strings
// removed.
func Compact(raw string) string {
	if !strings.ContainsAny(raw, " \t\n\r\v\f") {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	inQuote, bs := false, 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if inQuote {
			b.WriteByte(c)
			switch {
			case c == '\\':
				bs++
				continue
			case c == '"' && bs%2 == 0:
				inQuote = false
			}
			bs = 0
			continue
		}
		if isSpace(c) {
			continue
		}
		if c == '"' {
			inQuote = true
			bs = 0
		}
		b.WriteByte(c)
	}
	return b.String()
}
