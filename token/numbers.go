package token

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal digits kept by FormatFloat
// when no precision is given.
const DefaultPrecision = 6

// ValidateNumber checks s against the number grammar:
//
//   - no leading '0' unless it is immediately followed by '.'
//   - the first byte is a digit or '-'
//   - at most one '.', before any exponent
//   - at most one 'e' or 'E'
//   - '+' and '-' only at the start or right after the exponent marker
//   - every other byte is a digit
//
// The returned error is ErrLiteral, ErrNumberLeadingZero or ErrNumber.
func ValidateNumber(s string) error {
	if len(s) == 0 {
		return ErrLiteral
	}
	if len(s) > 1 {
		if s[0] == '0' && s[1] != '.' {
			return ErrNumberLeadingZero
		}
		if !asciiDigit(s[0]) && s[0] != '-' {
			return ErrLiteral
		}
	} else if !asciiDigit(s[0]) {
		return ErrLiteral
	}
	dots, exps := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			dots++
			if dots > 1 || exps > 0 {
				return ErrNumber
			}
		case 'e', 'E':
			exps++
			if exps > 1 {
				return ErrNumber
			}
		case '+', '-':
			if i != 0 && s[i-1] != 'e' && s[i-1] != 'E' {
				return ErrNumber
			}
		default:
			if !asciiDigit(c) {
				return ErrNumber
			}
		}
	}
	return nil
}

// IsFloatText reports whether number text has a fraction or an exponent.
func IsFloatText(s string) bool {
	return strings.ContainsAny(s, ".eE")
}

// FormatFloat renders f with prec decimal digits, then strips trailing
// zeros after the decimal point and a trailing bare point.
//
//	FormatFloat(3.5, 6) == "3.5"
//	FormatFloat(4, 6)   == "4"
//
// A negative prec means DefaultPrecision.  NaN and infinities have no text
// form in JSON; FormatFloat returns "null" for them.
func FormatFloat(f float64, prec int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if prec < 0 {
		prec = DefaultPrecision
	}
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// ParseFloatPrefix parses the longest prefix of s which is a decimal
// number, after leading white space.  It returns 0 if there is none.
func ParseFloatPrefix(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	n := numberPrefix(s)
	if n == 0 {
		return 0
	}
	// out of range values come back as ±Inf or 0 along with the error
	f, _ := strconv.ParseFloat(s[:n], 64)
	return f
}

// numberPrefix returns the length of the leading
// [sign] digits [. digits] [e [sign] digits] run of d.
func numberPrefix(d string) int {
	i := 0
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	digits := asciiDigits(d[i:])
	i += digits
	f := fract(d[i:])
	if digits == 0 && f == 0 {
		return 0
	}
	i += f
	i += exp(d[i:])
	return i
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func exp(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d string) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits
		return 0
	}
	return n + 1
}
