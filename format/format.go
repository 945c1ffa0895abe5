// Package format names the document formats fjson reads and writes.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name     string
	aliases  []string
	suffixes []string
}

// formats is indexed by Format, in preference order.  The first suffix
// is the one written.
var formats = []formatInfo{
	JSONFormat: {name: "json", aliases: []string{"j"}, suffixes: []string{".json"}},
	YAMLFormat: {name: "yaml", aliases: []string{"y", "yml"}, suffixes: []string{".yaml", ".yml"}},
}

// ParseFormat returns the format named v, by full name or alias, ignoring
// case.
func ParseFormat(v string) (Format, error) {
	v = strings.ToLower(v)
	for f, info := range formats {
		if v == info.name {
			return Format(f), nil
		}
		for _, a := range info.aliases {
			if v == a {
				return Format(f), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(formats) }

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(formats[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension written for f, with the dot.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return formats[f].suffixes[0]
}

// FromPath returns the format named by the extension of path, if any.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for f, info := range formats {
		for _, s := range info.suffixes {
			if ext == s {
				return Format(f), true
			}
		}
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	res := make([]Format, len(formats))
	for i := range formats {
		res[i] = Format(i)
	}
	return res
}
