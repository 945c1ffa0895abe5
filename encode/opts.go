package encode

import "github.com/signadot/fjson/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Indent sets the indent unit in spaces, 2 by default.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(0, n) }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire selects compact single line output.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
