package parse

import (
	"github.com/signadot/fjson/diag"
	"github.com/signadot/fjson/format"
	"github.com/signadot/fjson/ir"
)

type parseOpts struct {
	sink   diag.Sink
	tag    string
	atomic bool
	eager  bool
	format format.Format
}

type ParseOption func(*parseOpts)

// ParseSink reports diagnostics to s rather than to the attached sink.
func ParseSink(s diag.Sink) ParseOption {
	return func(o *parseOpts) { o.sink = s }
}

// ParseTag sets the diagnostic tag, ir.DiagTag by default.
func ParseTag(tag string) ParseOption {
	return func(o *parseOpts) { o.tag = tag }
}

// ParseAtomic makes parsing all or nothing: on error the destination is
// left as it was.  By default, members parsed before an error are kept.
func ParseAtomic(v bool) ParseOption {
	return func(o *parseOpts) { o.atomic = v }
}

// ParseEager materializes and checks every nested container during the
// parse instead of on first access.
func ParseEager(v bool) ParseOption {
	return func(o *parseOpts) { o.eager = v }
}

// ParseFormat sets the input format.  YAML input is converted to JSON
// before parsing, keeping mapping order.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}

func newOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{tag: ir.DiagTag}
	for _, f := range opts {
		f(res)
	}
	return res
}
