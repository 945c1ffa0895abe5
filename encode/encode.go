// Package encode writes fjson values as JSON or YAML text.
//
// JSON output is either pretty printed, with one member per line indented
// by a fixed unit per level, or compact (see [EncodeWire]).  Deferred
// containers are rendered without being materialized.
package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/fjson/format"
	"github.com/signadot/fjson/ir"
)

// DefaultIndent is the default indent unit.
const DefaultIndent = 2

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: DefaultIndent,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes v to w.  Pretty printed output ends with a newline;
// wire output does not.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrEncoding)
	}
	return run(w, newState(opts),
		func(buf *bytes.Buffer, es *EncState) error { return encode(v, buf, es) },
		func() (any, error) { return yamlValue(v) })
}

// EncodeObject writes o to w as Encode does.
func EncodeObject(o *ir.Object, w io.Writer, opts ...EncodeOption) error {
	return run(w, newState(opts),
		func(buf *bytes.Buffer, es *EncState) error { return encodeObject(o, buf, es) },
		func() (any, error) { return yamlObject(o) })
}

// EncodeArray writes a to w as Encode does.
func EncodeArray(a *ir.Array, w io.Writer, opts ...EncodeOption) error {
	return run(w, newState(opts),
		func(buf *bytes.Buffer, es *EncState) error { return encodeArray(a, buf, es) },
		func() (any, error) { return yamlArray(a) })
}

func run(w io.Writer, es *EncState, enc func(*bytes.Buffer, *EncState) error, yv func() (any, error)) error {
	if es.format.IsYAML() {
		x, err := yv()
		if err != nil {
			return err
		}
		return writeYAML(x, w, es)
	}
	buf := bytes.NewBuffer(nil)
	if err := enc(buf, es); err != nil {
		return err
	}
	if !es.wire {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encode(v *ir.Value, buf *bytes.Buffer, es *EncState) error {
	switch v.Type() {
	case ir.ObjectType:
		o, err := v.PeekObject()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return encodeObject(o, buf, es)
	case ir.ArrayType:
		a, err := v.PeekArray()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return encodeArray(a, buf, es)
	case ir.StringType:
		writeColor(buf, es, ir.StringType, ValueColor, `"`+v.Text()+`"`)
	default:
		writeColor(buf, es, v.Type(), ValueColor, v.Text())
	}
	return nil
}

func encodeObject(o *ir.Object, buf *bytes.Buffer, es *EncState) error {
	if o.IsEmpty() {
		writeColor(buf, es, ir.ObjectType, SepColor, "{}")
		return nil
	}
	writeColor(buf, es, ir.ObjectType, SepColor, "{")
	es.depth++
	for i := range o.Size() {
		if i > 0 {
			writeColor(buf, es, ir.ObjectType, SepColor, ",")
		}
		k, _ := o.RawKeyAt(i)
		v, _ := o.At(i)
		writeNL(buf, es)
		writeColor(buf, es, ir.ObjectType, FieldColor, `"`+k+`"`)
		writeColor(buf, es, ir.ObjectType, SepColor, ":")
		if err := encode(v, buf, es); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(buf, es)
	writeColor(buf, es, ir.ObjectType, SepColor, "}")
	return nil
}

func encodeArray(a *ir.Array, buf *bytes.Buffer, es *EncState) error {
	if a.IsEmpty() {
		writeColor(buf, es, ir.ArrayType, SepColor, "[]")
		return nil
	}
	writeColor(buf, es, ir.ArrayType, SepColor, "[")
	es.depth++
	for i, v := range a.All() {
		if i > 0 {
			writeColor(buf, es, ir.ArrayType, SepColor, ",")
		}
		writeNL(buf, es)
		if err := encode(v, buf, es); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(buf, es)
	writeColor(buf, es, ir.ArrayType, SepColor, "]")
	return nil
}

func writeNL(buf *bytes.Buffer, es *EncState) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func writeColor(buf *bytes.Buffer, es *EncState, t ir.Type, a ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	buf.WriteString(s)
}
