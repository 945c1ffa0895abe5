package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/fjson/ir"
)

// yamlValue converts v to values goccy/go-yaml marshals in order:
// objects become MapSlices.
func yamlValue(v *ir.Value) (any, error) {
	switch v.Type() {
	case ir.ObjectType:
		o, err := v.PeekObject()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return yamlObject(o)
	case ir.ArrayType:
		a, err := v.PeekArray()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return yamlArray(a)
	case ir.StringType:
		return v.Str(), nil
	case ir.BoolType:
		return v.Bool(), nil
	case ir.NumberType:
		if v.IsInteger() {
			if i, err := strconv.ParseInt(v.Text(), 10, 64); err == nil {
				return i, nil
			}
		}
		return v.Float(), nil
	default:
		return nil, nil
	}
}

func yamlObject(o *ir.Object) (any, error) {
	res := make(yaml.MapSlice, 0, o.Size())
	for k, v := range o.All() {
		x, err := yamlValue(v)
		if err != nil {
			return nil, err
		}
		res = append(res, yaml.MapItem{Key: k, Value: x})
	}
	return res, nil
}

func yamlArray(a *ir.Array) (any, error) {
	res := make([]any, 0, a.Size())
	for v := range a.Values() {
		x, err := yamlValue(v)
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}

func writeYAML(x any, w io.Writer, es *EncState) error {
	opts := []yaml.EncodeOption{yaml.Indent(max(1, es.indent))}
	if es.wire {
		opts = append(opts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(x, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
