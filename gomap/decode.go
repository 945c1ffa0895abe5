// Package gomap converts between values and Go data.
//
// Go data goes through encoding/json, so struct tags, json.Marshaler and
// json.Unmarshaler behave as usual.  Objects keep their member order on
// the way in; on the way out struct fields follow declaration order and
// maps are sorted by key.
package gomap

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/fjson/format"
	"github.com/signadot/fjson/ir"
	"github.com/signadot/fjson/parse"
)

type fromOpts struct {
	atomic bool
	format format.Format
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseAtomic(do.atomic),
		parse.ParseFormat(do.format),
		parse.ParseEager(true),
	}
}

type FromOption func(*fromOpts)

func LoadAtomic(v bool) FromOption          { return func(o *fromOpts) { o.atomic = v } }
func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }

// ValueLoader is implemented by types which load themselves from a
// value rather than through encoding/json.
type ValueLoader interface {
	LoadValue(*ir.Value) error
}

// Load parses d and stores the result in p, which must be a pointer.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	v, err := parse.Parse(string(d), do.parseOpts()...)
	if err != nil {
		return err
	}
	return FromValue(v, p)
}

// FromValue stores v in p, which must be a pointer.
func FromValue(v *ir.Value, p any) error {
	if x, ok := p.(ValueLoader); ok {
		return x.LoadValue(v)
	}
	if err := json.Unmarshal([]byte(v.String()), p); err != nil {
		return fmt.Errorf("could not load %s into %T: %w", v.Type(), p, err)
	}
	return nil
}

// ToValue converts x to a value.
func ToValue(x any) (*ir.Value, error) {
	if v, ok := x.(*ir.Value); ok {
		return v.Clone(), nil
	}
	d, err := json.Marshal(x)
	if err != nil {
		return nil, err
	}
	res := &ir.Value{}
	if err := res.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return res, nil
}
