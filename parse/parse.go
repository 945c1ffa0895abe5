// Package parse reads JSON documents into fjson's ir.
//
// A document is an object or an array.  The top level members are
// scanned and checked when parsing; nested containers are kept as text
// and checked when first accessed, unless [ParseEager] is given.
//
// Every failure is reported to the diagnostic sink (see package diag) and
// returned.  Text holding an empty container is reported as a notice and
// is not an error.
package parse

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/fjson/debug"
	"github.com/signadot/fjson/diag"
	"github.com/signadot/fjson/format"
	"github.com/signadot/fjson/ir"
	"github.com/signadot/fjson/token"
)

// Into parses text into obj or arr, whichever matches the text.  Either
// may be nil; text naming a nil destination is an error.  Members are
// added in order, replacing existing object keys in place.
func Into(text string, obj *ir.Object, arr *ir.Array, opts ...ParseOption) error {
	o := newOpts(opts)
	text, err := o.input(text)
	if err != nil {
		return err
	}
	kind, _ := token.Detect(text)
	if kind == token.KindObject && obj == nil || kind == token.KindArray && arr == nil {
		kind = token.KindNull
	}
	// err is from the top level scan, nErr from nested containers.
	var nErr error
	switch kind {
	case token.KindObject:
		dst := obj
		if o.atomic {
			dst = ir.NewObject()
		}
		err = ir.DecodeObject(text, dst)
		if err == nil && o.eager {
			nErr = eagerObject(dst, o)
		}
		if o.atomic && err == nil && nErr == nil {
			obj.Extend(dst)
		}
	case token.KindArray:
		dst := arr
		if o.atomic {
			dst = ir.NewArray()
		}
		err = ir.DecodeArray(text, dst)
		if err == nil && o.eager {
			nErr = eagerArray(dst, o)
		}
		if o.atomic && err == nil && nErr == nil {
			for v := range dst.Values() {
				arr.Push(v)
			}
		}
	default:
		err = shapeError(text, obj, arr)
	}
	if debug.Parse() {
		debug.Logf("parse %d bytes as %s: %v %v\n", len(text), kind, err, nErr)
	}
	if err == nil {
		return nErr
	}
	return report(text, err, o)
}

// Object parses object text.
func Object(text string, opts ...ParseOption) (*ir.Object, error) {
	res := ir.NewObject()
	err := Into(text, res, nil, opts...)
	return res, err
}

// Array parses array text.
func Array(text string, opts ...ParseOption) (*ir.Array, error) {
	res := ir.NewArray()
	err := Into(text, nil, res, opts...)
	return res, err
}

// Parse parses object or array text into a Value.  On error the value
// holds the members parsed before the error, unless ParseAtomic is
// given.
func Parse(text string, opts ...ParseOption) (*ir.Value, error) {
	o := newOpts(opts)
	text, err := o.input(text)
	if err != nil {
		return nil, err
	}
	opts = append(opts, ParseFormat(format.JSONFormat))
	kind, _ := token.Detect(text)
	switch kind {
	case token.KindObject:
		res := ir.FromObject(nil)
		obj, _ := res.Object()
		return res, Into(text, obj, nil, opts...)
	case token.KindArray:
		res := ir.FromArray(nil)
		arr, _ := res.Array()
		return res, Into(text, nil, arr, opts...)
	default:
		return nil, Into(text, nil, nil, opts...)
	}
}

// input returns text as JSON.
func (o *parseOpts) input(text string) (string, error) {
	if o.format != format.YAMLFormat {
		return text, nil
	}
	j, err := yaml.YAMLToJSON([]byte(text))
	if err != nil {
		err = fmt.Errorf("yaml: %w", err)
		diag.Report(o.sink, o.tag, err)
		return "", err
	}
	return string(j), nil
}

// shapeError scans text for a destination which matches neither obj nor
// arr, to get the shape or container error.
func shapeError(text string, obj *ir.Object, arr *ir.Array) error {
	container := token.KindNull
	switch {
	case obj != nil:
		container = token.KindObject
	case arr != nil:
		container = token.KindArray
	}
	return token.NewScanner(text, container).Open()
}

func eagerObject(o *ir.Object, opts *parseOpts) error {
	var first error
	for _, v := range o.All() {
		if err := v.MaterializeAllTo(opts.sink, opts.tag); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func eagerArray(a *ir.Array, opts *parseOpts) error {
	var first error
	for v := range a.Values() {
		if err := v.MaterializeAllTo(opts.sink, opts.tag); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// report sends err to the sink and returns it located in text.
func report(text string, err error, o *parseOpts) error {
	diag.Report(o.sink, o.tag, err)
	var tErr *token.Error
	if !errors.As(err, &tErr) {
		return err
	}
	if tErr.Notice() {
		return nil
	}
	line, col := token.NewPosDoc(text).LineCol(tErr.Offset)
	return &Error{Err: err, Line: line + 1, Col: col + 1}
}
