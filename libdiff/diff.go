package libdiff

import (
	"strings"

	"github.com/signadot/fjson/debug"
	"github.com/signadot/fjson/ir"
)

// Changes is the result of a diff, in the order in which the changes
// apply.
type Changes []Change

// diffFunc computes the changes between two values at the same location.
type diffFunc func(at *loc, from, to *ir.Value) Changes

// Diff returns the changes turning from into to, or nil if they are
// Equal.  A nil from gives a single insert and a nil to a single delete.
// Neither value is modified: deferred containers are decoded on the side.
func Diff(from, to *ir.Value) Changes {
	res := diff(&loc{}, from, to)
	if debug.Diff() {
		debug.Logf("diff %s -> %s:\n%s", from, to, res)
	}
	return res
}

func diff(at *loc, from, to *ir.Value) Changes {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil:
		return Changes{makeChange(at, from, to)}
	case from.Type() != to.Type():
		return Changes{makeChange(at, from, to)}
	}
	switch from.Type() {
	case ir.ObjectType:
		fo, fErr := from.PeekObject()
		tobj, tErr := to.PeekObject()
		if fErr != nil || tErr != nil {
			return diffText(at, from, to)
		}
		return DiffObject(at, fo, tobj, diff)
	case ir.ArrayType:
		fa, fErr := from.PeekArray()
		ta, tErr := to.PeekArray()
		if fErr != nil || tErr != nil {
			return diffText(at, from, to)
		}
		return DiffArrayByIndex(at, fa, ta, diff)
	case ir.NumberType:
		return DiffNumber(at, from, to)
	case ir.StringType:
		return DiffString(at, from, to)
	default:
		if from.Text() == to.Text() {
			return nil
		}
		return Changes{makeChange(at, from, to)}
	}
}

// diffText compares containers whose text does not decode.
func diffText(at *loc, from, to *ir.Value) Changes {
	if from.String() == to.String() {
		return nil
	}
	return Changes{makeChange(at, from, to)}
}

// String renders cs one change per line:
//
//	- $.a: 1
//	+ $.b[0]: "x"
//	~ $.c: true -> false
func (cs Changes) String() string {
	buf := &strings.Builder{}
	for i := range cs {
		c := &cs[i]
		buf.WriteString(c.Op.Sign() + " " + c.Path + ": ")
		switch c.Op {
		case Insert:
			buf.WriteString(c.To.String())
		case Delete:
			buf.WriteString(c.From.String())
		default:
			buf.WriteString(c.From.String() + " -> " + c.To.String())
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
