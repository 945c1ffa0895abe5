package ir

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/signadot/fjson/diag"
)

// Equal reports whether a and b have the same type and equal contents.
// Numbers compare as floating point values, so 1 and 1.0 are equal.
// Deferred containers are decoded into temporaries and are left
// deferred.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case NumberType:
		return a.Float() == b.Float()
	case StringType:
		return a.text() == b.text() || a.Str() == b.Str()
	case BoolType:
		return a.Bool() == b.Bool()
	case ObjectType:
		return equalObjects(a.peekObject(), b.peekObject())
	case ArrayType:
		return equalArrays(a.peekArray(), b.peekArray())
	}
	return true
}

func equalObjects(a, b *Object) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i, k := range a.keys {
		if b.keys[i] != k || !Equal(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}

func equalArrays(a, b *Array) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i, v := range a.values {
		if !Equal(v, b.values[i]) {
			return false
		}
	}
	return true
}

// PeekObject returns the object of v without materializing it: deferred
// text is decoded into a temporary which is not kept.  The decoding
// error, if any, is returned along with the members decoded before it,
// and is not reported.
func (v *Value) PeekObject() (*Object, error) {
	if v.Type() != ObjectType {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrType, v.Type())
	}
	if o := v.obj(); o != nil {
		return o, nil
	}
	o := NewObject()
	err := DecodeObject(v.text(), o)
	if diag.LevelOf(err) == diag.Info {
		err = nil
	}
	return o, err
}

// PeekArray is like PeekObject for arrays.
func (v *Value) PeekArray() (*Array, error) {
	if v.Type() != ArrayType {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrType, v.Type())
	}
	if a := v.arr(); a != nil {
		return a, nil
	}
	a := NewArray()
	err := DecodeArray(v.text(), a)
	if diag.LevelOf(err) == diag.Info {
		err = nil
	}
	return a, err
}

func (v *Value) peekObject() *Object {
	o, _ := v.PeekObject()
	return o
}

func (v *Value) peekArray() *Array {
	a, _ := v.PeekArray()
	return a
}

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case NumberType:
		return cmp.Compare(a.Float(), b.Float())
	case StringType:
		return strings.Compare(a.Str(), b.Str())
	case BoolType:
		ba, bb := a.Bool(), b.Bool()
		if ba == bb {
			return 0
		}
		if !ba {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a.peekArray(), b.peekArray())
	case ObjectType:
		return compareObjects(a.peekObject(), b.peekObject())
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Array) int {
	lenA := len(a.values)
	lenB := len(b.values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares members in order, key first.
func compareObjects(a, b *Object) int {
	lenA := len(a.keys)
	lenB := len(b.keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
