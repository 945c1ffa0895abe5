package ir

import (
	"math"
	"strconv"

	"github.com/signadot/fjson/debug"
	"github.com/signadot/fjson/diag"
	"github.com/signadot/fjson/token"
)

// DiagTag is the diagnostic tag used when reporting materialization
// errors.
const DiagTag = "Json"

// Value is a single JSON node.
//
// A Value holds exactly one representation at a time, see rep.  String
// text is kept in its escaped wire form, without the quotes.
//
// The zero Value is null.
type Value struct {
	typ Type
	rep rep
}

// rep is the active representation of a Value:
//
//   - scalar text for numbers, strings, booleans and null,
//   - deferred container text for objects and arrays which have been
//     parsed but not yet accessed,
//   - an owned *Object or *Array once materialized.
type rep interface {
	isRep()
}

type scalar string

type deferred string

func (scalar) isRep()   {}
func (deferred) isRep() {}
func (*Object) isRep()  {}
func (*Array) isRep()   {}

func Null() *Value {
	return &Value{typ: NullType, rep: scalar("null")}
}

func FromBool(b bool) *Value {
	return &Value{typ: BoolType, rep: scalar(strconv.FormatBool(b))}
}

func FromInt(i int64) *Value {
	return &Value{typ: NumberType, rep: scalar(strconv.FormatInt(i, 10))}
}

func FromUint(u uint64) *Value {
	return &Value{typ: NumberType, rep: scalar(strconv.FormatUint(u, 10))}
}

// text returns the scalar or deferred text of v, "" once materialized.
func (v *Value) text() string {
	switch r := v.rep.(type) {
	case scalar:
		return string(r)
	case deferred:
		return string(r)
	}
	return ""
}

// obj returns the materialized object of v, or nil.
func (v *Value) obj() *Object {
	o, _ := v.rep.(*Object)
	return o
}

func (v *Value) arr() *Array {
	a, _ := v.rep.(*Array)
	return a
}

// FromFloat creates a number with token.DefaultPrecision decimal digits.
// NaN and infinities give null.
func FromFloat(f float64) *Value {
	return FromFloatPrec(f, token.DefaultPrecision)
}

// FromFloatPrec creates a number rendered with at most prec decimal digits.
func FromFloatPrec(f float64, prec int) *Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return &Value{typ: NumberType, rep: scalar(token.FormatFloat(f, prec))}
}

// FromString creates a string holding s.
func FromString(s string) *Value {
	return &Value{typ: StringType, rep: scalar(token.Escape(s))}
}

// FromObject creates an object value holding a deep copy of o.  A nil o
// gives an empty object.
func FromObject(o *Object) *Value {
	if o == nil {
		return &Value{typ: ObjectType, rep: NewObject()}
	}
	return &Value{typ: ObjectType, rep: o.Clone()}
}

// FromArray creates an array value holding a deep copy of a.  A nil a
// gives an empty array.
func FromArray(a *Array) *Value {
	if a == nil {
		return &Value{typ: ArrayType, rep: NewArray()}
	}
	return &Value{typ: ArrayType, rep: a.Clone()}
}

// FromInts creates an array of integers.
func FromInts(is []int) *Value {
	a := NewArray()
	for _, i := range is {
		a.PushInt(int64(i))
	}
	return &Value{typ: ArrayType, rep: a}
}

// FromRaw creates a value from text with a declared type.  For objects
// and arrays, text is the bracketed container text, which is kept as is
// until the value is accessed as a container.  For strings, text is the
// escaped content without quotes.  Nothing is validated.
func FromRaw(text string, t Type) *Value {
	switch t {
	case ObjectType, ArrayType:
		return &Value{typ: t, rep: deferred(text)}
	case NumberType, StringType:
		return &Value{typ: t, rep: scalar(text)}
	case BoolType:
		return FromBool(text == "true")
	default:
		return Null()
	}
}

// Type returns the type of v.  A nil v is undefined.
func (v *Value) Type() Type {
	if v == nil {
		return UndefinedType
	}
	return v.typ
}

// TypeName returns "integer" or "float" for numbers, depending on whether
// the number text has a fraction or an exponent, and the lower case type
// name otherwise.
func (v *Value) TypeName() string {
	if v.Type() == NumberType {
		if v.IsInteger() {
			return "integer"
		}
		return "float"
	}
	return v.Type().Name()
}

// IsInteger reports whether v is a number written without a fraction or
// an exponent.
func (v *Value) IsInteger() bool {
	return v.Type() == NumberType && !token.IsFloatText(v.text())
}

// IsMaterialized reports whether v holds no deferred container text.
func (v *Value) IsMaterialized() bool {
	if v == nil {
		return true
	}
	_, ok := v.rep.(deferred)
	return !ok
}

// Float returns v as a float64.  The stored text is read up to the first
// byte which cannot belong to a number; containers give 0.
func (v *Value) Float() float64 {
	if v == nil || !v.typ.IsLeaf() {
		return 0
	}
	return token.ParseFloatPrefix(v.text())
}

// Int returns Float rounded to the nearest integer, saturating at the
// int64 bounds.
func (v *Value) Int() int64 {
	f := math.Round(v.Float())
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// Uint returns Float rounded to the nearest integer, negatives giving 0
// and values past the uint64 range giving math.MaxUint64.
func (v *Value) Uint() uint64 {
	f := math.Round(v.Float())
	switch {
	case f < 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(f)
}

// Bool reports whether the stored text is "true".
func (v *Value) Bool() bool {
	return v != nil && v.typ.IsLeaf() && v.text() == "true"
}

// Text returns the stored text of v: the escaped content for strings, the
// canonical text for other scalars and the compact rendering for
// containers.
func (v *Value) Text() string {
	switch v.Type() {
	case UndefinedType:
		return ""
	case NullType:
		return "null"
	case ObjectType, ArrayType:
		return string(v.AppendText(nil))
	default:
		return v.text()
	}
}

// Str returns the unescaped content of a string, and Text otherwise.
func (v *Value) Str() string {
	if v.Type() == StringType {
		return token.Unescape(v.text())
	}
	return v.Text()
}

// String returns the compact JSON text of v.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	return string(v.AppendText(nil))
}

// Object returns the object held by v, materializing deferred text on
// first access.  It returns false if v is not an object.
func (v *Value) Object() (*Object, bool) {
	if v.Type() != ObjectType {
		return nil, false
	}
	if !v.IsMaterialized() {
		_ = v.materialize(nil, DiagTag)
	}
	return v.obj(), true
}

// Array returns the array held by v, materializing deferred text on
// first access.  It returns false if v is not an array.
func (v *Value) Array() (*Array, bool) {
	if v.Type() != ArrayType {
		return nil, false
	}
	if !v.IsMaterialized() {
		_ = v.materialize(nil, DiagTag)
	}
	return v.arr(), true
}

// Materialize replaces deferred container text by the decoded container
// and returns the decoding error, if any.  On error the container holds
// the members decoded before the error, and the error has been reported
// to the attached diagnostic sink.  An empty container is reported as a
// notice and is not an error.  Materialize does nothing for values which
// are already materialized.
func (v *Value) Materialize() error {
	if v.IsMaterialized() {
		return nil
	}
	return v.materialize(nil, DiagTag)
}

func (v *Value) materialize(s diag.Sink, tag string) error {
	text := v.text()
	var err error
	switch v.typ {
	case ObjectType:
		o := NewObject()
		err = DecodeObject(text, o)
		v.rep = o
	case ArrayType:
		a := NewArray()
		err = DecodeArray(text, a)
		v.rep = a
	}
	if debug.Materialize() {
		debug.Logf("materialize %s (%d bytes): %v\n", v.typ, len(text), err)
	}
	diag.Report(s, tag, err)
	if diag.LevelOf(err) == diag.Info {
		return nil
	}
	return err
}

// MaterializeAll materializes v and every container nested in it.  It
// keeps going after errors, so that each is reported, and returns the
// first one.
func (v *Value) MaterializeAll() error {
	return v.MaterializeAllTo(nil, DiagTag)
}

// MaterializeAllTo is MaterializeAll reporting to s with tag.  A nil s
// means the attached sink.
func (v *Value) MaterializeAllTo(s diag.Sink, tag string) error {
	var err error
	if !v.IsMaterialized() {
		err = v.materialize(s, tag)
	}
	var nErr error
	switch v.Type() {
	case ObjectType:
		nErr = v.obj().materializeAll(s, tag)
	case ArrayType:
		nErr = v.arr().materializeAll(s, tag)
	}
	if err == nil {
		err = nErr
	}
	return err
}

func (o *Object) materializeAll(s diag.Sink, tag string) error {
	var first error
	for _, x := range o.values {
		if err := x.MaterializeAllTo(s, tag); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (a *Array) materializeAll(s diag.Sink, tag string) error {
	var first error
	for _, x := range a.values {
		if err := x.MaterializeAllTo(s, tag); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Clear resets v to the zero value of its type: an empty object or
// array, an empty string, 0 or false.  Null stays null.
func (v *Value) Clear() {
	switch v.Type() {
	case ObjectType:
		v.rep = NewObject()
	case ArrayType:
		v.rep = NewArray()
	case StringType:
		v.rep = scalar("")
	case NumberType:
		v.rep = scalar("0")
	case BoolType:
		v.rep = scalar("false")
	}
}

// RemoveKey removes key if v is an object, reporting whether it was
// present.
func (v *Value) RemoveKey(key string) bool {
	o, ok := v.Object()
	if !ok {
		return false
	}
	return o.Remove(key)
}

// RemoveAt removes n elements starting at i if v is an array, returning
// the number removed.
func (v *Value) RemoveAt(i, n int) int {
	a, ok := v.Array()
	if !ok {
		return 0
	}
	return a.Remove(i, n)
}

// Clone returns a deep copy of v, copying whichever representation is
// active.  Deferred text stays deferred.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{typ: v.typ, rep: v.rep}
	switch r := v.rep.(type) {
	case *Object:
		res.rep = r.Clone()
	case *Array:
		res.rep = r.Clone()
	}
	return res
}

// Scalar is the set of types a Value converts to with As.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string | bool
}

// As converts v to T.  Integer types round, strings are unescaped, and
// booleans compare the text to "true".  No conversion fails; values of the
// wrong kind give whatever their text reads as.
func As[T Scalar](v *Value) T {
	var res T
	var x any
	switch any(res).(type) {
	case int:
		x = int(v.Int())
	case int8:
		x = int8(v.Int())
	case int16:
		x = int16(v.Int())
	case int32:
		x = int32(v.Int())
	case int64:
		x = v.Int()
	case uint:
		x = uint(v.Uint())
	case uint8:
		x = uint8(v.Uint())
	case uint16:
		x = uint16(v.Uint())
	case uint32:
		x = uint32(v.Uint())
	case uint64:
		x = v.Uint()
	case float32:
		x = float32(v.Float())
	case float64:
		x = v.Float()
	case string:
		x = v.Str()
	case bool:
		x = v.Bool()
	}
	return x.(T)
}
