package ir

import (
	"iter"

	"github.com/signadot/fjson/token"
)

// Object is an ordered mapping from unique keys to values.
//
// Insertion order defines iteration, serialization and positional order.
// Adding an existing key replaces its value in place; removing a key
// shifts every later position down by one.
//
// Keys are looked up unescaped.  Each key also keeps its wire text, as
// read or as escaped when added, which is what gets written back out.
type Object struct {
	keys   []string
	raw    []string
	values []*Value
	index  map[string]int
}

func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// Add sets key to a deep copy of v.  A nil v is stored as null.
func (o *Object) Add(key string, v *Value) *Object {
	if v == nil {
		v = Null()
	} else {
		v = v.Clone()
	}
	o.set(key, v)
	return o
}

// set stores v under key without copying.
func (o *Object) set(key string, v *Value) {
	o.setRaw(key, token.Escape(key), v)
}

// setRaw is set with the wire text of key given.  Replacing the value of
// an existing key keeps its wire text.
func (o *Object) setRaw(key, raw string, v *Value) {
	if o.index == nil {
		o.index = map[string]int{}
	}
	if i, ok := o.index[key]; ok {
		o.values[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.raw = append(o.raw, raw)
	o.values = append(o.values, v)
}

// Extend adds deep copies of the members of x in order, keeping the wire
// text of their keys.
func (o *Object) Extend(x *Object) *Object {
	for i, k := range x.keys {
		o.setRaw(k, x.raw[i], x.values[i].Clone())
	}
	return o
}

func (o *Object) AddString(key, s string) *Object {
	o.set(key, FromString(s))
	return o
}

func (o *Object) AddInt(key string, i int64) *Object {
	o.set(key, FromInt(i))
	return o
}

func (o *Object) AddUint(key string, u uint64) *Object {
	o.set(key, FromUint(u))
	return o
}

func (o *Object) AddFloat(key string, f float64) *Object {
	o.set(key, FromFloat(f))
	return o
}

func (o *Object) AddFloatPrec(key string, f float64, prec int) *Object {
	o.set(key, FromFloatPrec(f, prec))
	return o
}

func (o *Object) AddBool(key string, b bool) *Object {
	o.set(key, FromBool(b))
	return o
}

func (o *Object) AddNull(key string) *Object {
	o.set(key, Null())
	return o
}

// AddObject sets key to a deep copy of x.
func (o *Object) AddObject(key string, x *Object) *Object {
	o.set(key, FromObject(x))
	return o
}

// AddArray sets key to a deep copy of a.
func (o *Object) AddArray(key string, a *Array) *Object {
	o.set(key, FromArray(a))
	return o
}

// Get returns the value of key.  The value is owned by o; mutating it
// mutates o.
func (o *Object) Get(key string) (*Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.values[i], true
}

// At returns the value at position i.
func (o *Object) At(i int) (*Value, bool) {
	if i < 0 || i >= len(o.values) {
		return nil, false
	}
	return o.values[i], true
}

// KeyAt returns the key at position i.
func (o *Object) KeyAt(i int) (string, bool) {
	if i < 0 || i >= len(o.keys) {
		return "", false
	}
	return o.keys[i], true
}

// RawKeyAt returns the wire text of the key at position i, without
// quotes.
func (o *Object) RawKeyAt(i int) (string, bool) {
	if i < 0 || i >= len(o.raw) {
		return "", false
	}
	return o.raw[i], true
}

// Index returns the position of key, or -1.
func (o *Object) Index(key string) int {
	i, ok := o.index[key]
	if !ok {
		return -1
	}
	return i
}

// TypeOf returns the type of the value of key, UndefinedType if absent.
func (o *Object) TypeOf(key string) Type {
	v, _ := o.Get(key)
	return v.Type()
}

// TypeAt returns the type of the value at i, UndefinedType if absent.
func (o *Object) TypeAt(i int) Type {
	v, _ := o.At(i)
	return v.Type()
}

func (o *Object) TypeNameOf(key string) string {
	v, _ := o.Get(key)
	return v.TypeName()
}

func (o *Object) TypeNameAt(i int) string {
	v, _ := o.At(i)
	return v.TypeName()
}

func (o *Object) Contains(key string) bool {
	_, ok := o.index[key]
	return ok
}

func (o *Object) Size() int {
	return len(o.keys)
}

func (o *Object) IsEmpty() bool {
	return len(o.keys) == 0
}

// Remove deletes key, reporting whether it was present.  Later positions
// move down by one.
func (o *Object) Remove(key string) bool {
	i, ok := o.index[key]
	if !ok {
		return false
	}
	delete(o.index, key)
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.raw = append(o.raw[:i], o.raw[i+1:]...)
	o.values[i] = nil
	o.values = append(o.values[:i], o.values[i+1:]...)
	for j := i; j < len(o.keys); j++ {
		o.index[o.keys[j]] = j
	}
	return true
}

func (o *Object) Clear() {
	o.keys = nil
	o.raw = nil
	o.values = nil
	o.index = map[string]int{}
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	res := &Object{
		keys:   make([]string, len(o.keys)),
		raw:    make([]string, len(o.raw)),
		values: make([]*Value, len(o.values)),
		index:  make(map[string]int, len(o.keys)),
	}
	copy(res.keys, o.keys)
	copy(res.raw, o.raw)
	for i, v := range o.values {
		res.values[i] = v.Clone()
		res.index[o.keys[i]] = i
	}
	return res
}

// All iterates over the members of o in order.
func (o *Object) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for i, k := range o.keys {
			if !yield(k, o.values[i]) {
				return
			}
		}
	}
}

// Keys iterates over the keys of o in order.
func (o *Object) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range o.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// String returns the compact JSON text of o.
func (o *Object) String() string {
	return string(o.AppendText(nil))
}

// Equal reports whether o and x have the same keys in the same order with
// equal values.
func (o *Object) Equal(x *Object) bool {
	if o == nil || x == nil {
		return o == x
	}
	return equalObjects(o, x)
}
