package ir

import "iter"

// Array is an ordered sequence of values.
type Array struct {
	values []*Value
}

func NewArray() *Array {
	return &Array{}
}

// Push appends a deep copy of v.  A nil v is appended as null.
func (a *Array) Push(v *Value) *Array {
	if v == nil {
		v = Null()
	} else {
		v = v.Clone()
	}
	a.values = append(a.values, v)
	return a
}

func (a *Array) push(v *Value) *Array {
	a.values = append(a.values, v)
	return a
}

func (a *Array) PushString(s string) *Array { return a.push(FromString(s)) }
func (a *Array) PushInt(i int64) *Array { return a.push(FromInt(i)) }
func (a *Array) PushUint(u uint64) *Array { return a.push(FromUint(u)) }
func (a *Array) PushFloat(f float64) *Array { return a.push(FromFloat(f)) }
func (a *Array) PushFloatPrec(f float64, prec int) *Array {
	return a.push(FromFloatPrec(f, prec))
}
func (a *Array) PushBool(b bool) *Array { return a.push(FromBool(b)) }
func (a *Array) PushNull() *Array { return a.push(Null()) }
func (a *Array) PushObject(o *Object) *Array { return a.push(FromObject(o)) }
func (a *Array) PushArray(x *Array) *Array { return a.push(FromArray(x)) }

// Get returns the element at i.  The element is owned by a.
func (a *Array) Get(i int) (*Value, bool) {
	if i < 0 || i >= len(a.values) {
		return nil, false
	}
	return a.values[i], true
}

// TypeAt returns the type of the element at i, UndefinedType if absent.
func (a *Array) TypeAt(i int) Type {
	v, _ := a.Get(i)
	return v.Type()
}

func (a *Array) TypeNameAt(i int) string {
	v, _ := a.Get(i)
	return v.TypeName()
}

func (a *Array) Size() int {
	return len(a.values)
}

func (a *Array) IsEmpty() bool {
	return len(a.values) == 0
}

// Contains reports whether some element is Equal to v.
func (a *Array) Contains(v *Value) bool {
	for _, x := range a.values {
		if Equal(x, v) {
			return true
		}
	}
	return false
}

// Remove deletes up to n elements starting at i and returns the number
// deleted.
func (a *Array) Remove(i, n int) int {
	if i < 0 || i >= len(a.values) || n <= 0 {
		return 0
	}
	end := min(i+n, len(a.values))
	clear(a.values[i:end])
	a.values = append(a.values[:i], a.values[end:]...)
	return end - i
}

func (a *Array) Clear() {
	a.values = nil
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	res := &Array{values: make([]*Value, len(a.values))}
	for i, v := range a.values {
		res.values[i] = v.Clone()
	}
	return res
}

// All iterates over the indexed elements of a.
func (a *Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i, v := range a.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over the elements of a.
func (a *Array) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for _, v := range a.values {
			if !yield(v) {
				return
			}
		}
	}
}

// String returns the compact JSON text of a.
func (a *Array) String() string {
	return string(a.AppendText(nil))
}

func (a *Array) Equal(x *Array) bool {
	if a == nil || x == nil {
		return a == x
	}
	return equalArrays(a, x)
}
