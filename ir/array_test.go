package ir

import (
	"slices"
	"testing"
)

func TestArrayPush(t *testing.T) {
	a := NewArray().
		PushBool(true).
		PushNull().
		PushString("hi").
		PushFloat(3.50).
		PushInt(-1).
		PushUint(2).
		PushFloatPrec(1.23456, 3).
		PushObject(NewObject().AddInt("x", 1)).
		PushArray(NewArray().PushInt(0))
	want := `[true,null,"hi",3.5,-1,2,1.235,{"x":1},[0]]`
	if got := a.String(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if a.Size() != 9 || a.IsEmpty() {
		t.Errorf("size %d", a.Size())
	}
	if a.TypeAt(2) != StringType || a.TypeNameAt(3) != "float" || a.TypeNameAt(4) != "integer" {
		t.Errorf("types %s %s %s", a.TypeAt(2), a.TypeNameAt(3), a.TypeNameAt(4))
	}
	if a.TypeAt(9) != UndefinedType {
		t.Errorf("TypeAt out of range")
	}
	if v, ok := a.Get(9); ok || v != nil {
		t.Errorf("Get out of range")
	}
}

func TestArrayRemove(t *testing.T) {
	tests := []struct {
		i, n    int
		removed int
		want    string
	}{
		{0, 1, 1, "[2,3,4,5]"},
		{1, 2, 2, "[1,4,5]"},
		{3, 10, 2, "[1,2,3]"},
		{5, 1, 0, "[1,2,3,4,5]"},
		{-1, 1, 0, "[1,2,3,4,5]"},
		{2, 0, 0, "[1,2,3,4,5]"},
	}
	for _, tt := range tests {
		a := FromInts([]int{1, 2, 3, 4, 5})
		arr, _ := a.Array()
		if n := arr.Remove(tt.i, tt.n); n != tt.removed {
			t.Errorf("Remove(%d, %d) = %d, want %d", tt.i, tt.n, n, tt.removed)
		}
		if got := arr.String(); got != tt.want {
			t.Errorf("Remove(%d, %d) left %s, want %s", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestArrayContains(t *testing.T) {
	a := NewArray().PushInt(1).PushString("x").PushObject(NewObject().AddBool("b", true))
	if !a.Contains(FromFloat(1)) {
		t.Error("1.0 should match 1")
	}
	if !a.Contains(FromRaw(`{ "b" : true }`, ObjectType)) {
		t.Error("deferred object should match")
	}
	if a.Contains(FromString("1")) || a.Contains(Null()) {
		t.Error("type must match")
	}
}

func TestArrayIteration(t *testing.T) {
	a := NewArray().PushInt(3).PushInt(4)
	var idx []int
	for i := range a.All() {
		idx = append(idx, i)
	}
	var vals []int64
	for v := range a.Values() {
		vals = append(vals, v.Int())
	}
	if !slices.Equal(idx, []int{0, 1}) || !slices.Equal(vals, []int64{3, 4}) {
		t.Errorf("idx %v vals %v", idx, vals)
	}
	c := a.Clone()
	a.Clear()
	if !a.IsEmpty() || c.Size() != 2 {
		t.Errorf("clear %s clone %s", a, c)
	}
	if !c.Equal(NewArray().PushInt(3).PushInt(4)) || c.Equal(nil) {
		t.Errorf("Equal")
	}
}
