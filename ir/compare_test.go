package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromArray(nil), -1},
		{"Array < Object", FromArray(nil), FromObject(nil), -1},
		{"nil < Null", nil, Null(), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison
		{"Int == Float", FromInt(1), FromFloat(1.0), 0},
		{"Int < Float", FromInt(1), FromFloat(1.5), -1},
		{"exponent", FromRaw("1e2", NumberType), FromInt(100), 0},
		{"negative", FromInt(-2), FromInt(-1), -1},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"escapes decoded", FromRaw(`\u0041`, StringType), FromString("A"), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromArray(nil), FromArray(nil), 0},
		{"Short Array < Long Array", FromInts([]int{1}), FromInts([]int{1, 2}), -1},
		{"Array Element Comparison", FromInts([]int{1}), FromInts([]int{2}), -1},
		{"Deferred Array", FromRaw("[1, 2]", ArrayType), FromInts([]int{1, 2}), 0},

		// Object Comparison
		{"Empty Object == Empty Object", FromObject(nil), FromObject(nil), 0},
		{"Short Object < Long Object",
			FromObject(NewObject().AddInt("a", 1)),
			FromObject(NewObject().AddInt("a", 1).AddInt("b", 2)),
			-1},
		{"Object Key Comparison",
			FromObject(NewObject().AddInt("a", 1)),
			FromObject(NewObject().AddInt("b", 1)),
			-1},
		{"Object Value Comparison",
			FromObject(NewObject().AddInt("a", 1)),
			FromObject(NewObject().AddInt("a", 2)),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.expected)
			}
			if eq := Equal(tt.a, tt.b); eq != (tt.expected == 0) {
				t.Errorf("Equal(%v, %v) = %v", tt.a, tt.b, eq)
			}
		})
	}
}

func TestEqualLeavesDeferred(t *testing.T) {
	a := FromRaw(`{"x": {"y": 1}}`, ObjectType)
	b := FromRaw(`{"x":{"y":1.0}}`, ObjectType)
	if !Equal(a, b) {
		t.Error("expected equal")
	}
	if a.IsMaterialized() || b.IsMaterialized() {
		t.Error("Equal materialized its arguments")
	}
	if Equal(a, FromRaw(`{"x":{"y":2}}`, ObjectType)) {
		t.Error("expected different")
	}
	if Equal(FromObject(NewObject().AddInt("a", 1).AddInt("b", 2)), FromObject(NewObject().AddInt("b", 2).AddInt("a", 1))) {
		t.Error("member order matters")
	}
}
