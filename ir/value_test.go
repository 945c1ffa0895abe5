package ir

import (
	"math"
	"testing"

	"github.com/signadot/fjson/diag"
)

func TestScalarText(t *testing.T) {
	tests := []struct {
		name     string
		v        *Value
		text     string
		typeName string
	}{
		{"int", FromInt(-12), "-12", "integer"},
		{"uint", FromUint(math.MaxUint64), "18446744073709551615", "integer"},
		{"float", FromFloat(3.5), "3.5", "float"},
		{"whole float", FromFloat(4), "4", "integer"},
		{"float precision", FromFloatPrec(3.14159, 2), "3.14", "float"},
		{"nan", FromFloat(math.NaN()), "null", "null"},
		{"string", FromString(`a"b`), `a\"b`, "string"},
		{"true", FromBool(true), "true", "boolean"},
		{"null", Null(), "null", "null"},
		{"zero value", &Value{}, "null", "null"},
		{"raw float", FromRaw("1e3", NumberType), "1e3", "float"},
		{"object", FromObject(NewObject().AddInt("a", 1)), `{"a":1}`, "object"},
		{"ints", FromInts([]int{1, 2}), "[1,2]", "array"},
		{"nil", nil, "", "undefined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Text(); got != tt.text {
				t.Errorf("Text() = %q, want %q", got, tt.text)
			}
			if got := tt.v.TypeName(); got != tt.typeName {
				t.Errorf("TypeName() = %q, want %q", got, tt.typeName)
			}
		})
	}
}

func TestCoercions(t *testing.T) {
	if got := As[int](FromFloat(2.5)); got != 3 {
		t.Errorf("As[int](2.5) = %d", got)
	}
	if got := As[int64](FromRaw("-7.6", NumberType)); got != -8 {
		t.Errorf("As[int64](-7.6) = %d", got)
	}
	if got := As[uint8](FromInt(200)); got != 200 {
		t.Errorf("As[uint8](200) = %d", got)
	}
	if got := As[uint](FromInt(-3)); got != 0 {
		t.Errorf("As[uint](-3) = %d", got)
	}
	if got := As[float64](FromRaw("1e3", NumberType)); got != 1000 {
		t.Errorf("As[float64](1e3) = %v", got)
	}
	if got := As[float32](FromString("12abc")); got != 12 {
		t.Errorf("As[float32](\"12abc\") = %v", got)
	}
	if got := As[string](FromString("tab\there")); got != "tab\there" {
		t.Errorf("As[string] = %q", got)
	}
	if got := As[string](FromInt(5)); got != "5" {
		t.Errorf("As[string](5) = %q", got)
	}
	if !As[bool](FromBool(true)) || As[bool](FromBool(false)) {
		t.Errorf("As[bool] of booleans")
	}
	if !As[bool](FromString("true")) {
		t.Errorf("As[bool] compares text")
	}
	if got := As[int64](FromRaw("1e300", NumberType)); got != math.MaxInt64 {
		t.Errorf("As[int64](1e300) = %d", got)
	}
	if got := As[int64](FromRaw("-1e300", NumberType)); got != math.MinInt64 {
		t.Errorf("As[int64](-1e300) = %d", got)
	}
	if got := As[uint64](FromRaw("1e300", NumberType)); got != math.MaxUint64 {
		t.Errorf("As[uint64](1e300) = %d", got)
	}
	if got := As[uint64](FromRaw("-1e300", NumberType)); got != 0 {
		t.Errorf("As[uint64](-1e300) = %d", got)
	}
	if got := FromInt(math.MinInt64).Int(); got != math.MinInt64 {
		t.Errorf("Int() of MinInt64 = %d", got)
	}
	if As[int](FromObject(nil)) != 0 || As[bool](nil) {
		t.Errorf("containers and nil should coerce to zero values")
	}
}

func TestClear(t *testing.T) {
	tests := []struct {
		v    *Value
		want string
	}{
		{FromObject(NewObject().AddInt("a", 1)), "{}"},
		{FromRaw(`{"a": 1}`, ObjectType), "{}"},
		{FromInts([]int{1}), "[]"},
		{FromString("x"), `""`},
		{FromFloat(2.5), "0"},
		{FromBool(true), "false"},
		{Null(), "null"},
	}
	for _, tt := range tests {
		typ := tt.v.Type()
		tt.v.Clear()
		if got := tt.v.String(); got != tt.want {
			t.Errorf("cleared %s: got %s want %s", typ, got, tt.want)
		}
		if tt.v.Type() != typ {
			t.Errorf("Clear changed type %s to %s", typ, tt.v.Type())
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromObject(NewObject().AddArray("a", NewArray().PushInt(1)))
	c := orig.Clone()
	co, _ := c.Object()
	ca, _ := co.Get("a")
	ca.RemoveAt(0, 1)
	co.AddBool("b", true)
	if got := orig.String(); got != `{"a":[1]}` {
		t.Errorf("original changed to %s", got)
	}
	if got := c.String(); got != `{"a":[],"b":true}` {
		t.Errorf("clone is %s", got)
	}

	deferred := FromRaw(`[1, 2]`, ArrayType)
	dc := deferred.Clone()
	if dc.IsMaterialized() {
		t.Errorf("clone of deferred value should stay deferred")
	}
	if !Equal(deferred, dc) {
		t.Errorf("clone not equal")
	}
}

func TestLazyMaterialization(t *testing.T) {
	v := FromRaw(`{ "y" : 1, "z": [true, null] }`, ObjectType)
	before := v.String()
	if v.IsMaterialized() {
		t.Fatal("raw value should be deferred")
	}
	if before != `{"y":1,"z":[true,null]}` {
		t.Errorf("deferred text %s", before)
	}
	o, ok := v.Object()
	if !ok || !v.IsMaterialized() {
		t.Fatalf("Object() = %v, %v", o, ok)
	}
	if after := v.String(); after != before {
		t.Errorf("materialized text %s differs from %s", after, before)
	}
	y, ok := o.Get("y")
	if !ok || y.Int() != 1 || !y.IsInteger() {
		t.Errorf("y = %v, %v", y, ok)
	}
	z, _ := o.Get("z")
	if z.IsMaterialized() {
		t.Errorf("nested containers stay deferred until accessed")
	}
	if _, ok := v.Array(); ok {
		t.Errorf("object accessed as array")
	}
}

func TestLazyMaterializationKeepsKeyText(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
	}{
		{"escaped slash", `{"a\/b":1}`, "a/b"},
		{"unicode escape", `{"\u0041":1}`, "A"},
		{"unknown escape", `{"a\q":1}`, `a\q`},
		{"quote", `{"a\"b":1}`, `a"b`},
		{"nested", `{"x":{"a\/b":[1.50,"s\/"]}}`, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromRaw(tt.text, ObjectType)
			before := v.String()
			if before != tt.text {
				t.Errorf("deferred text %s, want %s", before, tt.text)
			}
			if err := v.MaterializeAll(); err != nil {
				t.Fatal(err)
			}
			if after := v.String(); after != before {
				t.Errorf("materialized text %s differs from %s", after, before)
			}
			o, _ := v.Object()
			if !o.Contains(tt.key) {
				t.Errorf("key %q not found in %s", tt.key, o)
			}
			if c := v.Clone(); c.String() != before {
				t.Errorf("clone text %s", c)
			}
		})
	}
}

func TestMaterializeReports(t *testing.T) {
	rec := &diag.Recorder{}
	diag.Attach(rec)
	defer diag.Detach()

	v := FromRaw(`{"a":1,"b":01}`, ObjectType)
	err := v.Materialize()
	if err == nil {
		t.Fatal("expected an error")
	}
	o, _ := v.Object()
	if got := o.String(); got != `{"a":1}` {
		t.Errorf("partial object %s", got)
	}
	want := "Node-value with type 'number' cannot be started with '0' (node-name: b)"
	if len(rec.Entries) != 1 || rec.Entries[0].Msg != want || rec.Entries[0].Level != diag.Error || rec.Entries[0].Tag != DiagTag {
		t.Errorf("diagnostics %+v", rec.Entries)
	}

	rec.Reset()
	empty := FromRaw("[ ]", ArrayType)
	if err := empty.Materialize(); err != nil {
		t.Errorf("empty array: %v", err)
	}
	if len(rec.Entries) != 1 || rec.Entries[0].Level != diag.Info {
		t.Errorf("diagnostics %+v", rec.Entries)
	}
}

func TestMaterializeAll(t *testing.T) {
	v := FromRaw(`{"a":{"b":[1,{"c":x}]},"d":[1]}`, ObjectType)
	if err := v.MaterializeAll(); err == nil {
		t.Fatal("expected nested error")
	}
	d, err := v.GetPath("d")
	if err != nil || !d.IsMaterialized() {
		t.Errorf("siblings of a bad member are still materialized: %v", err)
	}
}

func TestRemoveThroughValue(t *testing.T) {
	v := FromRaw(`{"a":1,"b":2}`, ObjectType)
	if !v.RemoveKey("a") || v.RemoveKey("a") {
		t.Errorf("RemoveKey")
	}
	if v.String() != `{"b":2}` {
		t.Errorf("got %s", v)
	}
	if FromInt(1).RemoveKey("a") || FromInt(1).RemoveAt(0, 1) != 0 {
		t.Errorf("remove on a scalar")
	}
	a := FromInts([]int{1, 2, 3, 4})
	if n := a.RemoveAt(1, 2); n != 2 || a.String() != "[1,4]" {
		t.Errorf("RemoveAt: %d %s", n, a)
	}
}
