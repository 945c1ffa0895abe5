package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/fjson/format"
	"github.com/signadot/fjson/ir"
)

type sensor struct {
	Name    string    `json:"name"`
	Values  []float64 `json:"values"`
	Enabled bool      `json:"enabled"`
	Extra   *ir.Value `json:"extra,omitempty"`
}

func TestLoad(t *testing.T) {
	var s sensor
	err := Load([]byte(`{"name":"t1","values":[1.5,2],"enabled":true,"extra":{"b":1,"a":2}}`), &s)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "t1" || !s.Enabled {
		t.Errorf("got %+v", s)
	}
	if diff := cmp.Diff([]float64{1.5, 2}, s.Values); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if got := s.Extra.String(); got != `{"b":1,"a":2}` {
		t.Errorf("extra %s", got)
	}
}

func TestLoadYAML(t *testing.T) {
	var m map[string]int
	if err := Load([]byte("a: 1\nb: 2\n"), &m, LoadFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, m); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadError(t *testing.T) {
	var s sensor
	if err := Load([]byte(`{"name":1}`), &s); err == nil {
		t.Errorf("expected type error, got %+v", s)
	}
	if err := Load([]byte(`{"name":`), &s, LoadAtomic(true)); err == nil {
		t.Error("expected parse error")
	}
}

type loader struct {
	n int
}

func (l *loader) LoadValue(v *ir.Value) error {
	o, _ := v.Object()
	l.n = o.Size()
	return nil
}

func TestValueLoader(t *testing.T) {
	l := &loader{}
	if err := Load([]byte(`{"a":1,"b":2,"c":3}`), l); err != nil {
		t.Fatal(err)
	}
	if l.n != 3 {
		t.Errorf("got %d members", l.n)
	}
}

func TestToValue(t *testing.T) {
	v, err := ToValue(sensor{Name: "t2", Values: []float64{3}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"t2","values":[3],"enabled":false}`
	if got := v.String(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	v, err = ToValue(map[string]any{"z": 1, "a": []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != `{"a":["x"],"z":1}` {
		t.Errorf("map: got %s", got)
	}
	v, err = ToValue("s")
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != ir.StringType || v.Str() != "s" {
		t.Errorf("scalar: got %s", v)
	}
}
