package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/fjson/ir"
	"github.com/signadot/fjson/parse"
	"github.com/signadot/fjson/patch"
)

func mustParse(t *testing.T, in string) *ir.Value {
	t.Helper()
	v, err := parse.Parse(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return v
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		listing  string
		pointers []string
	}{
		{
			name: "equal",
			from: `{"a":1,"b":[1,2]}`,
			to:   `{"a":1.0,"b":[1,2]}`,
		},
		{
			name:     "object members",
			from:     `{"a":1,"b":2,"c":3}`,
			to:       `{"a":1,"c":4,"d":5}`,
			listing:  "- $.b: 2\n~ $.c: 3 -> 4\n+ $.d: 5\n",
			pointers: []string{"/b", "/c", "/d"},
		},
		{
			name:     "array elements",
			from:     `[1,2,3]`,
			to:       `[1,3,4]`,
			listing:  "- $[1]: 2\n+ $[2]: 4\n",
			pointers: []string{"/1", "/2"},
		},
		{
			name:     "delete then insert is a replace",
			from:     `["a","b"]`,
			to:       `["a","c"]`,
			listing:  "~ $[1]: \"b\" -> \"c\"\n",
			pointers: []string{"/1"},
		},
		{
			name:     "nested",
			from:     `{"x":{"y":[1,{"z":true}]}}`,
			to:       `{"x":{"y":[1,{"z":false}]}}`,
			listing:  "~ $.x.y[1].z: true -> false\n",
			pointers: []string{"/x/y/1/z"},
		},
		{
			name:     "type change",
			from:     `{"a":1}`,
			to:       `{"a":"1"}`,
			listing:  "~ $.a: 1 -> \"1\"\n",
			pointers: []string{"/a"},
		},
		{
			name:     "quoted keys",
			from:     `{"a.b":{"c/d":1}}`,
			to:       `{"a.b":{"c/d":2}}`,
			listing:  "~ $.'a.b'.c/d: 1 -> 2\n",
			pointers: []string{"/a.b/c~1d"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cs := Diff(mustParse(t, tc.from), mustParse(t, tc.to))
			if got := cs.String(); got != tc.listing {
				t.Errorf("listing:\n got %q\nwant %q", got, tc.listing)
			}
			var ptrs []string
			for _, c := range cs {
				ptrs = append(ptrs, c.Pointer)
			}
			if diff := cmp.Diff(tc.pointers, ptrs); diff != "" {
				t.Errorf("pointers (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffLeavesValuesDeferred(t *testing.T) {
	from := mustParse(t, `{"a":{"b":1}}`)
	to := mustParse(t, `{"a":{"b":2}}`)
	_ = Diff(from, to)
	o, _ := from.Object()
	a, _ := o.Get("a")
	if a.IsMaterialized() {
		t.Errorf("diff materialized %s", a)
	}
}

func TestDiffNil(t *testing.T) {
	v := ir.FromInt(1)
	cs := Diff(nil, v)
	if len(cs) != 1 || cs[0].Op != Insert || cs[0].Path != "$" || cs[0].Pointer != "" {
		t.Errorf("insert: %+v", cs)
	}
	cs = Diff(v, nil)
	if len(cs) != 1 || cs[0].Op != Delete {
		t.Errorf("delete: %+v", cs)
	}
	if cs := Diff(nil, nil); cs != nil {
		t.Errorf("nil: %+v", cs)
	}
}

func TestStringEdits(t *testing.T) {
	cs := Diff(ir.FromString("hello world"), ir.FromString("hello there"))
	if len(cs) != 1 {
		t.Fatalf("got %d changes", len(cs))
	}
	var from, to string
	for _, e := range cs[0].Edits {
		switch e.Op {
		case Equal:
			from += e.Text
			to += e.Text
		case Delete:
			from += e.Text
		case Insert:
			to += e.Text
		}
	}
	if from != "hello world" || to != "hello there" {
		t.Errorf("edits rebuild %q -> %q", from, to)
	}
	if e := cs[0].Edits[0]; e.Op != Equal || e.Text != "hello " {
		t.Errorf("first edit %+v", e)
	}
}

func TestJSONPatchRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{
			name: "members",
			from: `{"a":[1,2,3],"b":"x"}`,
			to:   `{"a":[0,1,3,4],"b":"y","c":true}`,
		},
		{
			name: "nested arrays",
			from: `[[1,2],{"k":[true]},"s"]`,
			to:   `[[2],{"k":[true,false]}]`,
		},
		{
			name: "type changes",
			from: `{"a":{"b":1}}`,
			to:   `{"a":[1]}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, to := mustParse(t, tc.from), mustParse(t, tc.to)
			cs := Diff(from, to)
			got, err := patch.Apply(from, cs.JSONPatch())
			if err != nil {
				t.Fatalf("apply %s: %v", cs.JSONPatch(), err)
			}
			if !ir.Equal(got, to) {
				t.Errorf("forward: got %s want %s", got, to)
			}
			back, err := patch.Apply(to, Reverse(cs).JSONPatch())
			if err != nil {
				t.Fatalf("apply reverse %s: %v", Reverse(cs).JSONPatch(), err)
			}
			if !ir.Equal(back, from) {
				t.Errorf("reverse: got %s want %s", back, from)
			}
		})
	}
}

func TestJSONPatchText(t *testing.T) {
	cs := Diff(mustParse(t, `{"a":1,"b":2}`), mustParse(t, `{"a":2}`))
	want := `[{"op":"replace","path":"/a","value":2},{"op":"remove","path":"/b"}]`
	if got := string(cs.JSONPatch()); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestDiffText(t *testing.T) {
	got := DiffText("a\nb\nc\n", "a\nB\nc\n")
	want := "  a\n- b\n+ B\n  c\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
