package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/signadot/fjson/format"
	"github.com/signadot/fjson/ir"
	"github.com/signadot/fjson/parse"
	"github.com/signadot/fjson/token"
)

func mustParse(t *testing.T, in string) *ir.Value {
	t.Helper()
	v, err := parse.Parse(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return v
}

func TestPretty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []EncodeOption
		out  string
	}{
		{
			name: "nested object",
			in:   `{"x":{"y":1}}`,
			out:  "{\n  \"x\":{\n    \"y\":1\n  }\n}\n",
		},
		{
			name: "array",
			in:   `[true, null, "hi", 3.50]`,
			out:  "[\n  true,\n  null,\n  \"hi\",\n  3.50\n]\n",
		},
		{
			name: "indent unit",
			in:   `{"a":[1,{"b":"c"}]}`,
			opts: []EncodeOption{Indent(4)},
			out:  "{\n    \"a\":[\n        1,\n        {\n            \"b\":\"c\"\n        }\n    ]\n}\n",
		},
		{
			name: "empty containers",
			in:   `{"o":{},"a":[ ]}`,
			out:  "{\n  \"o\":{},\n  \"a\":[]\n}\n",
		},
		{
			name: "starting depth",
			in:   `[1]`,
			opts: []EncodeOption{Depth(1)},
			out:  "[\n    1\n  ]\n",
		},
		{
			name: "wire",
			in:   ` { "a" : [ 1 , 2 ] , "b" : "x y" } `,
			opts: []EncodeOption{EncodeWire(true)},
			out:  `{"a":[1,2],"b":"x y"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.in)
			buf := bytes.NewBuffer(nil)
			if err := Encode(v, buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.out {
				t.Errorf("got\n%s\nwant\n%s", got, tt.out)
			}
			o, ok := v.Object()
			if !ok {
				return
			}
			for _, x := range o.All() {
				if x.Type() == ir.ObjectType && x.IsMaterialized() {
					t.Errorf("encoding materialized a nested value")
				}
			}
		})
	}
}

func TestPrettyIndentDepth(t *testing.T) {
	v := mustParse(t, `{"x":{"y":1}}`)
	out := MustString(v)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, `"y"`) && !strings.HasPrefix(line, "    \"y\"") {
			t.Errorf("line %q should have 4 leading spaces", line)
		}
	}
}

func TestEncodeContainers(t *testing.T) {
	o := ir.NewObject().AddString("k", `q"`).AddFloat("f", 0.25)
	buf := bytes.NewBuffer(nil)
	if err := EncodeObject(o, buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{"k":"q\"","f":0.25}` {
		t.Errorf("got %s", got)
	}
	buf.Reset()
	v := ir.FromRaw(`{"a\/b":{"\u0041":true}}`, ir.ObjectType)
	if err := v.MaterializeAll(); err != nil {
		t.Fatal(err)
	}
	if err := Encode(v, buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{"a\/b":{"\u0041":true}}` {
		t.Errorf("key text not kept: %s", got)
	}
	buf.Reset()
	if err := EncodeArray(ir.NewArray(), buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeBadDeferred(t *testing.T) {
	v := ir.FromRaw(`{"a":01}`, ir.ObjectType)
	err := Encode(v, bytes.NewBuffer(nil))
	if !errors.Is(err, ErrEncoding) || !errors.Is(err, token.ErrNumberLeadingZero) {
		t.Errorf("error %v", err)
	}
	if err := Encode(nil, bytes.NewBuffer(nil)); !errors.Is(err, ErrEncoding) {
		t.Errorf("nil value: %v", err)
	}
}

func TestColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.NumberType, Attr: ValueColor}: func(s string, _ ...any) string { return "#" + s },
		},
	}
	v := mustParse(t, `{"a":1,"b":"s"}`)
	got := MustString(v, EncodeColors(c), EncodeWire(true))
	if got != `{<"a">:#1,<"b">:"s"}` {
		t.Errorf("got %s", got)
	}
	if NewColors().Get(ir.StringType, ValueColor) == nil {
		t.Errorf("no string color")
	}
}

func TestDefaultPalette(t *testing.T) {
	c := NewColors()
	key := c.Color(ir.ObjectType, FieldColor, `"k"`)
	str := c.Color(ir.StringType, ValueColor, `"k"`)
	if key == str {
		t.Errorf("keys and strings share a color: %q", key)
	}
	if !strings.Contains(key, "\x1b[") {
		t.Errorf("key not colored: %q", key)
	}
	if got := c.Color(ir.StringType, FieldColor, "x"); got != "x" {
		t.Errorf("unset entries should be plain: %q", got)
	}

	v := mustParse(t, `{"a":[1,true,null,"s%d"],"b":{}}`)
	plain := MustString(v)
	colored := MustString(v, EncodeColors(c))
	if colored == plain {
		t.Fatal("no colors written")
	}
	if got := Strip(colored); got != plain {
		t.Errorf("stripped output differs:\n%s\nwant\n%s", got, plain)
	}

	c.Set(Colorable{Type: ir.NumberType, Attr: ValueColor}, color.FgRed)
	if got := c.Color(ir.NumberType, ValueColor, "1"); got != "\x1b[31m1\x1b[0m" {
		t.Errorf("Set: %q", got)
	}
}

func TestYAML(t *testing.T) {
	v := mustParse(t, `{"z":1,"a":[true,"s",1.5,null],"e":{}}`)
	out := MustString(v, EncodeFormat(format.YAMLFormat))
	back, err := parse.Parse(out, parse.ParseYAML())
	if err != nil {
		t.Fatalf("reparse %q: %v", out, err)
	}
	if !ir.Equal(v, back) {
		t.Errorf("yaml round trip: %s != %s", v, back)
	}
	if !strings.HasPrefix(out, "z: 1\n") {
		t.Errorf("key order lost:\n%s", out)
	}
	if FormatFromOpts(EncodeFormat(format.YAMLFormat)) != format.YAMLFormat {
		t.Error("FormatFromOpts")
	}
}
