package encode

import (
	"strings"

	"github.com/signadot/fjson/ir"

	"github.com/fatih/color"
)

// Colorable selects what a color applies to: a value of some type, an
// object key, or the punctuation of a container.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	// FieldColor applies to object keys, with Type ObjectType.
	FieldColor ColorAttr = iota
	ValueColor
	// SepColor applies to brackets, commas and colons.
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// jsonPalette is the default palette.  Keys are bold blue so that they
// stand apart from string values, and punctuation is faint.
var jsonPalette = map[Colorable][]color.Attribute{
	{Type: ir.ObjectType, Attr: FieldColor}: {color.FgBlue, color.Bold},
	{Type: ir.ObjectType, Attr: SepColor}:   {color.Faint},
	{Type: ir.ArrayType, Attr: SepColor}:    {color.Faint},
	{Type: ir.StringType, Attr: ValueColor}: {color.FgGreen},
	{Type: ir.NumberType, Attr: ValueColor}: {color.FgYellow},
	{Type: ir.BoolType, Attr: ValueColor}:   {color.FgCyan},
	{Type: ir.NullType, Attr: ValueColor}:   {color.FgMagenta, color.Italic},
}

// NewColors returns the default palette.  Colors are always enabled;
// callers decide whether to use them, for example by checking for a
// terminal.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     make(map[Colorable]func(string, ...any) string, len(jsonPalette)),
	}
	for able, attrs := range jsonPalette {
		colors.Set(able, attrs...)
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Set overrides the color of able.
func (c *Colors) Set(able Colorable, attrs ...color.Attribute) *Colors {
	x := color.New(attrs...)
	x.EnableColor()
	sprint := x.SprintFunc()
	c.Map[able] = func(v string, _ ...any) string {
		return sprint(v)
	}
	return c
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// Strip removes the escape sequences written by a Colors.
func Strip(s string) string {
	for {
		i := strings.Index(s, "\x1b[")
		if i < 0 {
			return s
		}
		j := strings.IndexByte(s[i:], 'm')
		if j < 0 {
			return s
		}
		s = s[:i] + s[i+j+1:]
	}
}
