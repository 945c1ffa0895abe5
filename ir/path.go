package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed member path such as
//
//	$.a.b[0].'c.d'
//
// Each element selects either an object field or an array index.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

// ParsePath parses p.  The leading '$' is optional, and so is the '.'
// before the first field.  Fields containing any of ".[]'\"$" are quoted
// with single or double quotes, with a backslash escaping the quote.
func ParsePath(p string) (*Path, error) {
	p = strings.TrimPrefix(p, "$")
	if len(p) != 0 && p[0] != '.' && p[0] != '[' {
		p = "." + p
	}
	root := &Path{}
	if len(p) == 0 {
		return root, nil
	}
	err := parseFrag(p, root)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(u64), nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	q := frag[0]
	if q != '\'' && q != '"' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == q && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for %q", q)
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'\".[]$\\") == -1 {
		return f
	}
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(f) + "'"
}

// GetPath returns the member of v at path, materializing containers along
// the way.  The result is owned by v.
func (v *Value) GetPath(path string) (*Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return v.getPath(p)
}

func (v *Value) getPath(p *Path) (*Value, error) {
	res := v
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Index != nil:
			a, ok := res.Array()
			if !ok {
				return nil, fmt.Errorf("%w: %s: expected array, got %s", ErrType, p.upTo(x), res.Type())
			}
			elt, ok := a.Get(*x.Index)
			if !ok {
				return nil, fmt.Errorf("%w: %s: index out of bounds (len %d)", ErrNotFound, p.upTo(x), a.Size())
			}
			res = elt
		case x.Field != nil:
			o, ok := res.Object()
			if !ok {
				return nil, fmt.Errorf("%w: %s: expected object, got %s", ErrType, p.upTo(x), res.Type())
			}
			val, ok := o.Get(*x.Field)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, p.upTo(x))
			}
			res = val
		}
	}
	return res, nil
}

// upTo renders p up to and including the element x.
func (p *Path) upTo(x *Path) string {
	head := &Path{}
	tail := head
	for y := p; y != nil; y = y.Next {
		*tail = Path{Index: y.Index, Field: y.Field}
		if y == x {
			break
		}
		tail.Next = &Path{}
		tail = tail.Next
	}
	return head.String()
}
