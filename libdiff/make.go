package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/fjson/ir"
)

// Change is a single difference between two values.
type Change struct {
	Op Op
	// Path locates the change, as accepted by ir.ParsePath.  Array
	// indices are those of the from value, except for inserted elements
	// which are located in the to value.
	Path string
	// Pointer is the RFC 6901 location of the change in the document as
	// it is after every previous change of the same diff is applied.
	Pointer string
	From    *ir.Value
	To      *ir.Value
	// Edits is the character level difference of a replaced string.
	Edits []Edit
}

// Edit is a run of characters which is kept (Equal), inserted or deleted.
type Edit struct {
	Op   Op
	Text string
}

// makeChange returns an insert if from is nil, a delete if to is nil and
// a replace otherwise.  Both values are copied.
func makeChange(at *loc, from, to *ir.Value) Change {
	c := Change{Path: at.path(), Pointer: at.pointer()}
	switch {
	case from == nil:
		c.Op = Insert
		c.To = to.Clone()
	case to == nil:
		c.Op = Delete
		c.From = from.Clone()
	default:
		c.Op = Replace
		c.From = from.Clone()
		c.To = to.Clone()
	}
	return c
}

// loc is the position of a value under the root of a diff.  Each loc
// holds its own element; parents are shared.
//
// Array elements carry two indices: index is the position in the value
// the element comes from, and ptr the position in the document being
// patched, which shifts with earlier inserts and deletes.
type loc struct {
	parent *loc
	field  *string
	index  int
	ptr    int
}

func (l *loc) key(k string) *loc {
	return &loc{parent: l, field: &k}
}

func (l *loc) at(i, ptr int) *loc {
	return &loc{parent: l, index: i, ptr: ptr}
}

func (l *loc) elems() []*loc {
	var res []*loc
	for x := l; x != nil && x.parent != nil; x = x.parent {
		res = append(res, x)
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

func (l *loc) path() string {
	root := &ir.Path{}
	tail := root
	for _, x := range l.elems() {
		next := &ir.Path{}
		if x.field != nil {
			next.Field = x.field
		} else {
			i := x.index
			next.Index = &i
		}
		tail.Next = next
		tail = next
	}
	return root.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func (l *loc) pointer() string {
	buf := &strings.Builder{}
	for _, x := range l.elems() {
		buf.WriteByte('/')
		if x.field != nil {
			buf.WriteString(pointerEscaper.Replace(*x.field))
			continue
		}
		buf.WriteString(strconv.Itoa(x.ptr))
	}
	return buf.String()
}
