package libdiff

import (
	"strconv"

	"github.com/signadot/fjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex diffs from and to as sequences:
//
//  1. each element is summarized: containers and null by type alone,
//     other scalars by type and value
//  2. the sequences of summaries are diffed
//  3. matching elements are compared with df, which recurses into
//     containers
//  4. unmatched elements are deleted or inserted, and a delete directly
//     followed by an insert becomes a replace
func DiffArrayByIndex(at *loc, from, to *ir.Array, df diffFunc) Changes {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res Changes
	fi, ti, ri := 0, 0, 0
	lastDel := -1
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				v, _ := from.Get(fi)
				res = append(res, makeChange(at.at(fi, ri), v, nil))
				lastDel = len(res) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			lastDel = -1
			for range d.Text {
				fv, _ := from.Get(fi)
				tv, _ := to.Get(ti)
				res = append(res, df(at.at(fi, ri), fv, tv)...)
				fi++
				ti++
				ri++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				tv, _ := to.Get(ti)
				if lastDel != -1 {
					c := &res[lastDel]
					res[lastDel] = replaceChange(c, tv)
					lastDel = -1
				} else {
					res = append(res, makeChange(at.at(ti, ri), nil, tv))
				}
				ti++
				ri++
			}
		}
	}
	return res
}

// replaceChange turns the delete c into a replace by to.
func replaceChange(c *Change, to *ir.Value) Change {
	res := Change{
		Op:      Replace,
		Path:    c.Path,
		Pointer: c.Pointer,
		From:    c.From,
		To:      to.Clone(),
	}
	if res.From.Type() == ir.StringType && to.Type() == ir.StringType {
		res.Edits = stringEdits(res.From.Str(), to.Str())
	}
	return res
}

func mapValues(m map[string]rune, a *ir.Array) []rune {
	rs := make([]rune, 0, a.Size())
	for v := range a.Values() {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs = append(rs, r)
	}
	return rs
}

func summaryStr(v *ir.Value) string {
	switch v.Type() {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return v.Type().String()
	case ir.NumberType:
		return v.Type().String() + "-" + strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case ir.StringType:
		return v.Type().String() + "-" + v.Str()
	default:
		return v.Type().String() + "-" + v.Text()
	}
}
