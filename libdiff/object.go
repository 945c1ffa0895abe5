package libdiff

import (
	"github.com/signadot/fjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject diffs the key sequences of from and to.  Keys only in from
// are deleted, keys only in to are inserted, and the values of common
// keys are compared with df.
//
// Inserts follow every other change of the object, so that a key which
// moved is removed before it is added back.
func DiffObject(at *loc, from, to *ir.Object, df diffFunc) Changes {
	keyMap := map[string]rune{}
	fromRunes := mapKeysTo(keyMap, from)
	toRunes := mapKeysTo(keyMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res, inserts Changes
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				k, _ := from.KeyAt(fi)
				v, _ := from.At(fi)
				res = append(res, makeChange(at.key(k), v, nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for range d.Text {
				k, _ := from.KeyAt(fi)
				fv, _ := from.At(fi)
				tv, _ := to.At(ti)
				res = append(res, df(at.key(k), fv, tv)...)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				k, _ := to.KeyAt(ti)
				v, _ := to.At(ti)
				inserts = append(inserts, makeChange(at.key(k), nil, v))
				ti++
			}
		}
	}
	return append(res, inserts...)
}

func mapKeysTo(m map[string]rune, o *ir.Object) []rune {
	rs := make([]rune, 0, o.Size())
	for k := range o.Keys() {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs = append(rs, r)
	}
	return rs
}
