package libdiff

import "github.com/signadot/fjson/ir"

// JSONPatch renders cs as an RFC 6902 patch document.
func (cs Changes) JSONPatch() []byte {
	ops := ir.NewArray()
	for i := range cs {
		c := &cs[i]
		op := ir.NewObject().
			AddString("op", c.Op.jsonPatchOp()).
			AddString("path", c.Pointer)
		if c.Op != Delete {
			op.Add("value", c.To)
		}
		ops.PushObject(op)
	}
	return ops.AppendText(nil)
}
