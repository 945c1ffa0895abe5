package libdiff

import "github.com/signadot/fjson/ir"

// DiffNumber compares numbers by value, so that 1 and 1.0 do not differ.
func DiffNumber(at *loc, from, to *ir.Value) Changes {
	if from.Float() == to.Float() {
		return nil
	}
	return Changes{makeChange(at, from, to)}
}
