package libdiff

// Op is the kind of a Change.
type Op int

const (
	Insert Op = iota
	Delete
	Replace
	// Equal only occurs in string edits.
	Equal
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	case Equal:
		return "equal"
	default:
		return "op?"
	}
}

// Sign is the single character prefix of op in a listing.
func (op Op) Sign() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Equal:
		return " "
	default:
		return "~"
	}
}

// jsonPatchOp is the RFC 6902 operation name for op.
func (op Op) jsonPatchOp() string {
	switch op {
	case Insert:
		return "add"
	case Delete:
		return "remove"
	default:
		return "replace"
	}
}
