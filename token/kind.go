package token

// Kind is the lexical kind of a scanned member.
type Kind int

const (
	KindNull Kind = iota
	KindTrue
	KindFalse
	KindInteger
	KindFloat
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:    "null",
		KindTrue:    "true",
		KindFalse:   "false",
		KindInteger: "integer",
		KindFloat:   "float",
		KindString:  "string",
		KindObject:  "object",
		KindArray:   "array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// IsNumber reports whether k is KindInteger or KindFloat.
func (k Kind) IsNumber() bool {
	return k == KindInteger || k == KindFloat
}

// IsContainer reports whether k is KindObject or KindArray.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}

func (k Kind) open() byte {
	if k == KindArray {
		return '['
	}
	return '{'
}

func (k Kind) close() byte {
	if k == KindArray {
		return ']'
	}
	return '}'
}
