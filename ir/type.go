package ir

import "fmt"

// Type is the kind of a Value.
type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
	// UndefinedType is only returned by lookups of absent members.
	UndefinedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType:    "Object",
		ArrayType:     "Array",
		StringType:    "String",
		NumberType:    "Number",
		BoolType:      "Bool",
		NullType:      "Null",
		UndefinedType: "Undefined",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Name returns the lower case name of t as shown to users.  Numbers are
// named "number" here; see [Value.TypeName] for the integer/float split.
func (t Type) Name() string {
	switch t {
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	case StringType:
		return "string"
	case NumberType:
		return "number"
	case BoolType:
		return "boolean"
	case NullType:
		return "null"
	default:
		return "undefined"
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":      NullType,
		"Bool":      BoolType,
		"Number":    NumberType,
		"String":    StringType,
		"Array":     ArrayType,
		"Object":    ObjectType,
		"Undefined": UndefinedType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// Types returns the types a Value can have.
func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
