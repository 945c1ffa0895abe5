package ir

import (
	"fmt"
	"strings"

	"github.com/signadot/fjson/token"
)

// MarshalText returns the compact JSON text of v.
func (v *Value) MarshalText() ([]byte, error) {
	return v.AppendText(nil), nil
}

func (v *Value) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

// UnmarshalText sets v from JSON text.  Unlike documents given to the
// parser, the text may hold a bare scalar.  Nested containers are
// validated.
func (v *Value) UnmarshalText(d []byte) error {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return token.ErrEmptyInput
	}
	switch s[0] {
	case '{':
		*v = Value{typ: ObjectType, rep: deferred(s)}
		return v.MaterializeAll()
	case '[':
		*v = Value{typ: ArrayType, rep: deferred(s)}
		return v.MaterializeAll()
	case '"':
		if len(s) < 2 || s[len(s)-1] != '"' {
			return fmt.Errorf("%w: %s", token.ErrUnterminated, s)
		}
		*v = Value{typ: StringType, rep: scalar(s[1 : len(s)-1])}
		return nil
	}
	switch s {
	case "true", "false":
		*v = *FromBool(s == "true")
		return nil
	case "null":
		*v = *Null()
		return nil
	}
	if err := token.ValidateNumber(s); err != nil {
		return fmt.Errorf("%w: %q", err, s)
	}
	*v = Value{typ: NumberType, rep: scalar(s)}
	return nil
}

func (v *Value) UnmarshalJSON(d []byte) error {
	return v.UnmarshalText(d)
}

func (o *Object) MarshalText() ([]byte, error) {
	return o.AppendText(nil), nil
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return o.MarshalText()
}

// UnmarshalText replaces the members of o by those of the object text d.
func (o *Object) UnmarshalText(d []byte) error {
	v := &Value{}
	if err := v.UnmarshalText(d); err != nil {
		return err
	}
	x, ok := v.Object()
	if !ok {
		return fmt.Errorf("%w: expected object, got %s", ErrType, v.Type())
	}
	*o = *x
	return nil
}

func (o *Object) UnmarshalJSON(d []byte) error {
	return o.UnmarshalText(d)
}

func (a *Array) MarshalText() ([]byte, error) {
	return a.AppendText(nil), nil
}

func (a *Array) MarshalJSON() ([]byte, error) {
	return a.MarshalText()
}

// UnmarshalText replaces the elements of a by those of the array text d.
func (a *Array) UnmarshalText(d []byte) error {
	v := &Value{}
	if err := v.UnmarshalText(d); err != nil {
		return err
	}
	x, ok := v.Array()
	if !ok {
		return fmt.Errorf("%w: expected array, got %s", ErrType, v.Type())
	}
	*a = *x
	return nil
}

func (a *Array) UnmarshalJSON(d []byte) error {
	return a.UnmarshalText(d)
}
