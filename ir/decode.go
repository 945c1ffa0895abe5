package ir

import (
	"github.com/signadot/fjson/token"
)

// DecodeObject scans the object text and adds its members to dst in
// order.  Nested containers are stored deferred.  On error, dst keeps the
// members added before the failing one.  Text holding an empty object
// gives an error wrapping token.ErrEmpty, which is a notice.
func DecodeObject(text string, dst *Object) error {
	return decode(text, token.KindObject, func(m token.Member) {
		dst.setRaw(token.Unescape(m.Key), m.Key, memberValue(m))
	})
}

// DecodeArray is like DecodeObject for arrays.
func DecodeArray(text string, dst *Array) error {
	return decode(text, token.KindArray, func(m token.Member) {
		dst.push(memberValue(m))
	})
}

func decode(text string, kind token.Kind, add func(token.Member)) error {
	sc := token.NewScanner(text, kind)
	if err := sc.Open(); err != nil {
		return err
	}
	for {
		m, ok, err := sc.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		add(m)
	}
}

func memberValue(m token.Member) *Value {
	switch m.Kind {
	case token.KindString:
		return &Value{typ: StringType, rep: scalar(m.Text)}
	case token.KindObject:
		return &Value{typ: ObjectType, rep: deferred(m.Text)}
	case token.KindArray:
		return &Value{typ: ArrayType, rep: deferred(m.Text)}
	case token.KindInteger, token.KindFloat:
		return &Value{typ: NumberType, rep: scalar(m.Text)}
	case token.KindTrue:
		return FromBool(true)
	case token.KindFalse:
		return FromBool(false)
	default:
		return Null()
	}
}
