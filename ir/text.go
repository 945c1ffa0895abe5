package ir

import "github.com/signadot/fjson/token"

// AppendText appends the compact JSON text of v to dst.  Deferred
// containers are rendered from their text without materializing.
func (v *Value) AppendText(dst []byte) []byte {
	switch r := v.rep.(type) {
	case *Object:
		return r.AppendText(dst)
	case *Array:
		return r.AppendText(dst)
	case deferred:
		return append(dst, token.Compact(string(r))...)
	}
	switch v.Type() {
	case StringType:
		dst = append(dst, '"')
		dst = append(dst, v.text()...)
		return append(dst, '"')
	case NullType, UndefinedType:
		return append(dst, "null"...)
	default:
		return append(dst, v.text()...)
	}
}

// AppendText appends the compact JSON text of o to dst.
func (o *Object) AppendText(dst []byte) []byte {
	dst = append(dst, '{')
	for i, k := range o.raw {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '"')
		dst = append(dst, k...)
		dst = append(dst, '"', ':')
		dst = o.values[i].AppendText(dst)
	}
	return append(dst, '}')
}

// AppendText appends the compact JSON text of a to dst.
func (a *Array) AppendText(dst []byte) []byte {
	dst = append(dst, '[')
	for i, v := range a.values {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = v.AppendText(dst)
	}
	return append(dst, ']')
}
