package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/fjson/ir"
)

// MustString returns the pretty printed text of v without the trailing
// newline, panicking on error.
func MustString(v *ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
