package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a formatted trace line to stderr.  Arguments which are
// decoded JSON are rendered as indented JSON, and Stringers (such as
// *ir.Value) by their String method.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case fmt.Stringer:
			args[i] = x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
