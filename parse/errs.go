package parse

import (
	"fmt"
)

// Error is a parse error located in the parsed text.
//
// Errors in nested containers found with ParseEager are located relative
// to the nested container text and are returned without this wrapper.
type Error struct {
	Err error
	// Line and Col are 1 based.
	Line, Col int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
