package token

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrShape             = errors.New("not an object or array")
	ErrShapeEnd          = fmt.Errorf("%w: missing closing bracket", ErrShape)
	ErrNoContainer       = errors.New("container not set")
	ErrEmpty             = errors.New("empty container")
	ErrComma             = errors.New("expected comma")
	ErrKeyQuote          = errors.New("expected quote before key")
	ErrKeyUnterminated   = errors.New("unterminated key")
	ErrColon             = errors.New("expected colon")
	ErrUnterminated      = errors.New("unterminated string")
	ErrUnbalanced        = errors.New("unbalanced brackets")
	ErrLiteral           = errors.New("bad literal")
	ErrNumber            = errors.New("invalid number format")
	ErrNumberLeadingZero = errors.New("leading zero")
)

// Error is a grammar or shape error found while scanning a container.
//
// Its message is the human readable diagnostic text.
type Error struct {
	Err error
	// Container is KindObject or KindArray.
	Container Kind
	// Key is the object key being scanned, if HasKey.
	Key    string
	HasKey bool
	// Found is the offending text, usually a single character.
	Found string
	// Offset is the byte offset of the error in the scanned text.
	Offset int
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Notice reports whether e is informational rather than an error.
func (e *Error) Notice() bool {
	return errors.Is(e.Err, ErrEmpty)
}

func (e *Error) Error() string {
	switch e.Err {
	case ErrEmptyInput:
		return "String cannot be empty"
	case ErrShapeEnd:
		return fmt.Sprintf("Expected '}' or ']' at the end of string, found '%s'", e.Found)
	case ErrShape:
		return fmt.Sprintf("Expected '{' or '[' at the beginning of string, found '%s'", e.Found)
	case ErrNoContainer:
		if e.Container == KindArray {
			return "Array container not set"
		}
		return "Object container not set"
	case ErrEmpty:
		return "string contains empty " + e.Container.String()
	case ErrComma:
		if e.Container == KindArray {
			return fmt.Sprintf("Expected ',' after array element, found '%s'", e.Found)
		}
		return fmt.Sprintf("Expected ',' after node-value, found '%s'", e.Found)
	case ErrKeyQuote:
		return fmt.Sprintf("Expected '\"' after ',', found '%s'", e.Found)
	case ErrKeyUnterminated:
		return "Node-name must be enclosed with '\"'"
	case ErrColon:
		return fmt.Sprintf("Expected ':' before node-value, found '%s'%s", e.Found, e.keySuffix())
	case ErrUnterminated:
		return e.subject() + " with type 'string' must be enclosed with '\"\"'" + e.keySuffix()
	case ErrUnbalanced:
		if e.Found == "[" {
			return e.subject() + " with type 'array' must be enclosed with '[]'" + e.keySuffix()
		}
		return e.subject() + " with type 'object' must be enclosed with '{}'" + e.keySuffix()
	case ErrNumberLeadingZero:
		return e.subject() + " with type 'number' cannot be started with '0'" + e.keySuffix()
	case ErrLiteral:
		return e.subject() + " with type 'literal' can only contain 'true', 'false', 'null', or 'number'" + e.keySuffix()
	case ErrNumber:
		return "Invalid number format" + e.keySuffix()
	default:
		return fmt.Sprintf("%v%s", e.Err, e.keySuffix())
	}
}

func (e *Error) subject() string {
	if e.Container == KindArray {
		return "Array element"
	}
	return "Node-value"
}

func (e *Error) keySuffix() string {
	if !e.HasKey {
		return ""
	}
	return " (node-name: " + e.Key + ")"
}
