// Package token provides the lexical layer of fjson.
//
// [Cursor] is a read-only window over a text buffer. Trimming and slicing
// move the window and never copy the text, so large constant documents can
// be scanned in place.
//
// [Scanner] validates the member grammar of a single JSON object or array,
// one member at a time. Nested objects and arrays are not descended into:
// their bracketed span is returned as raw text, to be scanned on demand by
// a later Scanner.
//
// The package also holds the number grammar ([ValidateNumber]), canonical
// numeric text ([FormatFloat]) and string quoting helpers ([Escape],
// [Unescape], [Compact]).
package token
