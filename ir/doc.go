// Package ir holds the fjson document model.
//
// A document is an [Object] or an [Array] whose members are [Value]s.
// A Value is a tagged union over the JSON kinds (see [Type]).  Scalars keep
// their canonical text.  Containers produced by parsing keep their raw
// text until first accessed through [Value.Object] or [Value.Array], at
// which point the text is decoded into an owned container and dropped.
//
// Values never share structure: adding or pushing a Value stores a deep
// copy, and [Value.Clone] copies whichever representation is active.
//
// Lookups of absent members return false (and typed lookups return
// [UndefinedType]) rather than a placeholder value.
package ir
