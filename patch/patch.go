// Package patch applies RFC 6902 JSON patches and RFC 7396 merge patches
// to values.
//
// Patching goes through the compact rendering of the document, so the
// key order of a patched object is that produced by the patch library.
package patch

import (
	"fmt"

	"github.com/signadot/fjson/debug"
	"github.com/signadot/fjson/ir"
	"github.com/signadot/fjson/parse"
	"github.com/signadot/fjson/token"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies the RFC 6902 patch patchJSON to doc and returns the
// result.  doc is not modified.
func Apply(doc *ir.Value, patchJSON []byte) (*ir.Value, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch %d ops on %s\n", len(ops), doc)
	}
	out, err := ops.Apply([]byte(doc.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApply, err)
	}
	return decode(out)
}

// Merge applies the RFC 7396 merge patch mergeJSON to doc and returns the
// result.  doc is not modified.
func Merge(doc *ir.Value, mergeJSON []byte) (*ir.Value, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", mergeJSON, doc)
	}
	out, err := jsonpatch.MergePatch([]byte(doc.String()), mergeJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApply, err)
	}
	return decode(out)
}

// CreateMerge returns the RFC 7396 merge patch turning from into to.
func CreateMerge(from, to *ir.Value) ([]byte, error) {
	res, err := jsonpatch.CreateMergePatch([]byte(from.String()), []byte(to.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func decode(out []byte) (*ir.Value, error) {
	switch kind, _ := token.Detect(string(out)); kind {
	case token.KindObject, token.KindArray:
		return parse.Parse(string(out), parse.ParseAtomic(true), parse.ParseEager(true))
	}
	res := &ir.Value{}
	if err := res.UnmarshalText(out); err != nil {
		return nil, err
	}
	return res, nil
}
