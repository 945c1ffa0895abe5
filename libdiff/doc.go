// Package libdiff computes structural differences between JSON values.
//
// # Usage
//
//	// Compute the changes turning one value into another
//	changes := libdiff.Diff(from, to)
//	fmt.Print(changes)
//
//	// Render them as an RFC 6902 patch
//	patch := changes.JSONPatch()
//
// Object members are matched by key and array elements by position
// within a longest common subsequence, so reordering and insertion show
// up as the smallest set of inserts and deletes.  Values which are not
// materialized are decoded on the side and are left deferred.
//
// # Related Packages
//
//   - github.com/signadot/fjson/ir - the value model
//   - github.com/signadot/fjson/patch - applies RFC 6902 and RFC 7396 patches
package libdiff
