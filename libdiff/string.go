package libdiff

import (
	"strings"

	"github.com/signadot/fjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString compares the decoded content of two strings.  A difference
// is a replace carrying the character level edits.
func DiffString(at *loc, from, to *ir.Value) Changes {
	fs, ts := from.Str(), to.Str()
	if fs == ts {
		return nil
	}
	c := makeChange(at, from, to)
	c.Edits = stringEdits(fs, ts)
	return Changes{c}
}

func stringEdits(from, to string) []Edit {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, strings.Contains(from, "\n") && strings.Contains(to, "\n"))
	diffs = dmp.DiffCleanupSemantic(diffs)
	return toEdits(diffs)
}

func toEdits(diffs []diffpatch.Diff) []Edit {
	res := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		e := Edit{Text: d.Text}
		switch d.Type {
		case diffpatch.DiffInsert:
			e.Op = Insert
		case diffpatch.DiffDelete:
			e.Op = Delete
		default:
			e.Op = Equal
		}
		res = append(res, e)
	}
	return res
}

// DiffText returns a line diff of a and b, each line prefixed by "+ ",
// "- " or two spaces.  It is meant for pretty printed documents.
func DiffText(a, b string) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	buf := &strings.Builder{}
	for _, e := range toEdits(diffs) {
		text := strings.TrimSuffix(e.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			buf.WriteString(e.Op.Sign() + " " + line + "\n")
		}
	}
	return buf.String()
}
