package proof

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type DiffOp int8

const (
	DiffDelete DiffOp = -1
	DiffEqual  DiffOp = 0
	DiffInsert DiffOp = 1
)

// DiffSegment is a span of canonical JSON that is equal, only in the first document (delete)
// or only in the second (insert).
type DiffSegment struct {
	Op   DiffOp
	Text string
}

// Diff compares the canonical JSON of two results.
// It returns nil when both canonicalize to the same bytes.
func Diff(from, to *Result) []DiffSegment {
	a, b := string(from.Canonical), string(to.Canonical)
	if a == b {
		return nil
	}

	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	segments := make([]DiffSegment, 0, len(diffs))
	for _, d := range diffs {
		var op DiffOp
		switch d.Type {
		case diffpatch.DiffDelete:
			op = DiffDelete
		case diffpatch.DiffInsert:
			op = DiffInsert
		default:
			op = DiffEqual
		}
		segments = append(segments, DiffSegment{Op: op, Text: d.Text})
	}
	return segments
}
