package aligner

import (
	"errors"

	"github.com/aria-lang/codonalign/internal/cigar"
)

// SearchRange bounds the DP columns the aligner is allowed to consider for
// each row, expressed as a start/end row per query column. The current
// GlobalAligner always works the full rectangle; SearchRange exists so a
// future seeded/banded caller has somewhere to plug in without changing the
// DP's shape.
type SearchRange struct {
	Rows, Columns int
	StartRow      []int
	EndRow        []int
}

// FullSearchRange returns the unrestricted rectangle covering every
// (row, column) pair -- the only range GlobalAligner.Align actually needs,
// since it always runs the complete DP rather than a seeded band.
func FullSearchRange(refLen, queryLen int) SearchRange {
	start := make([]int, queryLen+1)
	end := make([]int, queryLen+1)
	for j := range end {
		end[j] = refLen
	}
	return SearchRange{Rows: refLen, Columns: queryLen, StartRow: start, EndRow: end}
}

// ErrSearchRangeNotImplemented is returned by NewSeededSearchRange: deriving
// a parallelogram band around a seed alignment is out of scope (heuristic
// seeding/chaining is explicitly not part of this aligner), so the seeded
// constructor exists only to fail clearly rather than silently falling back
// to a full rectangle.
var ErrSearchRangeNotImplemented = errors.New("aligner: seeded search range is not implemented")

// NewSeededSearchRange would derive a banded search range around seed, the
// way the source narrows the DP to a parallelogram near a rough local
// alignment. That banding heuristic is out of scope here, so this always
// fails; callers with no seed should use FullSearchRange instead.
func NewSeededSearchRange(seed cigar.Script, refLen, queryLen int) (SearchRange, error) {
	return SearchRange{}, ErrSearchRangeNotImplemented
}
