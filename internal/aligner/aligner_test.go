package aligner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/codonalign/internal/alphabet"
	"github.com/aria-lang/codonalign/internal/cigar"
	"github.com/aria-lang/codonalign/internal/scorer"
)

func mustSeq(t *testing.T, bases string) alphabet.NucleotideSequence {
	t.Helper()
	seq, err := alphabet.ParseNucleotideSequence(bases)
	require.NoError(t, err)
	return seq
}

func flatNtScorer() *scorer.SubstitutionScorer[alphabet.Nucleotide] {
	size := alphabet.NucleotideAlphabetSize
	m := make(scorer.Matrix, size)
	for i := range m {
		m[i] = make([]int, size)
		for j := range m[i] {
			if i == j {
				m[i][j] = 2
			} else {
				m[i][j] = -1
			}
		}
	}
	return scorer.New[alphabet.Nucleotide](m, -2, -1, 0, 0)
}

func newFlatAligner() *GlobalAligner[alphabet.NucleotideSequence, alphabet.Nucleotide] {
	f := scorer.Flat[alphabet.Nucleotide, alphabet.NucleotideSequence]{S: flatNtScorer()}
	return New[alphabet.NucleotideSequence, alphabet.Nucleotide](f, 1, 0)
}

// scriptConsumesExactly sums a Script's contribution to reference and
// query length: the aligner's fundamental correctness invariant is that
// these always equal the input lengths exactly.
func scriptConsumesExactly(script cigar.Script) (int, int) {
	refConsumed, queryConsumed := 0, 0
	for _, it := range script {
		switch it.Op {
		case cigar.Match:
			refConsumed += it.Length
			queryConsumed += it.Length
		case cigar.RefGap:
			queryConsumed += it.Length
		case cigar.QueryGap, cigar.RefSkipped:
			refConsumed += it.Length
		case cigar.QuerySkipped:
			queryConsumed += it.Length
		}
	}
	return refConsumed, queryConsumed
}

func TestAlignIdenticalSequencesIsAllMatch(t *testing.T) {
	seq := mustSeq(t, "ACGTACGTACGT")
	g := newFlatAligner()

	solution, err := g.Align(seq, seq)
	require.NoError(t, err)

	assert.Equal(t, cigar.Script{{Op: cigar.Match, Length: len(seq)}}, solution.Cigar)
	assert.Equal(t, 2*len(seq), solution.Score)
}

func TestAlignRejectsEmptySequence(t *testing.T) {
	g := newFlatAligner()
	_, err := g.Align(nil, mustSeq(t, "ACGT"))
	assert.Error(t, err)
}

func TestAlignConsumesExactlyBothSequencesAcrossCases(t *testing.T) {
	cases := []struct{ ref, query string }{
		{"ACGTACGT", "ACGTACGT"},
		{"ACGTACGT", "ACGACGT"},
		{"AAAAAAAA", "AAAATAAAA"},
		{"GATTACA", "GACTACA"},
		{"ACGTGGGGACGT", "ACGTACGT"},
		{"A", "AAAA"},
		{"AAAA", "A"},
		{"CGT", "ACGT"},
		{"ACGT", "CGT"},
	}

	g := newFlatAligner()

	for _, c := range cases {
		t.Run(c.ref+"_"+c.query, func(t *testing.T) {
			ref := mustSeq(t, c.ref)
			query := mustSeq(t, c.query)

			solution, err := g.Align(ref, query)
			require.NoError(t, err)

			refConsumed, queryConsumed := scriptConsumesExactly(solution.Cigar)
			assert.Equal(t, len(ref), refConsumed)
			assert.Equal(t, len(query), queryConsumed)
		})
	}
}

// A leading query overhang (query starts before the reference does) is a
// free end gap: the optimal alignment skips it rather than ever paying a
// gap-open cost for it, and the boundary op is rewritten from RefGap to
// QuerySkipped in the final script.
func TestAlignLeadingQueryOverhangIsFreeEndGap(t *testing.T) {
	ref := mustSeq(t, "CGT")
	query := mustSeq(t, "ACGT")
	g := newFlatAligner()

	solution, err := g.Align(ref, query)
	require.NoError(t, err)

	assert.Equal(t, 6, solution.Score) // 3 matches * 2, leading "A" free
	require.NotEmpty(t, solution.Cigar)
	assert.Equal(t, cigar.QuerySkipped, solution.Cigar[0].Op)
}

// Symmetric case: a leading reference overhang is also a free end gap,
// rewritten to RefSkipped.
func TestAlignLeadingRefOverhangIsFreeEndGap(t *testing.T) {
	ref := mustSeq(t, "ACGT")
	query := mustSeq(t, "CGT")
	g := newFlatAligner()

	solution, err := g.Align(ref, query)
	require.NoError(t, err)

	assert.Equal(t, 6, solution.Score)
	require.NotEmpty(t, solution.Cigar)
	assert.Equal(t, cigar.RefSkipped, solution.Cigar[0].Op)
}

// A trailing query overhang (query runs past the reference's end) is also
// a free end gap: GenomeScorer/SubstitutionScorer waive the gap cost once
// the reference is exhausted.
func TestAlignTrailingQueryOverhangIsFreeEndGap(t *testing.T) {
	ref := mustSeq(t, "ACGT")
	query := mustSeq(t, "ACGTG")
	g := newFlatAligner()

	solution, err := g.Align(ref, query)
	require.NoError(t, err)

	assert.Equal(t, 8, solution.Score) // 4 matches * 2, trailing "G" free
	require.NotEmpty(t, solution.Cigar)
	assert.Equal(t, cigar.QuerySkipped, solution.Cigar[len(solution.Cigar)-1].Op)
}

func TestAlignTrailingRefOverhangIsFreeEndGap(t *testing.T) {
	ref := mustSeq(t, "ACGTG")
	query := mustSeq(t, "ACGT")
	g := newFlatAligner()

	solution, err := g.Align(ref, query)
	require.NoError(t, err)

	assert.Equal(t, 8, solution.Score)
	require.NotEmpty(t, solution.Cigar)
	assert.Equal(t, cigar.RefSkipped, solution.Cigar[len(solution.Cigar)-1].Op)
}

// An internal gap (not touching either sequence's boundary) is charged the
// real gap-open cost: deleting the 4th base of ref from the middle of the
// query is cheaper paid for with one gap-open than with a mismatch run.
func TestAlignInternalGapPaysRealCost(t *testing.T) {
	ref := mustSeq(t, "ACGTACGT")
	query := mustSeq(t, "ACGACGT")
	g := newFlatAligner()

	solution, err := g.Align(ref, query)
	require.NoError(t, err)

	assert.Equal(t, 12, solution.Score) // 7 matches * 2 - 2 gap-open
}

func TestFullSearchRangeCoversWholeRectangle(t *testing.T) {
	r := FullSearchRange(5, 7)
	assert.Equal(t, 5, r.Rows)
	assert.Equal(t, 7, r.Columns)
	for _, end := range r.EndRow {
		assert.Equal(t, 5, end)
	}
}

func TestNewSeededSearchRangeIsNotImplemented(t *testing.T) {
	_, err := NewSeededSearchRange(nil, 5, 7)
	assert.ErrorIs(t, err, ErrSearchRangeNotImplemented)
}
