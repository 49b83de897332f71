// Package scorer implements the affine-gap substitution scorer shared by the
// nucleotide and amino-acid layers: a dense weight matrix plus open/extend
// gap costs, misalignment cost, and frameshift cost, all generic over
// whichever alphabet.Character the caller instantiates it with.
package scorer

import "github.com/aria-lang/codonalign/internal/alphabet"

// Matrix is a dense, square substitution-cost table indexed by a
// character's IntRep().
type Matrix [][]int

// SubstitutionScorer scores single-character substitutions and gap
// open/extend events for one alphabet. Two monomorphisations are used in
// practice: one over alphabet.Nucleotide, one over alphabet.AminoAcid.
type SubstitutionScorer[C alphabet.Character] struct {
	weightMatrix     Matrix
	gapOpenCost      int
	gapExtensionCost int
	frameShiftCost   int
	misalignmentCost int
}

// New builds a SubstitutionScorer from a weight matrix and the four scalar
// penalties. Costs are typically negative, diagonal weights positive.
func New[C alphabet.Character](weightMatrix Matrix, gapOpenCost, gapExtensionCost, frameShiftCost, misalignmentCost int) *SubstitutionScorer[C] {
	return &SubstitutionScorer[C]{
		weightMatrix:     weightMatrix,
		gapOpenCost:      gapOpenCost,
		gapExtensionCost: gapExtensionCost,
		frameShiftCost:   frameShiftCost,
		misalignmentCost: misalignmentCost,
	}
}

func (s *SubstitutionScorer[C]) WeightMatrix() Matrix { return s.weightMatrix }
func (s *SubstitutionScorer[C]) GapOpenCost() int      { return s.gapOpenCost }
func (s *SubstitutionScorer[C]) GapExtendCost() int    { return s.gapExtensionCost }
func (s *SubstitutionScorer[C]) FrameShiftCost() int   { return s.frameShiftCost }
func (s *SubstitutionScorer[C]) MisalignmentCost() int { return s.misalignmentCost }

// ScoreExtend is the diagonal substitution cost.
func (s *SubstitutionScorer[C]) ScoreExtend(ref, query C) int {
	return s.weightMatrix[ref.IntRep()][query.IntRep()]
}

// ScoreExtendAt looks ScoreExtend up by position in two equal-alphabet
// sequences.
func ScoreExtendAt[C alphabet.Character](s *SubstitutionScorer[C], ref, query []C, refI, queryI int) int {
	return s.ScoreExtend(ref[refI], query[queryI])
}

// ScoreOpenRefGap is the cost of opening a reference-gap run (the DP's
// horizontal move, consuming query only); it is waived at the trailing
// reference edge.
func (s *SubstitutionScorer[C]) ScoreOpenRefGap(refLen, refI int) int {
	if refI == refLen-1 {
		return 0
	}
	return s.gapOpenCost
}

// ScoreExtendRefGap is the per-column cost of continuing a reference-gap
// run.
func (s *SubstitutionScorer[C]) ScoreExtendRefGap(refLen, refI int) int {
	if refI == refLen-1 {
		return 0
	}
	return s.gapExtensionCost
}

// ScoreOpenQueryGap is the cost of opening a query-gap run (the DP's
// vertical move, consuming reference only); it is waived at the trailing
// query edge.
func (s *SubstitutionScorer[C]) ScoreOpenQueryGap(queryLen, queryI int) int {
	if queryI == queryLen-1 {
		return 0
	}
	return s.gapOpenCost
}

// ScoreExtendQueryGap is the per-column cost of continuing a query-gap run.
func (s *SubstitutionScorer[C]) ScoreExtendQueryGap(queryLen, queryI int) int {
	if queryI == queryLen-1 {
		return 0
	}
	return s.gapExtensionCost
}

// CalcScore recomputes the alignment score of an already-materialised
// aligned pair: a thin wrapper over CalcStats for callers that only need
// the number.
func (s *SubstitutionScorer[C]) CalcScore(ref, query []C, frameshiftCount int) int {
	return s.CalcStats(ref, query, frameshiftCount).Score
}
