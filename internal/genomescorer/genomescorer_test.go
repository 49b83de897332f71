package genomescorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/codonalign/internal/alphabet"
	"github.com/aria-lang/codonalign/internal/diag"
	"github.com/aria-lang/codonalign/internal/genome"
	"github.com/aria-lang/codonalign/internal/scorer"
)

func mustNt(t *testing.T, bases string) alphabet.NucleotideSequence {
	t.Helper()
	seq, err := alphabet.ParseNucleotideSequence(bases)
	require.NoError(t, err)
	return seq
}

func diagonalMatrix(size, match, mismatch int) scorer.Matrix {
	m := make(scorer.Matrix, size)
	for i := range m {
		m[i] = make([]int, size)
		for j := range m[i] {
			if i == j {
				m[i][j] = match
			} else {
				m[i][j] = mismatch
			}
		}
	}
	return m
}

// newFixture builds a single-CDS AnnotatedReference ("ATGAAATAA": Met Lys
// Stop, forward strand, spanning the whole reference) and a GenomeScorer
// over it, so every codon-phase combination is exercised by position.
func newFixture(t *testing.T) (*GenomeScorer, alphabet.NucleotideSequence) {
	t.Helper()

	ref := mustNt(t, "ATGAAATAA")
	annotated := genome.NewAnnotatedReference(ref)
	collector := &diag.Collector{}
	require.True(t, annotated.AddCdsFeature(genome.NewCdsFeature("orf1", "1..9"), collector))
	annotated.Preprocess(1, 2)

	ntScorer := scorer.New[alphabet.Nucleotide](
		diagonalMatrix(alphabet.NucleotideAlphabetSize, 1, -1), -2, -1, 0, 0)
	aaScorer := scorer.New[alphabet.AminoAcid](
		diagonalMatrix(alphabet.AminoAcidAlphabetSize, 10, -5), -8, -4, -6, -3)

	return New(ntScorer, aaScorer, annotated), ref
}

func TestScoreExtendAddsAminoAcidCreditOnlyAtPhaseZero(t *testing.T) {
	g, ref := newFixture(t)
	query := ref // identity

	expected0 := g.NtScorer.ScoreExtend(ref[0], query[0])*g.Ref.NtWeight(0) +
		g.AaScorer.ScoreExtend(alphabet.MetM, alphabet.MetM)*g.Ref.AaWeight(0)
	assert.Equal(t, expected0, g.ScoreExtend(ref, query, 0, 0))

	// refI=1 has phase 1 (not a codon start): no amino-acid credit even
	// though the same CDS covers this position.
	expected1 := g.NtScorer.ScoreExtend(ref[1], query[1]) * g.Ref.NtWeight(1)
	assert.Equal(t, expected1, g.ScoreExtend(ref, query, 1, 1))
}

func TestScoreOpenRefGapWaivedAtLastReferencePosition(t *testing.T) {
	g, ref := newFixture(t)
	last := len(ref) - 1
	assert.Equal(t, 0, g.ScoreOpenRefGap(ref, ref, last, 3))
}

func TestScoreExtendRefGapWaivedAtLastReferencePosition(t *testing.T) {
	g, ref := newFixture(t)
	last := len(ref) - 1
	assert.Equal(t, 0, g.ScoreExtendRefGap(ref, ref, last, 3, 1))
}

func TestScoreOpenQueryGapWaivedAtLastQueryPosition(t *testing.T) {
	g, ref := newFixture(t)
	query := ref
	last := len(query) - 1
	assert.Equal(t, 0, g.ScoreOpenQueryGap(ref, query, 3, last))
}

func TestScoreExtendQueryGapWaivedAtLastQueryPosition(t *testing.T) {
	g, ref := newFixture(t)
	query := ref
	last := len(query) - 1
	assert.Equal(t, 0, g.ScoreExtendQueryGap(ref, query, 3, last, 1))
}

// ScoreOpenRefGap's frameshift+gap-open charge applies to every CDS context
// at a non-terminal reference position regardless of phase, mirroring the
// unconditional addition at the bottom of the per-CDS loop.
func TestScoreOpenRefGapChargesFrameshiftAndGapOpen(t *testing.T) {
	g, ref := newFixture(t)
	query := ref

	// refI=2 is phase 2 (last position of the first codon): the
	// misalignment/uncredit branch is skipped (p.Phase == 2), but the
	// unconditional frameshift+gapOpen addition still applies.
	got := g.ScoreOpenRefGap(ref, query, 2, 2)
	ntPart := g.NtScorer.ScoreOpenRefGap(len(ref), 2) * g.Ref.NtWeight(2)
	aaPart := (g.AaScorer.FrameShiftCost() + g.AaScorer.GapOpenCost()) * g.Ref.AaWeight(2)
	assert.Equal(t, ntPart+aaPart, got)
}

// ScoreExtendRefGap cancels the frameshift charge once the gap length
// becomes a multiple of three (k%3==2, about to roll over to 0), except at
// the very start of a CDS region (CdsRegionI==0).
func TestScoreExtendRefGapCancelsFrameshiftAtModThreeBoundary(t *testing.T) {
	g, ref := newFixture(t)
	query := ref

	// refI=4 (phase 1, CdsRegionI = 4/3 = 1, not region-start) with k=2:
	// the frameshift charged when the gap opened is cancelled.
	got := g.ScoreExtendRefGap(ref, query, 4, 2, 2)
	ntPart := g.NtScorer.ScoreExtendRefGap(len(ref), 4) * g.Ref.NtWeight(4)
	aaPart := -g.AaScorer.FrameShiftCost() * g.Ref.AaWeight(4)
	assert.Equal(t, ntPart+aaPart, got)

	// refI=0 is the CDS region's very first position (CdsRegionI==0): the
	// cancellation is skipped there.
	got0 := g.ScoreExtendRefGap(ref, query, 0, 2, 2)
	ntPart0 := g.NtScorer.ScoreExtendRefGap(len(ref), 0) * g.Ref.NtWeight(0)
	assert.Equal(t, ntPart0, got0)
}
