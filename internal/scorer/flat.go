package scorer

import "github.com/aria-lang/codonalign/internal/alphabet"

// Flat adapts a SubstitutionScorer to the aligner.Scorer shape (delta
// functions taking whole sequences and absolute indices) for the
// non-codon-aware alignment path: SideN=1, no amino-acid layer. Used for
// a plain nucleotide/amino-acid affine-gap alignment, and as the Scorer
// fed to both GlobalAligner and the brute-force reference solver in the
// aligner's optimality tests. Seq is spelled out as its own type
// parameter (rather than derived as []C) so
// that Flat[Nucleotide, alphabet.NucleotideSequence] satisfies
// aligner.Scorer[alphabet.NucleotideSequence] exactly: a named slice type
// and its unnamed underlying slice type are distinct for interface
// method-signature matching.
type Flat[C alphabet.Character, Seq ~[]C] struct {
	S *SubstitutionScorer[C]
}

func (f Flat[C, Seq]) ScoreExtend(ref, query Seq, i, j int) int {
	return f.S.ScoreExtend(ref[i], query[j])
}

func (f Flat[C, Seq]) ScoreOpenRefGap(ref, query Seq, i, j int) int {
	return f.S.ScoreOpenRefGap(len(ref), i)
}

func (f Flat[C, Seq]) ScoreExtendRefGap(ref, query Seq, i, j, k int) int {
	return f.S.ScoreExtendRefGap(len(ref), i)
}

func (f Flat[C, Seq]) ScoreOpenQueryGap(ref, query Seq, i, j int) int {
	return f.S.ScoreOpenQueryGap(len(query), j)
}

func (f Flat[C, Seq]) ScoreExtendQueryGap(ref, query Seq, i, j, k int) int {
	return f.S.ScoreExtendQueryGap(len(query), j)
}
