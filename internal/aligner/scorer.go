package aligner

// Scorer is the capability a GlobalAligner needs from whatever scoring
// layer it is instantiated with: the same five delta functions, whether
// backed by a flat SubstitutionScorer or a codon-aware GenomeScorer. Seq
// is the sequence type both ref and query share (alphabet.NucleotideSequence
// in every production instantiation).
type Scorer[Seq any] interface {
	ScoreExtend(ref, query Seq, i, j int) int
	ScoreOpenRefGap(ref, query Seq, i, j int) int
	ScoreExtendRefGap(ref, query Seq, i, j, k int) int
	ScoreOpenQueryGap(ref, query Seq, i, j int) int
	ScoreExtendQueryGap(ref, query Seq, i, j, k int) int
}
