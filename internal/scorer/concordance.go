package scorer

import "github.com/aria-lang/codonalign/internal/alphabet"

// Concordance reports how much of the alignment's scoring credit is
// actually explained by real aligned characters, as a percentage. It
// rebuilds a "perfect" version of the query (every aligned column forced
// to match the reference) and compares its score against the real one,
// scaled by the fraction of non-gap query columns that had a real
// reference character to align against.
//
// This is a reporting aid, not something the DP core consults: a low
// concordance on a high-scoring alignment usually means the score is being
// carried by a few long, cheap-to-extend runs rather than by broad
// agreement between the sequences.
func Concordance[C alphabet.Character](s *SubstitutionScorer[C], alignedRef, alignedQuery []C, penalizeUnaligned bool) float64 {
	score := s.CalcScore(alignedRef, alignedQuery, 0)

	r2 := make([]C, len(alignedRef))
	copy(r2, alignedRef)
	q2 := make([]C, len(alignedQuery))
	copy(q2, alignedQuery)

	unaligned, aligned := 0, 0

	for i := 0; i < len(r2); i++ {
		if r2[i].IsGap() {
			r2 = append(r2[:i], r2[i+1:]...)
			q2 = append(q2[:i], q2[i+1:]...)
			i--
			continue
		}
		if !q2[i].IsMissing() && !q2[i].IsGap() {
			if !r2[i].IsMissing() {
				aligned++
				q2[i] = r2[i]
			} else if penalizeUnaligned {
				unaligned++
			}
		}
	}

	if aligned+unaligned == 0 {
		return 0
	}

	perfectScore := s.CalcScore(r2, q2, 0)
	if perfectScore <= 0 {
		return 0
	}

	return (float64(aligned) / float64(aligned+unaligned)) * float64(score) / float64(perfectScore) * 100
}
