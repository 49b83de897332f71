package genome

import (
	"github.com/aria-lang/codonalign/internal/alphabet"
	"github.com/aria-lang/codonalign/internal/diag"
)

// AnnotatedReference is a reference nucleotide sequence plus its CDS
// features and the derived per-position codon context and scoring
// weights GenomeScorer reads from during alignment. It is built once and
// is immutable (read-only) after Preprocess; multiple alignment workers
// may share one without synchronisation.
type AnnotatedReference struct {
	Sequence alphabet.NucleotideSequence
	Features []CdsFeature

	cdsAA       [][]CdsPosition
	ntWeight    []int
	aaWeight    []int
	scoreFactor int
}

// NewAnnotatedReference wraps a reference sequence with no CDS features
// yet attached.
func NewAnnotatedReference(sequence alphabet.NucleotideSequence) *AnnotatedReference {
	return &AnnotatedReference{Sequence: sequence}
}

// AddCdsFeature translates feature against the reference and appends it
// on success. A feature whose concatenated span is not a multiple of 3 is
// rejected: the error is reported to the collector and the feature is
// dropped rather than added, per the "recoverable data problem" policy.
func (g *AnnotatedReference) AddCdsFeature(feature CdsFeature, collector *diag.Collector) bool {
	if err := feature.Process(g.Sequence); err != nil {
		if collector != nil {
			collector.Report(diag.MalformedCDS{Name: feature.Name, Err: err})
		}
		return false
	}
	g.Features = append(g.Features, feature)
	return true
}

// gcd and lcm back Preprocess's weight-balancing construction; there is
// no pack library offering integer LCM.
func gcd(a, b int) int {
	for a != 0 {
		a, b = b%a, a
	}
	return b
}

func lcm2(a, b int) int {
	g := gcd(a, b)
	if g == 0 {
		return 0
	}
	return a / g * b
}

func lcm(numbers []int) int {
	result := 1
	for _, n := range numbers {
		result = lcm2(result, n)
	}
	return result
}

// Preprocess builds the per-position CDS codon context (cdsAA) and the
// derived nt/aa weight arrays. Two CdsPositions with the same
// (Phase, ReverseComplement) at one reference position are deduplicated.
// The weight construction finds, over K = 1..Kmax (the largest number of
// CDS contexts seen at any one position), the LCM L of k*aaWeight and
// distributes factors so that ntWeight[p] + K(p)*aaWeight[p] equals
// ntWeight*scoreFactor + L at every position covered by a CDS, regardless
// of how many CDS contexts cover it.
func (g *AnnotatedReference) Preprocess(ntWeight, aaWeight int) {
	size := len(g.Sequence)
	g.cdsAA = make([][]CdsPosition, size)
	g.ntWeight = make([]int, size)
	g.aaWeight = make([]int, size)

	maxAaPerNt := 0

	for i := 0; i < size; i++ {
		for fi := range g.Features {
			f := &g.Features[fi]
			t := f.GetCdsNucleotidePos(i)
			if t < 0 {
				continue
			}
			r := f.GetRegionNucleotidePos(i)
			p := f.GetAminoAcid(t, r)

			add := true
			for _, p2 := range g.cdsAA[i] {
				if p2.Phase == p.Phase && p2.ReverseComplement == p.ReverseComplement {
					add = false
					break
				}
			}
			if add {
				g.cdsAA[i] = append(g.cdsAA[i], p)
			}
		}
		if len(g.cdsAA[i]) > maxAaPerNt {
			maxAaPerNt = len(g.cdsAA[i])
		}
	}

	totals := make([]int, maxAaPerNt)
	for i := 1; i <= maxAaPerNt; i++ {
		totals[i-1] = i * aaWeight
	}
	l := lcm(totals)

	factors := make([]int, maxAaPerNt)
	for i := 1; i <= maxAaPerNt; i++ {
		factors[i-1] = 0
		if totals[i-1] != 0 {
			factors[i-1] = l / totals[i-1]
		}
	}

	theNtWeight := ntWeight
	if len(factors) > 0 {
		g.scoreFactor = factors[0]
		theNtWeight = g.scoreFactor * ntWeight
	} else {
		g.scoreFactor = 1
	}

	for i := 0; i < size; i++ {
		aaCount := len(g.cdsAA[i])
		g.ntWeight[i] = theNtWeight
		if aaCount > 0 {
			g.aaWeight[i] = aaWeight * factors[aaCount-1]
		}
	}
}

// Len is the reference's nucleotide length.
func (g *AnnotatedReference) Len() int { return len(g.Sequence) }

// CdsAt returns the (possibly empty) set of CDS codon contexts touching
// reference position pos.
func (g *AnnotatedReference) CdsAt(pos int) []CdsPosition { return g.cdsAA[pos] }

// ScoreFactor is the nucleotide-weight multiplier computed by Preprocess:
// L/aaWeight, which is lcm(1..Kmax) when at least one CDS context exists
// anywhere, and 1 otherwise.
func (g *AnnotatedReference) ScoreFactor() int { return g.scoreFactor }

// NtWeight is the per-position nucleotide score multiplier.
func (g *AnnotatedReference) NtWeight(pos int) int { return g.ntWeight[pos] }

// AaWeight is the per-position amino-acid score multiplier.
func (g *AnnotatedReference) AaWeight(pos int) int { return g.aaWeight[pos] }
