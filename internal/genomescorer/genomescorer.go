// Package genomescorer implements the codon-aware scoring layer: for
// every DP delta, it combines the plain nucleotide substitution score
// with the amino-acid cost of every CDS context covering the reference
// position, weighted so the two scales reconcile per
// genome.AnnotatedReference's per-position weight arrays.
package genomescorer

import (
	"github.com/aria-lang/codonalign/internal/alphabet"
	"github.com/aria-lang/codonalign/internal/genome"
	"github.com/aria-lang/codonalign/internal/scorer"
)

// GenomeScorer layers a nucleotide SubstitutionScorer and an amino-acid
// SubstitutionScorer over an AnnotatedReference. It is the Scorer the
// aligner's GlobalAligner is instantiated with for codon-aware alignment.
type GenomeScorer struct {
	NtScorer *scorer.SubstitutionScorer[alphabet.Nucleotide]
	AaScorer *scorer.SubstitutionScorer[alphabet.AminoAcid]
	Ref      *genome.AnnotatedReference
}

// New builds a GenomeScorer from the two substitution scorers and the
// annotated reference they will be scored against.
func New(ntScorer *scorer.SubstitutionScorer[alphabet.Nucleotide], aaScorer *scorer.SubstitutionScorer[alphabet.AminoAcid], ref *genome.AnnotatedReference) *GenomeScorer {
	return &GenomeScorer{NtScorer: ntScorer, AaScorer: aaScorer, Ref: ref}
}

// ScoreExtend is the codon-aware diagonal delta: the plain nucleotide
// substitution plus, for every CDS context at refI whose phase is 0 (the
// first nucleotide of a codon), the amino-acid substitution induced by
// reading the query codon starting there.
func (g *GenomeScorer) ScoreExtend(ref alphabet.NucleotideSequence, query alphabet.NucleotideSequence, refI, queryI int) int {
	ntResult := g.NtScorer.ScoreExtend(ref[refI], query[queryI])

	aaResult := 0
	for _, p := range g.Ref.CdsAt(refI) {
		if p.Phase == 0 {
			aaQuery := alphabet.Translate(query, queryI, p.ReverseComplement)
			aaResult += g.AaScorer.ScoreExtend(p.AA, aaQuery)
		}
	}

	return ntResult*g.Ref.NtWeight(refI) + aaResult*g.Ref.AaWeight(refI)
}

// ScoreOpenRefGap is the codon-aware cost of opening a reference-gap run
// (the DP's horizontal move, advancing query only). For each CDS context
// not already at the last codon position (phase != 2) whose preceding
// codon start is in range, the codon the DP is "leaving" is now partial:
// charge a misalignment cost and uncredit the extend score previously
// given for that codon. Every CDS context unconditionally also adds a
// frameshift and a gap-open cost: opening a gap outside a codon boundary
// both breaks the frame and starts a new gap event.
func (g *GenomeScorer) ScoreOpenRefGap(ref, query alphabet.NucleotideSequence, refI, queryI int) int {
	if refI == len(ref)-1 {
		return 0
	}

	ntResult := g.NtScorer.ScoreOpenRefGap(len(ref), refI)

	aaResult := 0
	for _, p := range g.Ref.CdsAt(refI) {
		if p.Phase != 2 && queryI-p.Phase-1 >= 0 {
			aaResult += g.AaScorer.MisalignmentCost()

			aaQuery := alphabet.Translate(query, queryI-p.Phase-1, p.ReverseComplement)
			aaResult -= g.AaScorer.ScoreExtend(p.AA, aaQuery)
		}

		aaResult += g.AaScorer.FrameShiftCost()
		aaResult += g.AaScorer.GapOpenCost()
	}

	return ntResult*g.Ref.NtWeight(refI) + aaResult*g.Ref.AaWeight(refI)
}

// ScoreExtendRefGap is the codon-aware cost of continuing a reference-gap
// run whose length (mod 3, rotated into k) was k before this column. A
// gap that just became a multiple of three (k%3==2, about to roll to 0)
// cancels the frameshift charged when it opened, except right at the
// start of a CDS region; a gap that just crossed back to a multiple of
// three boundary (k%3==0) starts a fresh out-of-frame step.
func (g *GenomeScorer) ScoreExtendRefGap(ref, query alphabet.NucleotideSequence, refI, queryI, k int) int {
	if refI == len(ref)-1 {
		return 0
	}

	ntResult := g.NtScorer.ScoreExtendRefGap(len(ref), refI)

	aaResult := 0
	for _, p := range g.Ref.CdsAt(refI) {
		switch {
		case k%3 == 2:
			if p.CdsRegionI != 0 {
				aaResult -= g.AaScorer.FrameShiftCost()
			}
		case k%3 == 0:
			aaResult += g.AaScorer.FrameShiftCost()
			aaResult += g.AaScorer.GapExtendCost()
		}
	}

	return ntResult*g.Ref.NtWeight(refI) + aaResult*g.Ref.AaWeight(refI)
}

// ScoreOpenQueryGap is the codon-aware cost of opening a query-gap run
// (the DP's vertical move, advancing reference only). Symmetric to
// ScoreOpenRefGap but gated on phase != 0. The frameshift/gap-open
// addition is unconditional even when the gap starts at an exact codon
// boundary (CDS-region start): this is a known, deliberate compromise --
// omitting it here would let ScoreExtendQueryGap's boundary cancellation
// over-credit. Preserve it for score parity; see package genomescorer's
// ScoreExtendQueryGap doc and the design notes this mirrors.
func (g *GenomeScorer) ScoreOpenQueryGap(ref, query alphabet.NucleotideSequence, refI, queryI int) int {
	if queryI == len(query)-1 {
		return 0
	}

	ntResult := g.NtScorer.ScoreOpenQueryGap(len(query), queryI)

	aaResult := 0
	if refI > 0 {
		for _, p := range g.Ref.CdsAt(refI) {
			if p.Phase != 0 && queryI-p.Phase+1 >= 0 {
				aaResult += g.AaScorer.MisalignmentCost()

				aaQuery := alphabet.Translate(query, queryI-p.Phase+1, p.ReverseComplement)
				aaResult -= g.AaScorer.ScoreExtend(p.AA, aaQuery)
			}

			aaResult += g.AaScorer.FrameShiftCost()
			aaResult += g.AaScorer.GapOpenCost()
		}
	}

	return ntResult*g.Ref.NtWeight(refI) + aaResult*g.Ref.AaWeight(refI)
}

// ScoreExtendQueryGap is the codon-aware cost of continuing a query-gap
// run. When a CDS region starts exactly at this reference position
// (CdsRegionI == 0, Phase == 0) and the gap is not yet a multiple of
// three, an extra frameshift+misalignment charge applies -- this is the
// counterpart compensating for ScoreOpenQueryGap's unconditional charge.
// Otherwise the same k-mod-3 rules as ScoreExtendRefGap apply.
func (g *GenomeScorer) ScoreExtendQueryGap(ref, query alphabet.NucleotideSequence, refI, queryI, k int) int {
	if queryI == len(query)-1 {
		return 0
	}

	ntResult := g.NtScorer.ScoreExtendQueryGap(len(query), queryI)

	aaResult := 0
	if refI > 0 {
		for _, p := range g.Ref.CdsAt(refI) {
			if p.CdsRegionI == 0 && p.Phase == 0 {
				if k%3 != 0 {
					aaResult += g.AaScorer.FrameShiftCost()
					aaResult += g.AaScorer.MisalignmentCost()
				}
			}

			switch {
			case k%3 == 2:
				aaResult -= g.AaScorer.FrameShiftCost()
			case k%3 == 0:
				aaResult += g.AaScorer.FrameShiftCost()
				aaResult += g.AaScorer.GapExtendCost()
			}
		}
	}

	return ntResult*g.Ref.NtWeight(refI) + aaResult*g.Ref.AaWeight(refI)
}
