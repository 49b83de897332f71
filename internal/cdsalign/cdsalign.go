// Package cdsalign cuts per-CDS amino-acid sub-alignments out of a global
// nucleotide alignment and repairs frameshifting gaps so the resulting
// coding sequence translates without ambiguity, while preserving the
// mutation signal a biologist actually cares about.
package cdsalign

import (
	"github.com/aria-lang/codonalign/internal/alphabet"
	"github.com/aria-lang/codonalign/internal/cigar"
	"github.com/aria-lang/codonalign/internal/genome"
)

// CodingSequence pairs a (possibly gapped) nucleotide run with its
// codon-by-codon translation.
type CodingSequence struct {
	Nucleotides alphabet.NucleotideSequence
	AminoAcids  []alphabet.AminoAcid
}

func newCodingSequence(nt alphabet.NucleotideSequence) CodingSequence {
	aa := make([]alphabet.AminoAcid, len(nt)/3)
	for i := range aa {
		aa[i] = alphabet.TranslateCodon(nt[3*i], nt[3*i+1], nt[3*i+2])
	}
	return CodingSequence{Nucleotides: nt, AminoAcids: aa}
}

// CDSAlignment is the result of projecting one CDS feature's regions out
// of a global alignment and repairing any frameshifts found there.
type CDSAlignment struct {
	Feature           string
	Ref, Query        CodingSequence
	RefFrameshifts    map[int]struct{} // repaired-frameshift column indices inserted into Ref/Query
	RefMisAlignedGaps map[int]struct{} // codon indices (i/3) flagged as off-phase
	QueryFrameshifts  int
}

// Project cuts and frameshift-repairs per-CDS sub-alignments out of the
// global alignment described by script between ref and query. When
// overlappingOnly is set, features whose regions don't overlap the
// script's aligned query range are skipped entirely.
func Project(ref, query alphabet.NucleotideSequence, script cigar.Script, features []genome.CdsFeature, overlappingOnly bool) []CDSAlignment {
	alignedRef, alignedQuery := script.ToAlignedPair(ref, query)

	queryRange := genome.Region{Start: script.QueryStart(), End: script.QueryEnd()}

	var result []CDSAlignment
	for _, f := range features {
		if overlappingOnly {
			overlap := false
			for _, r := range f.Regions {
				if r.Overlaps(queryRange) {
					overlap = true
					break
				}
			}
			if !overlap {
				continue
			}
		}

		var cdsRef, cdsQuery alphabet.NucleotideSequence
		for _, r := range f.Regions {
			alignedStart := script.FindAlignedPos(r.Start)
			alignedEnd := script.FindAlignedPos(r.End-1) + 1
			cdsRef = append(cdsRef, alignedRef[alignedStart:alignedEnd]...)
			cdsQuery = append(cdsQuery, alignedQuery[alignedStart:alignedEnd]...)
		}

		if f.Complement {
			cdsRef = cdsRef.ReverseComplement()
			cdsQuery = cdsQuery.ReverseComplement()
		}

		cdsRef, cdsQuery, refFrameshifts, refMisAligned, queryFrameshifts := repairFrame(cdsRef, cdsQuery)

		for len(cdsRef)%3 != 0 {
			cdsRef = cdsRef[:len(cdsRef)-1]
			cdsQuery = cdsQuery[:len(cdsQuery)-1]
		}

		result = append(result, CDSAlignment{
			Feature:           f.Name,
			Ref:               newCodingSequence(cdsRef),
			Query:             newCodingSequence(cdsQuery),
			RefFrameshifts:    refFrameshifts,
			RefMisAlignedGaps: refMisAligned,
			QueryFrameshifts:  queryFrameshifts,
		})
	}

	return result
}

// repairFrame walks the concatenated, strand-corrected (ref, query)
// column pair, tracking the running reference- and query-gap run
// lengths. Whenever a reference-gap run ends not a multiple of three, it
// inserts paired GAP/GAP columns until it is, recording each inserted
// column as a repaired frameshift; off-phase gaps (mod-3 but landing
// off-codon, or not mod-3 with a length residue that differs from the
// column's codon phase) are flagged as misaligned-gap codons.
// Query-gap runs that aren't a multiple of three and don't span the CDS's
// very beginning are simply counted.
func repairFrame(ref, query alphabet.NucleotideSequence) (alphabet.NucleotideSequence, alphabet.NucleotideSequence, map[int]struct{}, map[int]struct{}, int) {
	refFrameshifts := make(map[int]struct{})
	refMisAligned := make(map[int]struct{})
	queryFrameshifts := 0
	currentRefGap, currentQueryGap := 0, 0

	i := 0
	for i < len(ref) {
		if ref[i].IsGap() {
			currentRefGap++
		} else {
			switch {
			case query[i].IsGap():
				currentQueryGap++
			case currentQueryGap%3 != 0:
				if currentQueryGap != i {
					queryFrameshifts++
				}
				currentQueryGap = 0
			case currentRefGap > 0 && currentRefGap%3 == 0 && i%3 != 0:
				refMisAligned[i/3] = struct{}{}
			}

			if currentRefGap%3 != 0 && i%3 != currentRefGap%3 {
				refMisAligned[i/3] = struct{}{}
			}

			for currentRefGap%3 != 0 {
				ref = insertGap(ref, i)
				query = insertGap(query, i)
				currentRefGap++
				refFrameshifts[i] = struct{}{}
				i++
			}

			currentRefGap = 0
		}
		i++
	}

	return ref, query, refFrameshifts, refMisAligned, queryFrameshifts
}

func insertGap(seq alphabet.NucleotideSequence, i int) alphabet.NucleotideSequence {
	seq = append(seq, 0)
	copy(seq[i+1:], seq[i:])
	seq[i] = alphabet.NucGap
	return seq
}
