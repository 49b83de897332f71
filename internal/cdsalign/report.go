package cdsalign

import (
	"fmt"
	"strings"

	"github.com/aria-lang/codonalign/internal/alphabet"
)

// Report summarises a CDSAlignment's amino-acid-level differences: every
// substitution rendered "<refAA><1-based position><queryAA>" (e.g. "M41L"),
// plus counts of ambiguous (ChromaX) and premature-stop query codons.
type Report struct {
	Mutations   string
	Ambiguities int
	StopCodons  int
}

// Summarize walks a CDSAlignment's paired amino-acid sequences and builds
// its Report. Ref and Query are expected to be the same length (cdsalign.
// Project always trims both CodingSequences to the same codon count).
func Summarize(a CDSAlignment) Report {
	var mutations []string
	ambiguities, stopCodons := 0, 0

	n := len(a.Ref.AminoAcids)
	if len(a.Query.AminoAcids) < n {
		n = len(a.Query.AminoAcids)
	}

	for i := 0; i < n; i++ {
		ref, query := a.Ref.AminoAcids[i], a.Query.AminoAcids[i]

		if query.IsMisaligned() {
			ambiguities++
		}
		if query == alphabet.Stop && ref != alphabet.Stop {
			stopCodons++
		}
		if ref != query {
			mutations = append(mutations, fmt.Sprintf("%s%d%s", ref, i+1, query))
		}
	}

	return Report{Mutations: strings.Join(mutations, ", "), Ambiguities: ambiguities, StopCodons: stopCodons}
}
