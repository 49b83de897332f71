// Package genome implements the annotated-reference model: CDS feature
// parsing, per-nucleotide codon context, and the per-position scoring
// weights that let one nucleotide score and N amino-acid scores share a
// common scale.
package genome

// Region is a half-open integer interval [Start, End) over reference
// coordinates, converted from Genbank's 1-based inclusive convention on
// parse.
type Region struct {
	Start, End int
}

// Len is the number of positions the region spans.
func (r Region) Len() int { return r.End - r.Start }

// Overlaps reports whether r and other share any position.
func (r Region) Overlaps(other Region) bool {
	return other.Start < r.End && other.End > r.Start
}
