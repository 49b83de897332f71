// Package alphabet defines the two closed character sets the aligner core
// operates on (nucleotide and amino acid), a standard-genetic-code codon
// translator, and a validated nucleotide sequence type.
//
// Polymorphism over the scorer and alphabet is expressed as an explicit
// capability set: any type satisfying Character can stand in for A in a
// SubstitutionScorer[A].
package alphabet

// Character is the capability set a SubstitutionScorer needs from whichever
// alphabet it is instantiated over: a stable small integer index for matrix
// lookup, and the three sentinel predicates the DP core and stats pass rely
// on. IsMisaligned reports whether the character is the amino-acid
// ambiguity symbol X (the neighbour check that decides whether an X counts
// as misaligned is made by CalcStats); nucleotides never report misaligned.
type Character interface {
	comparable
	IntRep() int
	IsGap() bool
	IsMissing() bool
	IsMisaligned() bool
}
