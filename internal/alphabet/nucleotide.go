package alphabet

import "fmt"

// Nucleotide is one of the four DNA bases plus the ambiguous, gap and
// missing sentinels. IntRep is a dense index into substitution matrices.
type Nucleotide int8

const (
	NucA Nucleotide = iota
	NucC
	NucG
	NucT
	NucN // ambiguous / unknown base
	NucGap
	NucMissing
)

// NucleotideAlphabetSize is the dimension expected of a nucleotide
// substitution matrix.
const NucleotideAlphabetSize = int(NucMissing) + 1

var nucleotideLetters = map[byte]Nucleotide{
	'A': NucA, 'a': NucA,
	'C': NucC, 'c': NucC,
	'G': NucG, 'g': NucG,
	'T': NucT, 't': NucT,
	'U': NucT, 'u': NucT, // transcribed RNA read as T
	'N': NucN, 'n': NucN,
	'-': NucGap,
	'?': NucMissing,
}

// ParseNucleotide maps a FASTA base letter to a Nucleotide.
func ParseNucleotide(b byte) (Nucleotide, error) {
	n, ok := nucleotideLetters[b]
	if !ok {
		return 0, &InvalidBaseError{Found: rune(b)}
	}
	return n, nil
}

func (n Nucleotide) IntRep() int        { return int(n) }
func (n Nucleotide) IsGap() bool        { return n == NucGap }
func (n Nucleotide) IsMissing() bool    { return n == NucMissing }
func (n Nucleotide) IsMisaligned() bool { return false }

// Complement returns the Watson-Crick complement; GAP, MISSING and the
// ambiguous base complement to themselves.
func (n Nucleotide) Complement() Nucleotide {
	switch n {
	case NucA:
		return NucT
	case NucT:
		return NucA
	case NucC:
		return NucG
	case NucG:
		return NucC
	default:
		return n
	}
}

func (n Nucleotide) String() string {
	switch n {
	case NucA:
		return "A"
	case NucC:
		return "C"
	case NucG:
		return "G"
	case NucT:
		return "T"
	case NucN:
		return "N"
	case NucGap:
		return "-"
	case NucMissing:
		return "?"
	default:
		return fmt.Sprintf("Nucleotide(%d)", int(n))
	}
}
