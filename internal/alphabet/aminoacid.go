package alphabet

import "fmt"

// AminoAcid is one of the 20 standard amino acids, a stop codon, the
// ambiguity symbol X, or the gap/missing sentinels.
type AminoAcid int8

const (
	AlaA AminoAcid = iota
	ArgR
	AsnN
	AspD
	CysC
	GlnQ
	GluE
	GlyG
	HisH
	IleI
	LeuL
	LysK
	MetM
	PheF
	ProP
	SerS
	ThrT
	TrpW
	TyrY
	ValV
	Stop
	AAX // ambiguous / untranslatable codon
	AAGap
	AAMissing
)

// AminoAcidAlphabetSize is the dimension expected of an amino-acid
// substitution matrix.
const AminoAcidAlphabetSize = int(AAMissing) + 1

var aminoAcidLetters = [...]byte{
	AlaA: 'A', ArgR: 'R', AsnN: 'N', AspD: 'D', CysC: 'C',
	GlnQ: 'Q', GluE: 'E', GlyG: 'G', HisH: 'H', IleI: 'I',
	LeuL: 'L', LysK: 'K', MetM: 'M', PheF: 'F', ProP: 'P',
	SerS: 'S', ThrT: 'T', TrpW: 'W', TyrY: 'Y', ValV: 'V',
	Stop: '*', AAX: 'X', AAGap: '-', AAMissing: '?',
}

func (a AminoAcid) IntRep() int        { return int(a) }
func (a AminoAcid) IsGap() bool        { return a == AAGap }
func (a AminoAcid) IsMissing() bool    { return a == AAMissing }
func (a AminoAcid) IsMisaligned() bool { return a == AAX }

func (a AminoAcid) String() string {
	if int(a) >= 0 && int(a) < len(aminoAcidLetters) {
		return string(aminoAcidLetters[a])
	}
	return fmt.Sprintf("AminoAcid(%d)", int(a))
}
