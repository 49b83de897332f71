package genome

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aria-lang/codonalign/internal/alphabet"
)

// locationTokenRe pulls every "start..end" or "start..>end" pair out of a
// Genbank-style location string, in order, regardless of surrounding
// "join(" / "complement(" wrapper syntax.
var locationTokenRe = regexp.MustCompile(`([0-9]+)\.\.>?([0-9]+)`)

// CdsPosition is the codon context a CdsFeature contributes to a single
// reference nucleotide position: the amino acid expected there, the
// position's phase within its codon (0 = codon start, in the feature's
// reading direction), the strand, and the index of the codon within its
// region.
type CdsPosition struct {
	AA                alphabet.AminoAcid
	Phase             int
	ReverseComplement bool
	CdsRegionI        int
}

// CdsFeature is a named protein-coding region: a reading direction, an
// ordered list of nucleotide regions on the reference whose concatenation
// forms the coding sequence, and (once Process succeeds) the translated
// amino-acid sequence.
type CdsFeature struct {
	Name        string
	Complement  bool
	LocationStr string
	Regions     []Region
	AA          []alphabet.AminoAcid
}

// ParseLocation parses a Genbank-convention location string into regions
// and a strand flag: an optional "complement(...)" wrapper, and inside,
// comma-separated "start..end" or "start..>end" tokens with 1-based
// inclusive endpoints, converted here to 0-based half-open.
func ParseLocation(location string) []Region {
	var regions []Region
	for _, m := range locationTokenRe.FindAllStringSubmatch(location, -1) {
		start, err1 := strconv.Atoi(m[1])
		end, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		regions = append(regions, Region{Start: start - 1, End: end})
	}
	return regions
}

// NewCdsFeature parses name/location into a CdsFeature. The amino-acid
// sequence is not yet populated: call Process against the reference to
// translate it.
func NewCdsFeature(name, location string) CdsFeature {
	return CdsFeature{
		Name:        name,
		Complement:  strings.HasPrefix(location, "complement"),
		LocationStr: location,
		Regions:     ParseLocation(location),
	}
}

// Process concatenates the feature's regions out of ref, reverse-
// complementing for a complement-strand feature, and translates the
// result. It returns an error (and leaves the feature's AA fields
// untouched) if the concatenated span is not a multiple of 3 -- the
// feature should then be rejected by the caller, per spec.
func (f *CdsFeature) Process(ref alphabet.NucleotideSequence) error {
	var nt alphabet.NucleotideSequence
	for _, r := range f.Regions {
		nt = append(nt, ref[r.Start:r.End]...)
	}

	if len(nt)%3 != 0 {
		return &alphabet.InvalidLengthError{
			Name:     f.Name,
			Length:   len(nt),
			Expected: "a multiple of 3",
		}
	}

	if f.Complement {
		nt = nt.ReverseComplement()
	}

	aa := make([]alphabet.AminoAcid, len(nt)/3)
	for i := range aa {
		aa[i] = alphabet.TranslateCodon(nt[3*i], nt[3*i+1], nt[3*i+2])
	}

	f.AA = aa
	return nil
}

// GetCdsNucleotidePos returns the cumulative offset of genomePos within
// the concatenation of the feature's regions, or -1 if genomePos lies
// outside every region.
func (f *CdsFeature) GetCdsNucleotidePos(genomePos int) int {
	result := 0
	for _, r := range f.Regions {
		if genomePos >= r.Start && genomePos < r.End {
			return result + (genomePos - r.Start)
		}
		result += r.Len()
	}
	return -1
}

// GetRegionNucleotidePos returns the offset of genomePos within whichever
// specific region contains it, or -1 if none does.
func (f *CdsFeature) GetRegionNucleotidePos(genomePos int) int {
	for _, r := range f.Regions {
		if genomePos >= r.Start && genomePos < r.End {
			return genomePos - r.Start
		}
	}
	return -1
}

// GetAminoAcid derives the CdsPosition for a position already known (via
// GetCdsNucleotidePos / GetRegionNucleotidePos) to lie within this
// feature. On the forward strand the codon order runs with the sequence;
// on the complement strand the amino-acid index counts backward from the
// translated sequence's end since Process reverse-complemented the codon
// stream before translating.
func (f *CdsFeature) GetAminoAcid(cdsNucleotidePos, regionNucleotidePos int) CdsPosition {
	var aaI, phase int
	if !f.Complement {
		aaI = cdsNucleotidePos / 3
		phase = cdsNucleotidePos % 3
	} else {
		phase = cdsNucleotidePos % 3
		flipped := len(f.AA)*3 - cdsNucleotidePos - 1
		aaI = flipped / 3
	}

	return CdsPosition{
		AA:                f.AA[aaI],
		Phase:             phase,
		ReverseComplement: f.Complement,
		CdsRegionI:        regionNucleotidePos / 3,
	}
}

// Contains reports whether every codon-start position of other also
// starts a codon in f on the same strand -- used to filter redundant
// sub-annotations (e.g. a mature-peptide feature wholly inside its
// polyprotein).
func (f *CdsFeature) Contains(other *CdsFeature) bool {
	if f.Complement != other.Complement {
		return false
	}
	if f.Name == other.Name {
		return true
	}

	codonStarts := make(map[int]struct{})
	spillover := 0
	for _, r := range f.Regions {
		g := r.Start + spillover
		for ; g < r.End; g += 3 {
			codonStarts[g] = struct{}{}
		}
		spillover = g - r.End
	}

	spillover = 0
	for _, r := range other.Regions {
		g := r.Start + spillover
		for ; g < r.End; g += 3 {
			if _, ok := codonStarts[g]; !ok {
				return false
			}
		}
		spillover = g - r.End
	}

	return true
}

func (f CdsFeature) String() string {
	return fmt.Sprintf("%s@%s", f.Name, f.LocationStr)
}
