package alphabet

// Translate reads a codon out of seq at a window anchored on i and returns
// its amino acid. On the forward strand the codon is (i, i+1, i+2). On the
// complement strand the codon is read 3' to 5' ending at i, i.e. the
// complement of (i, i-1, i-2) — this is how a reverse-strand CDS's codon
// boundaries land on forward-strand query coordinates. Any window that runs
// off either end of seq, or touches a gap/missing/ambiguous base, yields AAX
// rather than panicking: the caller (GenomeScorer) uses this during
// speculative DP transitions where the window may not be meaningful yet.
func Translate(seq NucleotideSequence, i int, reverseComplement bool) AminoAcid {
	if !reverseComplement {
		if i < 0 || i+2 >= len(seq) {
			return AAX
		}
		return TranslateCodon(seq[i], seq[i+1], seq[i+2])
	}

	if i-2 < 0 || i >= len(seq) {
		return AAX
	}
	return TranslateCodon(seq[i].Complement(), seq[i-1].Complement(), seq[i-2].Complement())
}
