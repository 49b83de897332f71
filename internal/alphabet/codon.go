package alphabet

// codonTable is the standard genetic code, indexed by three bases in
// [NucA, NucC, NucG, NucT] order. Any codon touching N, GAP or MISSING
// translates to AAX: the ambiguity propagates rather than silently picking
// a base.
var codonTable = map[[3]Nucleotide]AminoAcid{
	{NucT, NucT, NucT}: PheF, {NucT, NucT, NucC}: PheF,
	{NucT, NucT, NucA}: LeuL, {NucT, NucT, NucG}: LeuL,
	{NucC, NucT, NucT}: LeuL, {NucC, NucT, NucC}: LeuL,
	{NucC, NucT, NucA}: LeuL, {NucC, NucT, NucG}: LeuL,
	{NucA, NucT, NucT}: IleI, {NucA, NucT, NucC}: IleI,
	{NucA, NucT, NucA}: IleI, {NucA, NucT, NucG}: MetM,
	{NucG, NucT, NucT}: ValV, {NucG, NucT, NucC}: ValV,
	{NucG, NucT, NucA}: ValV, {NucG, NucT, NucG}: ValV,
	{NucT, NucC, NucT}: SerS, {NucT, NucC, NucC}: SerS,
	{NucT, NucC, NucA}: SerS, {NucT, NucC, NucG}: SerS,
	{NucC, NucC, NucT}: ProP, {NucC, NucC, NucC}: ProP,
	{NucC, NucC, NucA}: ProP, {NucC, NucC, NucG}: ProP,
	{NucA, NucC, NucT}: ThrT, {NucA, NucC, NucC}: ThrT,
	{NucA, NucC, NucA}: ThrT, {NucA, NucC, NucG}: ThrT,
	{NucG, NucC, NucT}: AlaA, {NucG, NucC, NucC}: AlaA,
	{NucG, NucC, NucA}: AlaA, {NucG, NucC, NucG}: AlaA,
	{NucT, NucA, NucT}: TyrY, {NucT, NucA, NucC}: TyrY,
	{NucT, NucA, NucA}: Stop, {NucT, NucA, NucG}: Stop,
	{NucC, NucA, NucT}: HisH, {NucC, NucA, NucC}: HisH,
	{NucC, NucA, NucA}: GlnQ, {NucC, NucA, NucG}: GlnQ,
	{NucA, NucA, NucT}: AsnN, {NucA, NucA, NucC}: AsnN,
	{NucA, NucA, NucA}: LysK, {NucA, NucA, NucG}: LysK,
	{NucG, NucA, NucT}: AspD, {NucG, NucA, NucC}: AspD,
	{NucG, NucA, NucA}: GluE, {NucG, NucA, NucG}: GluE,
	{NucT, NucG, NucT}: CysC, {NucT, NucG, NucC}: CysC,
	{NucT, NucG, NucA}: Stop, {NucT, NucG, NucG}: TrpW,
	{NucC, NucG, NucT}: ArgR, {NucC, NucG, NucC}: ArgR,
	{NucC, NucG, NucA}: ArgR, {NucC, NucG, NucG}: ArgR,
	{NucA, NucG, NucT}: SerS, {NucA, NucG, NucC}: SerS,
	{NucA, NucG, NucA}: ArgR, {NucA, NucG, NucG}: ArgR,
	{NucG, NucG, NucT}: GlyG, {NucG, NucG, NucC}: GlyG,
	{NucG, NucG, NucA}: GlyG, {NucG, NucG, NucG}: GlyG,
}

// TranslateCodon looks up the amino acid for three nucleotides read 5' to
// 3'. Ambiguous bases, gaps and missing data all translate to AAX.
func TranslateCodon(n0, n1, n2 Nucleotide) AminoAcid {
	aa, ok := codonTable[[3]Nucleotide{n0, n1, n2}]
	if !ok {
		return AAX
	}
	return aa
}
