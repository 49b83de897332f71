package cigar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/codonalign/internal/alphabet"
)

func mustSeq(t *testing.T, bases string) alphabet.NucleotideSequence {
	t.Helper()
	seq, err := alphabet.ParseNucleotideSequence(bases)
	require.NoError(t, err)
	return seq
}

func TestScriptStringRoundTrip(t *testing.T) {
	tests := []string{"4M", "3M1X", "2M1I2M", "1X2M1O", "10M"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			script, warnings, err := ParseString(text)
			require.NoError(t, err)
			assert.Empty(t, warnings)
			assert.Equal(t, text, script.String())
		})
	}
}

func TestParseStringWhitespaceTolerant(t *testing.T) {
	script, warnings, err := ParseString("4M \t3D\n2M")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "4M3D2M", script.String())
}

func TestParseStringUnknownLetterCoercedToMatch(t *testing.T) {
	script, warnings, err := ParseString("3M2Z4M")
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, byte('Z'), warnings[0].Letter)
	// the coerced run merges with its Match neighbours into one run
	assert.Equal(t, "9M", script.String())
}

func TestFromAlignedPairRewritesBoundaryQueryGapToRefSkipped(t *testing.T) {
	ref := mustSeq(t, "AAATGC")
	query := mustSeq(t, "--ATGC")

	script := FromAlignedPair(ref, query)
	require.NotEmpty(t, script)
	assert.Equal(t, RefSkipped, script[0].Op)
}

func TestFromAlignedPairIdentical(t *testing.T) {
	ref := mustSeq(t, "ATGCATGC")
	query := mustSeq(t, "ATGCATGC")

	script := FromAlignedPair(ref, query)
	assert.Equal(t, "8M", script.String())
}

func TestToAlignedPairRoundTrip(t *testing.T) {
	ref := mustSeq(t, "ATGCATGC")
	query := mustSeq(t, "ATGAATGC")

	script := FromAlignedPair(ref, query)
	outRef, outQuery := script.ToAlignedPair(ref, query)

	assert.Equal(t, ref.String(), outRef.String())
	assert.Equal(t, query.String(), outQuery.String())
}

func TestToAlignedPairWithGaps(t *testing.T) {
	ref := mustSeq(t, "ATG")
	script := MustParseString("3I3M")

	query := mustSeq(t, "AAAATG")
	outRef, outQuery := script.ToAlignedPair(ref, query)

	assert.Equal(t, "---ATG", outRef.String())
	assert.Equal(t, "AAAATG", outQuery.String())
}

func TestFindAlignedPos(t *testing.T) {
	script := MustParseString("3M2I4M")

	assert.Equal(t, 0, script.FindAlignedPos(0))
	assert.Equal(t, 2, script.FindAlignedPos(2))
	// refPos 3 falls after the 3M run; the 2I run doesn't consume ref, so
	// it lands at the start of the following match run, aligned column 5
	assert.Equal(t, 5, script.FindAlignedPos(3))
	assert.Equal(t, 9, script.FindAlignedPos(7))
}

func TestFindAlignedPosPastEndPanics(t *testing.T) {
	script := MustParseString("3M")
	assert.Panics(t, func() {
		script.FindAlignedPos(10)
	})
}

func TestQueryStartEnd(t *testing.T) {
	script := MustParseString("2O5M1O")

	assert.Equal(t, 2, script.QueryStart())
	assert.Equal(t, 7, script.QueryEnd())
}

func TestQueryStartEndNoOverhang(t *testing.T) {
	script := MustParseString("5M")

	assert.Equal(t, 0, script.QueryStart())
	assert.Equal(t, 5, script.QueryEnd())
}

func TestTrimQuery(t *testing.T) {
	script := MustParseString("2O4M3O")
	query := mustSeq(t, "AACCGGTTT")

	trimmed, trimmedQuery := script.TrimQuery(query)

	assert.Equal(t, "4M", trimmed.String())
	assert.Equal(t, "CCGG", trimmedQuery.String())
}

func TestTrimQueryNoOverhangIsNoop(t *testing.T) {
	script := MustParseString("4M")
	query := mustSeq(t, "ACGT")

	trimmed, trimmedQuery := script.TrimQuery(query)

	assert.Equal(t, script.String(), trimmed.String())
	assert.Equal(t, query.String(), trimmedQuery.String())
}

func TestTrimQueryStartAccumulatesIntoBoundaryRuns(t *testing.T) {
	// 2 Match columns trimmed from the start: each contributes 1 ref +
	// 1 query column to the new boundary runs.
	script := MustParseString("5M")
	trimmed := script.TrimQueryStart(2)

	assert.Equal(t, "2X2O3M", trimmed.String())
}

func TestTrimQueryStartThroughRefGap(t *testing.T) {
	// 1I2M: trimming 2 columns consumes the RefGap entirely (contributes
	// only to querySkipped) then one Match column (contributes to both).
	script := MustParseString("1I2M")
	trimmed := script.TrimQueryStart(2)

	assert.Equal(t, "1X2O1M", trimmed.String())
}

func TestTrimQueryStartExtendsExistingBoundaryRun(t *testing.T) {
	script := MustParseString("1X1O3M")
	trimmed := script.TrimQueryStart(3)

	// the leading 1X and 1O carry forward for free and don't count against
	// n, so all 3 columns of the budget land on the Match run, extending
	// both boundary runs by 3
	assert.Equal(t, "4X4O", trimmed.String())
}

func TestTrimQueryEndAccumulatesIntoBoundaryRuns(t *testing.T) {
	script := MustParseString("5M")
	trimmed := script.TrimQueryEnd(2)

	assert.Equal(t, "3M2O2X", trimmed.String())
}

func TestTrimQueryStartZeroIsNoop(t *testing.T) {
	script := MustParseString("5M")
	trimmed := script.TrimQueryStart(0)
	assert.Equal(t, "5M", trimmed.String())
}

func TestTrimQueryStartIsMonotonic(t *testing.T) {
	cases := []struct {
		name   string
		script string
		k, m   int
	}{
		{"plain match run", "6M", 2, 3},
		{"through a ref gap", "2I4M", 1, 2},
		{"through a query gap", "3D3M", 2, 2},
		{"already boundaried", "2X1O4M", 1, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			viaSteps := MustParseString(c.script).TrimQueryStart(c.k).TrimQueryStart(c.m)
			viaSum := MustParseString(c.script).TrimQueryStart(c.k + c.m)
			assert.Equal(t, viaSum.String(), viaSteps.String())
		})
	}
}

func TestTrimQueryEndIsMonotonic(t *testing.T) {
	cases := []struct {
		name   string
		script string
		k, m   int
	}{
		{"plain match run", "6M", 2, 3},
		{"through a ref gap", "4M2I", 1, 2},
		{"through a query gap", "3M3D", 2, 2},
		{"already boundaried", "4M1O2X", 1, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			viaSteps := MustParseString(c.script).TrimQueryEnd(c.k).TrimQueryEnd(c.m)
			viaSum := MustParseString(c.script).TrimQueryEnd(c.k + c.m)
			assert.Equal(t, viaSum.String(), viaSteps.String())
		})
	}
}

func scriptTotalLength(s Script) int {
	n := 0
	for _, it := range s {
		n += it.Length
	}
	return n
}

func TestTrimQueryStartToFullLengthIsAllSkipped(t *testing.T) {
	script := MustParseString("2I4M2D")
	trimmed := script.TrimQueryStart(scriptTotalLength(script))

	for _, it := range trimmed {
		assert.Contains(t, []Op{RefSkipped, QuerySkipped}, it.Op)
	}
}

func TestTrimQueryEndToFullLengthIsAllSkipped(t *testing.T) {
	script := MustParseString("2I4M2D")
	trimmed := script.TrimQueryEnd(scriptTotalLength(script))

	for _, it := range trimmed {
		assert.Contains(t, []Op{RefSkipped, QuerySkipped}, it.Op)
	}
}

func TestScriptCanonicalNoAdjacentSameOp(t *testing.T) {
	script := MustParseString("3M3M2I")
	for i := 1; i < len(script); i++ {
		assert.NotEqual(t, script[i-1].Op, script[i].Op, "adjacent items share an op at %d", i)
	}
	assert.Equal(t, "6M2I", script.String())
}
