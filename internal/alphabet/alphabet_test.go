package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNucleotideSequence(t *testing.T) {
	tests := []struct {
		name    string
		bases   string
		wantErr bool
		errType interface{}
	}{
		{name: "valid", bases: "ATGCATGC"},
		{name: "lowercase", bases: "atgcatgc"},
		{name: "with ambiguous", bases: "ATGCNATGC"},
		{name: "with gap", bases: "ATG-CATGC"},
		{name: "empty", bases: "", wantErr: true, errType: &EmptySequenceError{}},
		{name: "invalid letter", bases: "ATGCXATGC", wantErr: true, errType: &InvalidBaseError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ParseNucleotideSequence(tt.bases)
			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, tt.errType, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.bases), len(seq))
		})
	}
}

func TestReverseComplement(t *testing.T) {
	seq, err := ParseNucleotideSequence("ATGC")
	require.NoError(t, err)

	rc := seq.ReverseComplement()
	assert.Equal(t, "GCAT", rc.String())
}

func TestGCContent(t *testing.T) {
	tests := []struct {
		name  string
		bases string
		want  float64
	}{
		{"all GC", "GCGCGC", 1.0},
		{"all AT", "ATATAT", 0.0},
		{"mixed 50%", "ATGC", 0.5},
		{"gap excluded", "GC--", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ParseNucleotideSequence(tt.bases)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, seq.GCContent(), 0.0001)
		})
	}
}

func TestTranslateCodon(t *testing.T) {
	assert.Equal(t, MetM, TranslateCodon(NucA, NucT, NucG))
	assert.Equal(t, Stop, TranslateCodon(NucT, NucA, NucA))
	assert.Equal(t, AAX, TranslateCodon(NucN, NucA, NucG))
}

func TestTranslateWindow(t *testing.T) {
	seq, err := ParseNucleotideSequence("ATGAAACCCGGG")
	require.NoError(t, err)

	assert.Equal(t, MetM, Translate(seq, 0, false))
	assert.Equal(t, AAX, Translate(seq, len(seq)-1, false))

	// reverse-strand window ending at i=2 reads complement(seq[2],seq[1],seq[0]) = C,A,T -> His
	assert.Equal(t, HisH, Translate(seq, 2, true))
	assert.Equal(t, AAX, Translate(seq, 1, true))
}
