package scorer

import "encoding/json"

// AlignmentStats is the result of a single linear pass over an aligned
// pair: counts, coverage, and a recomputed score.
type AlignmentStats struct {
	Score         int
	RefLength     int
	Begin         int
	End           int
	Coverage      int
	MatchCount    int
	IdentityCount int
	InsertEvents  int
	InsertCount   int
	DeleteEvents  int
	DeleteCount   int
	FrameShifts   int
	Misaligned    int
}

func newAlignmentStats() AlignmentStats {
	return AlignmentStats{Begin: -1, End: -1}
}

// CalcStats performs the linear-pass statistics computation over an
// already-materialised aligned pair. frameshiftCount is supplied by the
// caller (the CDS projection layer counts these; the plain nucleotide path
// passes 0).
func (s *SubstitutionScorer[C]) CalcStats(ref, query []C, frameshiftCount int) AlignmentStats {
	result := newAlignmentStats()

	queryEnd := 0
	for i := len(query) - 1; i >= 0; i-- {
		if !ref[i].IsMissing() && !query[i].IsMissing() {
			queryEnd = i + 1
			break
		}
	}

	if queryEnd == 0 {
		return result
	}

	refGap, queryGap := false, false
	queryMissing, refMissing := true, true

	refPos := 0
	for i := 0; i < queryEnd; i++ {
		switch {
		case ref[i].IsGap():
			result.InsertCount++
			if !refGap {
				result.Score += s.gapOpenCost
				result.InsertEvents++
			} else {
				result.Score += s.gapExtensionCost
			}
			refGap = true
			refMissing = false
		case ref[i].IsMissing():
			refGap = false
			refMissing = true
		case ref[i].IsMisaligned():
			if refMissing || i == len(ref)-1 || ref[i+1].IsMissing() {
				// edge-ambiguous X: do not count as misaligned
			} else {
				result.Score += s.misalignmentCost
				result.Misaligned++
			}
		default:
			refGap = false
			refMissing = false
		}

		switch {
		case query[i].IsGap():
			result.DeleteCount++
			if !queryGap {
				result.Score += s.gapOpenCost
				result.DeleteEvents++
			} else {
				result.Score += s.gapExtensionCost
			}
			queryGap = true
			queryMissing = false
		case query[i].IsMissing():
			queryGap = false
			queryMissing = true
		case query[i].IsMisaligned():
			if queryMissing || i == len(query)-1 || query[i+1].IsMissing() {
				// edge-ambiguous X: do not count as misaligned
			} else {
				result.Score += s.misalignmentCost
				result.Misaligned++
			}
		default:
			queryGap = false
			queryMissing = false
		}

		if !queryGap && !queryMissing && !refGap && !refMissing {
			result.MatchCount++
			result.Score += s.weightMatrix[ref[i].IntRep()][query[i].IntRep()]

			if result.Begin == -1 {
				result.Begin = refPos
			}
			result.End = refPos + 1

			if ref[i] == query[i] {
				result.IdentityCount++
			}
		}

		if !refGap && !refMissing {
			refPos++
		}
	}

	result.RefLength = refPos + (len(ref) - queryEnd)
	result.Coverage = result.MatchCount + result.DeleteCount

	result.Score += frameshiftCount * s.frameShiftCost
	result.FrameShifts = frameshiftCount

	return result
}

// Statistics is the full external reporting shape: an AlignmentStats pass
// plus the CDS-level fields attached when the alignment carries a CDS
// projection (cds name, cds-relative bounds, ambiguity/stop-codon counts,
// and the rendered mutation list).
type Statistics struct {
	ID          string
	CDS         string
	CDSBegin    int
	CDSEnd      int
	Ambiguities int
	StopCodons  int
	Mutations   string
	Stats       AlignmentStats
}

// AlignLength is the denominator the original reporting code used to decide
// whether an alignment produced anything worth reporting.
func (st Statistics) AlignLength() int {
	return st.Stats.MatchCount + st.Stats.InsertCount + st.Stats.DeleteCount
}

// MarshalJSON emits the Statistics JSON object: id and alignLength are
// always present, every other key only when alignLength != 0.
func (st Statistics) MarshalJSON() ([]byte, error) {
	alignLength := st.AlignLength()

	out := map[string]interface{}{
		"id":          st.ID,
		"alignLength": alignLength,
	}

	if alignLength != 0 {
		out["cds"] = st.CDS
		out["cdsBegin"] = st.CDSBegin
		out["cdsEnd"] = st.CDSEnd
		out["begin"] = st.Stats.Begin + 1
		out["end"] = st.Stats.End
		out["coverage"] = 100.0 * float64(st.Stats.Coverage) / float64(st.Stats.RefLength)
		out["score"] = st.Stats.Score
		out["quality"] = float64(st.Stats.Score) / float64(st.Stats.Coverage)
		out["matches"] = st.Stats.MatchCount
		out["identities"] = st.Stats.IdentityCount
		out["inserts"] = st.Stats.InsertCount
		out["deletes"] = st.Stats.DeleteCount
		out["misaligned"] = st.Stats.Misaligned
		out["frameshifts"] = st.Stats.FrameShifts
		out["ambiguities"] = st.Ambiguities
		out["stopCodons"] = st.StopCodons
		out["mutations"] = st.Mutations
	}

	return json.Marshal(out)
}

func (st Statistics) String() string {
	b, err := json.Marshal(st)
	if err != nil {
		return "{}"
	}
	return string(b)
}
