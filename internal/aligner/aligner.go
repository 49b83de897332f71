// Package aligner implements the banded, striped affine-gap global
// alignment DP: a tri-phase (or, for a flat scorer, single-phase)
// gap-state machine reconstructed into an edit script by per-stripe
// traceback.
package aligner

import (
	"fmt"

	"github.com/aria-lang/codonalign/internal/cigar"
)

// DefaultStripeBudget bounds the DP stripe's working set: the number of
// retained rows N is min(refLen, DefaultStripeBudget/queryLen). Exposed
// as a configuration constant rather than a hard literal, per spec.
const DefaultStripeBudget = 10_000_000

// invalidScore marks a P/Q gap-phase cell that has not yet been reached
// by any real path; it must never win a max() comparison against a real
// score.
const invalidScore = -1 << 30

// arrayItem is one scored cell-slot: the best score reaching it by some
// specific means, and the edit-script run (op + length) that produced it.
type arrayItem struct {
	op    cigar.Item
	score int
}

// arrayItems is the per-cell DP state: D (best overall), M (best ending
// in a Match, read by gap-opening transitions), and the SideN-wide P/Q
// gap-phase arrays.
type arrayItems struct {
	d, m arrayItem
	p, q []arrayItem
}

func newArrayItems(sideN int) arrayItems {
	return arrayItems{p: make([]arrayItem, sideN), q: make([]arrayItem, sideN)}
}

// solution is the per-query-column running alignment: the best score
// reaching that column and the edit script built so far, carried forward
// across stripe boundaries and finalised at column queryLen.
type solution struct {
	score int
	cigar cigar.Script
}

// extendItem grows it by one position if it already ends in op, or
// starts a fresh length-1 run of op otherwise -- the DP's per-step
// bookkeeping for "which run does this transition belong to".
func extendItem(it cigar.Item, op cigar.Op) cigar.Item {
	if it.Op == op {
		return cigar.Item{Op: op, Length: it.Length + 1}
	}
	return cigar.Item{Op: op, Length: 1}
}

// GlobalAligner is the affine-gap banded/striped DP maximiser. SideN (the
// number of gap-length residue classes tracked) is a runtime field rather
// than a compile-time constant: Go has no const generics, and spec.md's
// own design notes call for treating SideN as "a generic/constant
// parameter", which in Go means a struct field read at construction.
// SideN=3 for codon-aware alignment (GenomeScorer); SideN=1 for a flat
// affine alignment with no amino-acid layer.
type GlobalAligner[Seq ~[]E, E any] struct {
	Scorer       Scorer[Seq]
	SideN        int
	StripeBudget int
}

// New builds a GlobalAligner. stripeBudget <= 0 uses DefaultStripeBudget.
func New[Seq ~[]E, E any](scorer Scorer[Seq], sideN int, stripeBudget int) *GlobalAligner[Seq, E] {
	if stripeBudget <= 0 {
		stripeBudget = DefaultStripeBudget
	}
	return &GlobalAligner[Seq, E]{Scorer: scorer, SideN: sideN, StripeBudget: stripeBudget}
}

// Solution is an alignment result: its score and edit script.
type Solution struct {
	Score int
	Cigar cigar.Script
}

// Align runs the DP to completion and reconstructs the optimal global
// edit script between ref and query. Both must be non-empty.
func (g *GlobalAligner[Seq, E]) Align(ref, query Seq) (Solution, error) {
	refLen, queryLen := len(ref), len(query)
	if refLen == 0 || queryLen == 0 {
		return Solution{}, fmt.Errorf("aligner: ref and query must both be non-empty (refLen=%d, queryLen=%d)", refLen, queryLen)
	}

	sideN := g.SideN
	if sideN < 1 {
		sideN = 1
	}

	// results[hj] is the running best solution ending at query column hj,
	// seeded here with D[0, j] = a full RefGap prefix of length j (per
	// spec: the top row corresponds to consuming query only).
	results := make([]solution, queryLen+1)
	results[0].cigar = cigar.Script{{Op: cigar.QueryGap, Length: 0}}
	for j := 0; j < queryLen; j++ {
		hj := j + 1
		prev := results[hj-1].cigar
		cp := make(cigar.Script, len(prev))
		copy(cp, prev)
		if len(cp) > 0 && cp[len(cp)-1].Op == cigar.RefGap {
			cp[len(cp)-1].Length++
		} else {
			cp = append(cp, cigar.Item{Op: cigar.RefGap, Length: 1})
		}
		results[hj].cigar = cp
	}

	stripeHeight := refLen
	if budgetRows := g.StripeBudget / queryLen; budgetRows < stripeHeight {
		stripeHeight = budgetRows
	}
	if stripeHeight < 1 {
		stripeHeight = 1
	}

	work := make([][]arrayItems, stripeHeight+1)
	for r := range work {
		work[r] = make([]arrayItems, queryLen+1)
		for c := range work[r] {
			work[r][c] = newArrayItems(sideN)
		}
	}

	for stripeI := 0; stripeI < refLen; stripeI += stripeHeight {
		height := refLen - stripeI
		if height > stripeHeight {
			height = stripeHeight
		}

		if stripeI == 0 {
			for hj := 0; hj <= queryLen; hj++ {
				last := results[hj].cigar[len(results[hj].cigar)-1]
				work[0][hj].d = arrayItem{score: 0, op: last}
				work[0][hj].m = work[0][hj].d
				for k := 0; k < sideN; k++ {
					work[0][hj].p[k] = arrayItem{score: invalidScore, op: cigar.Item{Op: cigar.RefGap}}
					work[0][hj].q[k] = arrayItem{score: invalidScore, op: cigar.Item{Op: cigar.QueryGap}}
				}
			}
			work[0][0].d.op = cigar.Item{Op: cigar.QueryGap, Length: 0}
			work[0][0].m = work[0][0].d
		} else {
			copy(work[0], work[stripeHeight])
		}

		for i := stripeI; i < stripeI+height; i++ {
			hi := i - stripeI + 1

			work[hi][0].d = work[hi-1][0].d
			work[hi][0].d.op.Length++
			work[hi][0].m = work[hi][0].d
			for k := 0; k < sideN; k++ {
				work[hi][0].p[k] = work[hi-1][0].p[k]
				work[hi][0].p[k].op.Length++
				work[hi][0].q[k] = work[hi-1][0].q[k]
				work[hi][0].q[k].op.Length++
			}

			for j := 0; j < queryLen; j++ {
				hj := j + 1

				sextend := work[hi-1][hj-1].d.score + g.Scorer.ScoreExtend(ref, query, i, j)
				work[hi][hj].m.score = sextend
				work[hi][hj].m.op = extendItem(work[hi-1][hj-1].d.op, cigar.Match)

				shopengap := work[hi-1][hj].m.score + g.Scorer.ScoreOpenQueryGap(ref, query, i, j)
				shgap := shopengap
				hgapLastOp := work[hi-1][hj].m.op
				for k := 0; k < sideN; k++ {
					kN := (k + 1) % sideN
					sK := work[hi-1][hj].q[k].score + g.Scorer.ScoreExtendQueryGap(ref, query, i, j, kN)
					if k == sideN-1 && shopengap > sK {
						work[hi][hj].q[0] = arrayItem{score: shopengap, op: extendItem(work[hi-1][hj].m.op, cigar.QueryGap)}
					} else {
						work[hi][hj].q[kN] = arrayItem{score: sK, op: extendItem(work[hi-1][hj].q[k].op, cigar.QueryGap)}
						if sK > shgap {
							shgap = sK
							hgapLastOp = work[hi-1][hj].q[k].op
						}
					}
				}

				svopengap := work[hi][hj-1].m.score + g.Scorer.ScoreOpenRefGap(ref, query, i, j)
				svgap := svopengap
				vgapLastOp := work[hi][hj-1].m.op
				for k := 0; k < sideN; k++ {
					kN := (k + 1) % sideN
					sK := work[hi][hj-1].p[k].score + g.Scorer.ScoreExtendRefGap(ref, query, i, j, kN)
					if k == sideN-1 && svopengap > sK {
						work[hi][hj].p[0] = arrayItem{score: svopengap, op: extendItem(work[hi][hj-1].m.op, cigar.RefGap)}
					} else {
						work[hi][hj].p[kN] = arrayItem{score: sK, op: extendItem(work[hi][hj-1].p[k].op, cigar.RefGap)}
						if sK > svgap {
							svgap = sK
							vgapLastOp = work[hi][hj-1].p[k].op
						}
					}
				}

				var op cigar.Op
				var last cigar.Item
				switch {
				case sextend > shgap && sextend > svgap:
					work[hi][hj].d.score = sextend
					op = cigar.Match
					last = work[hi-1][hj-1].d.op
				case shgap > svgap:
					work[hi][hj].d.score = shgap
					op = cigar.QueryGap
					last = hgapLastOp
				default:
					work[hi][hj].d.score = svgap
					op = cigar.RefGap
					last = vgapLastOp
				}
				work[hi][hj].d.op = extendItem(last, op)
			}
		}

		localI := height - 1
		finalStripe := stripeI+height == refLen

		for j := queryLen - 1; j >= 0; j-- {
			var rCigar cigar.Script
			hi, hj := localI+1, j+1
			ai := &work[hi][hj].d
			score := ai.score

			for {
				rCigar = append(rCigar, ai.op)
				switch ai.op.Op {
				case cigar.Match:
					hi -= ai.op.Length
					hj -= ai.op.Length
				case cigar.QueryGap:
					hi -= ai.op.Length
				case cigar.RefGap:
					hj -= ai.op.Length
				}

				if hi <= 0 {
					tooFar := -hi
					rCigar[len(rCigar)-1].Length -= tooFar
					if ai.op.Op == cigar.Match {
						hj += tooFar
					}
					break
				}

				if sideN > 0 {
					if ai.op.Op == cigar.Match {
						ai = &work[hi][hj].d
					} else {
						ai = &work[hi][hj].m
					}
				} else {
					ai = &work[hi][hj].d
				}
			}

			entry := results[hj]
			merged := make(cigar.Script, len(entry.cigar))
			copy(merged, entry.cigar)

			rLast := rCigar[len(rCigar)-1]
			if len(merged) > 0 && merged[len(merged)-1].Op == rLast.Op {
				merged[len(merged)-1].Length += rLast.Length
				for k := len(rCigar) - 2; k >= 0; k-- {
					merged = append(merged, rCigar[k])
				}
			} else {
				for k := len(rCigar) - 1; k >= 0; k-- {
					merged = append(merged, rCigar[k])
				}
			}

			results[j+1] = solution{score: score, cigar: merged}

			if finalStripe {
				break
			}
		}

		results[0].cigar[len(results[0].cigar)-1].Length += height
	}

	final := results[queryLen]
	script := final.cigar
	if len(script) > 0 && script[0].Length == 0 {
		script = script[1:]
	}

	if len(script) > 0 {
		switch script[0].Op {
		case cigar.RefGap:
			script[0].Op = cigar.QuerySkipped
		case cigar.QueryGap:
			script[0].Op = cigar.RefSkipped
		}
		last := len(script) - 1
		switch script[last].Op {
		case cigar.RefGap:
			script[last].Op = cigar.QuerySkipped
		case cigar.QueryGap:
			script[last].Op = cigar.RefSkipped
		}
	}

	return Solution{Score: final.score, Cigar: script}, nil
}
