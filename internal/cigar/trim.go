package cigar

import "github.com/aria-lang/codonalign/internal/alphabet"

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// coalesce merges adjacent same-op items and drops zero-length ones,
// restoring script canonicality after a structural edit.
func coalesce(items []Item) Script {
	var out Script
	for _, it := range items {
		if it.Length <= 0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1].Op == it.Op {
			out[len(out)-1].Length += it.Length
		} else {
			out = append(out, it)
		}
	}
	return out
}

// TrimQuery removes leading and trailing QuerySkipped runs from both the
// script and the query sequence they refer to.
func (s Script) TrimQuery(query alphabet.NucleotideSequence) (Script, alphabet.NucleotideSequence) {
	start, end := 0, len(s)
	leadTrim, trailTrim := 0, 0

	if start < end && s[start].Op == QuerySkipped {
		leadTrim = s[start].Length
		start++
	}
	if end > start && s[end-1].Op == QuerySkipped {
		trailTrim = s[end-1].Length
		end--
	}

	trimmedScript := make(Script, end-start)
	copy(trimmedScript, s[start:end])

	trimmedQuery := query
	if leadTrim > 0 || trailTrim > 0 {
		trimmedQuery = query[leadTrim : len(query)-trailTrim]
	}

	return trimmedScript, trimmedQuery
}

// TrimQueryStart removes n columns of alignment from the start, folding the
// removed reference/query counts into leading RefSkipped/QuerySkipped
// boundary runs. A RefSkipped/QuerySkipped pair already at the start carries
// forward for free before n is spent, so repeated calls accumulate: s.
// TrimQueryStart(k).TrimQueryStart(m) and s.TrimQueryStart(k+m) agree.
func (s Script) TrimQueryStart(n int) Script {
	i := 0
	var refSkipped, querySkipped int

	if i < len(s) && s[i].Op == RefSkipped {
		refSkipped = s[i].Length
		i++
	}
	if i < len(s) && s[i].Op == QuerySkipped {
		querySkipped = s[i].Length
		i++
	}

	remaining := n
	var partial Item
	hasPartial := false

	for remaining > 0 && i < len(s) {
		it := s[i]
		consume := min(remaining, it.Length)

		switch it.Op {
		case Match:
			refSkipped += consume
			querySkipped += consume
		case RefGap:
			querySkipped += consume
		case QueryGap:
			refSkipped += consume
		}

		remaining -= consume
		if consume == it.Length {
			i++
		} else {
			partial = Item{Op: it.Op, Length: it.Length - consume}
			hasPartial = true
			i++
		}
	}

	items := make([]Item, 0, len(s)-i+3)
	items = append(items, Item{Op: RefSkipped, Length: refSkipped})
	items = append(items, Item{Op: QuerySkipped, Length: querySkipped})
	if hasPartial {
		items = append(items, partial)
	}
	items = append(items, s[i:]...)

	return coalesce(items)
}

// TrimQueryEnd removes n columns of alignment from the end, mirroring
// TrimQueryStart: a trailing QuerySkipped/RefSkipped pair already present
// carries forward for free before n is spent, so repeated calls accumulate.
func (s Script) TrimQueryEnd(n int) Script {
	i := len(s)
	var refSkipped, querySkipped int

	if i > 0 && s[i-1].Op == RefSkipped {
		refSkipped = s[i-1].Length
		i--
	}
	if i > 0 && s[i-1].Op == QuerySkipped {
		querySkipped = s[i-1].Length
		i--
	}

	remaining := n
	var partial Item
	hasPartial := false

	for remaining > 0 && i > 0 {
		it := s[i-1]
		consume := min(remaining, it.Length)

		switch it.Op {
		case Match:
			refSkipped += consume
			querySkipped += consume
		case RefGap:
			querySkipped += consume
		case QueryGap:
			refSkipped += consume
		}

		remaining -= consume
		if consume == it.Length {
			i--
		} else {
			partial = Item{Op: it.Op, Length: it.Length - consume}
			hasPartial = true
			i--
		}
	}

	items := make([]Item, 0, i+3)
	items = append(items, s[:i]...)
	if hasPartial {
		items = append(items, partial)
	}
	items = append(items, Item{Op: QuerySkipped, Length: querySkipped})
	items = append(items, Item{Op: RefSkipped, Length: refSkipped})

	return coalesce(items)
}
