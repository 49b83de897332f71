// Package cigar implements the edit-script ("CIGAR") representation used to
// describe a pairwise alignment as a run-length list of operations, along
// with every mutation and projection operation the aligner and CDS
// projection layers need.
package cigar

import (
	"fmt"

	"github.com/aria-lang/codonalign/internal/alphabet"
)

// Op is one of the five edit-script operation kinds.
type Op int

const (
	// Match advances both reference and query by the run length.
	Match Op = iota
	// RefGap inserts a run of gaps into the reference (query has extra bases).
	RefGap
	// QueryGap inserts a run of gaps into the query (reference has extra bases).
	QueryGap
	// RefSkipped marks a reference region lying outside the aligned query.
	RefSkipped
	// QuerySkipped marks query characters lying outside the aligned reference.
	QuerySkipped
)

// opLetters gives the text-form letter for each Op, indexed by Op.
var opLetters = [...]byte{'M', 'I', 'D', 'X', 'O'}

func (op Op) String() string {
	if int(op) < 0 || int(op) >= len(opLetters) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return string(opLetters[op])
}

// Item is one run of an edit script: an operation repeated Length times.
type Item struct {
	Op     Op
	Length int
}

func (it Item) String() string {
	return fmt.Sprintf("%d%s", it.Length, it.Op)
}

// extend returns a one-longer Item of op if it already matches the given
// item's op, and a fresh length-1 item of op otherwise.
func extend(it Item, op Op) Item {
	if it.Op == op {
		it.Length++
		return it
	}
	return Item{Op: op, Length: 1}
}

// Script is an ordered, maximal-run edit script: no two adjacent items
// share an operation, and every length is positive once finalised.
type Script []Item

func (s Script) String() string {
	var out []byte
	for _, it := range s {
		out = append(out, []byte(it.String())...)
	}
	return string(out)
}

// append pushes op onto the script, extending the last run if it already
// ends in op.
func (s Script) append(op Op) Script {
	if len(s) > 0 && s[len(s)-1].Op == op {
		s[len(s)-1] = extend(s[len(s)-1], op)
		return s
	}
	return append(s, extend(Item{}, op))
}

// AppendMatch extends the script with one Match position.
func (s Script) AppendMatch() Script { return s.append(Match) }

// AppendRefGap extends the script with one RefGap position.
func (s Script) AppendRefGap() Script { return s.append(RefGap) }

// AppendQueryGap extends the script with one QueryGap position.
func (s Script) AppendQueryGap() Script { return s.append(QueryGap) }

// FromAlignedPair scans two equal-length, already-aligned sequences and
// derives the edit script between them. Leading/trailing QueryGap runs are
// rewritten to RefSkipped, since boundary query absence is never really an
// insertion.
func FromAlignedPair(ref, query alphabet.NucleotideSequence) Script {
	var s Script
	var current Item

	flush := func() {
		if current.Length > 0 {
			s = append(s, current)
		}
	}

	for i := 0; i < len(ref); i++ {
		var op Op
		switch {
		case ref[i].IsGap():
			op = RefGap
		case ref[i].IsMissing():
			op = QuerySkipped
		case query[i].IsGap():
			op = QueryGap
		case query[i].IsMissing():
			op = RefSkipped
		default:
			op = Match
		}

		if current.Op == op {
			current.Length++
		} else {
			flush()
			current = Item{Op: op, Length: 1}
		}
	}
	flush()

	if len(s) > 0 {
		if s[0].Op == QueryGap {
			s[0].Op = RefSkipped
		}
		if s[len(s)-1].Op == QueryGap {
			s[len(s)-1].Op = RefSkipped
		}
	}

	return s
}

// ToAlignedPair materialises ref and query into gapped sequences by
// walking the script: RefGap inserts a gap into ref, QueryGap inserts a gap
// into query, RefSkipped inserts MISSING into query, QuerySkipped inserts
// MISSING into ref. This is the current (symmetric) policy; a caller
// needing the historical "erase query characters" semantics for
// QuerySkipped should call Script.TrimQuery first.
func (s Script) ToAlignedPair(ref, query alphabet.NucleotideSequence) (alphabet.NucleotideSequence, alphabet.NucleotideSequence) {
	outRef := make(alphabet.NucleotideSequence, 0, len(ref)+len(query))
	outQuery := make(alphabet.NucleotideSequence, 0, len(ref)+len(query))

	var refI, queryI int
	for _, it := range s {
		switch it.Op {
		case Match:
			outRef = append(outRef, ref[refI:refI+it.Length]...)
			outQuery = append(outQuery, query[queryI:queryI+it.Length]...)
			refI += it.Length
			queryI += it.Length
		case RefGap:
			outRef = append(outRef, repeat(alphabet.NucGap, it.Length)...)
			outQuery = append(outQuery, query[queryI:queryI+it.Length]...)
			queryI += it.Length
		case QueryGap:
			outRef = append(outRef, ref[refI:refI+it.Length]...)
			outQuery = append(outQuery, repeat(alphabet.NucGap, it.Length)...)
			refI += it.Length
		case RefSkipped:
			outRef = append(outRef, ref[refI:refI+it.Length]...)
			outQuery = append(outQuery, repeat(alphabet.NucMissing, it.Length)...)
			refI += it.Length
		case QuerySkipped:
			outRef = append(outRef, repeat(alphabet.NucMissing, it.Length)...)
			outQuery = append(outQuery, query[queryI:queryI+it.Length]...)
			queryI += it.Length
		}
	}

	return outRef, outQuery
}

func repeat(n alphabet.Nucleotide, count int) alphabet.NucleotideSequence {
	out := make(alphabet.NucleotideSequence, count)
	for i := range out {
		out[i] = n
	}
	return out
}

// FindAlignedPos returns the column index in the aligned (materialised)
// view that corresponds to reference index refPos. It panics if refPos
// lies past the end of the script and doesn't equal the script's total
// reference count: that is a contract violation (spec's "fatal,
// programming error" case), not a recoverable data problem.
func (s Script) FindAlignedPos(refPos int) int {
	var aPos, refI int

	for _, it := range s {
		switch it.Op {
		case Match, QueryGap, RefSkipped:
			if refPos < refI+it.Length {
				return aPos + (refPos - refI)
			}
			refI += it.Length
			aPos += it.Length
		case RefGap:
			aPos += it.Length
		case QuerySkipped:
			// does not advance aPos or refI
		}
	}

	if refPos == refI {
		return aPos
	}

	panic(fmt.Sprintf("cigar: findAlignedPos(%d) past end of script (refLen=%d)", refPos, refI))
}

// QueryStart returns the raw-query offset at which the aligned region
// begins: the length of a leading QuerySkipped overhang, or 0 if the
// script doesn't start with one.
func (s Script) QueryStart() int {
	if len(s) > 0 && s[0].Op == QuerySkipped {
		return s[0].Length
	}
	return 0
}

// QueryEnd returns the raw-query offset (exclusive) at which the aligned
// region ends: QueryStart plus every Match/RefGap run's contribution
// (those are the only ops that consume real query characters within the
// aligned body), stopping before a trailing QuerySkipped overhang.
func (s Script) QueryEnd() int {
	end := s.QueryStart()
	for i, it := range s {
		if i == 0 && it.Op == QuerySkipped {
			continue
		}
		if it.Op == QuerySkipped {
			// trailing overhang: does not extend the aligned region
			continue
		}
		switch it.Op {
		case Match, RefGap:
			end += it.Length
		}
	}
	return end
}
