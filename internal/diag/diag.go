// Package diag collects recoverable data problems -- a malformed CDS
// feature, a bad CIGAR token, a dropped local alignment -- so a caller can
// report them and continue, per the "recoverable data problem" policy:
// structural DP invariants are fatal and panic instead of going through
// this collector.
package diag

import "fmt"

// Diagnostic is one reported-and-skipped problem.
type Diagnostic interface {
	error
	IsDiagnostic()
}

// MalformedCDS is reported when a CDS feature's concatenated nucleotide
// span is not a multiple of 3; the feature is dropped.
type MalformedCDS struct {
	Name string
	Err  error
}

func (d MalformedCDS) Error() string {
	return fmt.Sprintf("CDS %q rejected: %v", d.Name, d.Err)
}
func (MalformedCDS) IsDiagnostic() {}

// BadCigarToken is reported when an edit-script text token uses an
// unrecognised op letter; the token is coerced to Match.
type BadCigarToken struct {
	Letter   byte
	Position int
}

func (d BadCigarToken) Error() string {
	return fmt.Sprintf("cigar: unknown op letter %q at position %d, coerced to Match", d.Letter, d.Position)
}
func (BadCigarToken) IsDiagnostic() {}

// DroppedLocalAlignment is reported when the local-alignment merger finds
// a pair of seeds out of reference-coordinate order; the offending
// alignment is dropped from the merge.
type DroppedLocalAlignment struct {
	Reason string
}

func (d DroppedLocalAlignment) Error() string {
	return fmt.Sprintf("local alignment dropped: %s", d.Reason)
}
func (DroppedLocalAlignment) IsDiagnostic() {}

// Collector accumulates Diagnostics for later inspection or printing; the
// zero value is ready to use. A nil *Collector is safe to call Report on.
type Collector struct {
	items []Diagnostic
}

// Report appends d to the collector. Safe to call on a nil *Collector.
func (c *Collector) Report(d Diagnostic) {
	if c == nil {
		return
	}
	c.items = append(c.items, d)
}

// Items returns every diagnostic reported so far.
func (c *Collector) Items() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.items
}

// Len is the number of diagnostics reported so far.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}
