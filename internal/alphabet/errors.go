package alphabet

import "fmt"

// SequenceError is the base error type for alphabet/sequence operations,
// carried over from the validated-sequence convention the rest of this
// codebase uses for recoverable data problems.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence has zero length.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string  { return "sequence must have at least one base" }
func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when an unrecognised letter is encountered.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// InvalidLengthError is returned when a CDS region's concatenated length
// doesn't meet an expected divisibility constraint.
type InvalidLengthError struct {
	Name     string
	Length   int
	Expected string
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s: length %d is not %s", e.Name, e.Length, e.Expected)
}

func (e *InvalidLengthError) IsSequenceError() {}
