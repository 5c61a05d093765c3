package dottedname

import "fmt"

// InvalidNameError is returned at construction time for an empty segment
// sequence, or in strict mode for a malformed identifier segment.
type InvalidNameError struct {
	// Identifier is the offending segment; empty for the empty-name case.
	Identifier string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	if e.Identifier == "" {
		return "empty DottedName"
	}
	return fmt.Sprintf("bad identifier %q", e.Identifier)
}

// TypeMismatchError is returned when a construction part is neither a
// string nor a DottedName.
type TypeMismatchError struct {
	Value any
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot build DottedName from %T (%v): expected string or DottedName", e.Value, e.Value)
}

// IndexOutOfRangeError is returned by Index when the position falls
// outside [-Length, Length-1].
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for DottedName of length %d", e.Index, e.Length)
}
