// Package dottedname implements an immutable dotted-name value type for
// qualified identifiers such as "pkg.Class.method".
//
// A DottedName is an ordered, non-empty sequence of identifier segments.
// Values are constructed once and never mutated; every operation that
// "modifies" a name returns a new value, so names can be shared freely
// between goroutines without synchronization.
//
// The sentinel segment "??" (Unknown) marks a segment that could not be
// resolved. It survives construction even under strict validation and it
// bounds how far Contextualize may shorten a name.
package dottedname

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// Unknown is the sentinel segment denoting an unresolvable part of a name.
const Unknown = "??"

// DottedName is an immutable sequence of identifier segments.
// The zero value is invalid; use New, NewLax or MustNew.
type DottedName struct {
	parts []string
}

// New builds a DottedName from the given parts with strict identifier
// validation. Each string part is split on "." into segments; a DottedName
// part contributes its segments unchanged. Every segment other than the
// Unknown sentinel must be a legal identifier.
func New(parts ...any) (DottedName, error) {
	return build(true, parts)
}

// NewLax is New without identifier validation: segments are accepted
// verbatim, only the non-empty invariant is enforced.
func NewLax(parts ...any) (DottedName, error) {
	return build(false, parts)
}

// MustNew is New that panics on error. Intended for fixtures and for
// inputs known to be valid.
func MustNew(parts ...any) DottedName {
	d, err := New(parts...)
	if err != nil {
		panic(err)
	}
	return d
}

func build(strict bool, parts []any) (DottedName, error) {
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case string:
			segments = append(segments, strings.Split(p, ".")...)
		case DottedName:
			segments = append(segments, p.parts...)
		default:
			return DottedName{}, &TypeMismatchError{Value: part}
		}
	}
	if len(segments) == 0 {
		return DottedName{}, &InvalidNameError{}
	}
	if strict {
		for _, seg := range segments {
			if seg != Unknown && !isIdentifier(seg) {
				return DottedName{}, &InvalidNameError{Identifier: seg}
			}
		}
	}
	return DottedName{parts: segments}, nil
}

// isIdentifier reports whether s is a legal identifier segment:
// letters, digits and underscores, not starting with a digit, non-empty.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case unicode.IsDigit(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// String joins the segments with ".". New(d.String()) reproduces d for any
// name whose segments pass strict validation.
func (d DottedName) String() string {
	return strings.Join(d.parts, ".")
}

// GoString renders a constructor-style debug representation, e.g.
// dottedname.MustNew("foo", "bar").
func (d DottedName) GoString() string {
	quoted := make([]string, len(d.parts))
	for i, p := range d.parts {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return "dottedname.MustNew(" + strings.Join(quoted, ", ") + ")"
}

// Len returns the number of segments, always >= 1 for a constructed name.
func (d DottedName) Len() int {
	return len(d.parts)
}

// Index returns the segment at position i. Negative indices count from the
// end, so Index(-1) is the last segment.
func (d DottedName) Index(i int) (string, error) {
	n := len(d.parts)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return "", &IndexOutOfRangeError{Index: i, Length: n}
	}
	return d.parts[j], nil
}

// Slice returns the sub-name covering segments [start, end), with negative
// indices counting from the end. A slice that would be empty violates the
// non-empty invariant and fails with InvalidNameError.
func (d DottedName) Slice(start, end int) (DottedName, error) {
	n := len(d.parts)
	lo, hi := clampIndex(start, n), clampIndex(end, n)
	if lo >= hi {
		return DottedName{}, &InvalidNameError{}
	}
	return DottedName{parts: d.parts[lo:hi]}, nil
}

// clampIndex resolves a possibly negative slice bound against length n and
// clamps it into [0, n], matching half-open slicing semantics.
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Parts returns a copy of the segment sequence.
func (d DottedName) Parts() []string {
	out := make([]string, len(d.parts))
	copy(out, d.parts)
	return out
}

// All returns a restartable iterator over the segments in order.
func (d DottedName) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range d.parts {
			if !yield(p) {
				return
			}
		}
	}
}

// Equal reports whether d and other have identical segments at every
// position. Comparison is case-sensitive with no normalization.
func (d DottedName) Equal(other DottedName) bool {
	if len(d.parts) != len(other.parts) {
		return false
	}
	for i, p := range d.parts {
		if p != other.parts[i] {
			return false
		}
	}
	return true
}

// Concat returns a new name with d's segments followed by other's.
func (d DottedName) Concat(other DottedName) DottedName {
	parts := make([]string, 0, len(d.parts)+len(other.parts))
	parts = append(parts, d.parts...)
	parts = append(parts, other.parts...)
	return DottedName{parts: parts}
}

// Container returns the name with the last segment removed. The second
// return is false when d has a single segment and therefore no enclosing
// scope; absence of a container is a result, not an error.
func (d DottedName) Container() (DottedName, bool) {
	if len(d.parts) <= 1 {
		return DottedName{}, false
	}
	return DottedName{parts: d.parts[:len(d.parts)-1]}, true
}

// Contextualize shortens d relative to context by stripping their longest
// common prefix. The result always keeps at least the last segment of d,
// and stripping never crosses an Unknown sentinel inside d: if a sentinel
// lies in the region that would be removed, the result starts at the
// sentinel instead. A context of "??" shares no genuine prefix with a
// non-sentinel name, so such names come back unchanged.
func (d DottedName) Contextualize(context DottedName) DottedName {
	strip := commonPrefixLen(d.parts, context.parts)
	if strip >= len(d.parts) {
		strip = len(d.parts) - 1
	}
	for i, p := range d.parts[:strip] {
		if p == Unknown {
			strip = i
			break
		}
	}
	return DottedName{parts: d.parts[strip:]}
}

func commonPrefixLen(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
