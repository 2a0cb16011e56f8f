package sparqlgo

import "fmt"

// Span is a small type for capturing a run of input byte positions. A
// parse-tree node's covered input bytes are available as a Span through
// tree.Tree.Span.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span (exclusive).
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull returns true for a zero-length span at position 0, i.e. a purely
// structural node with no committed token.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s so that it also covers other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
