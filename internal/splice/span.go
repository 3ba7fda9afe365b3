package splice

import "fmt"

// Span is a half-open byte range [start, end) into the original source text.
// A span is never empty and never inverted.
type Span struct {
	start TextSize
	end   TextSize
}

// NewSpan creates a span covering [start, end).
// Panics unless start < end; empty and inverted spans have no meaning in
// the chunk model and indicate a caller bug.
func NewSpan(start, end TextSize) Span {
	if start >= end {
		panic(fmt.Sprintf("splice: invalid span [%d:%d)", start, end))
	}
	return Span{start: start, end: end}
}

// Start returns the inclusive start offset.
func (s Span) Start() TextSize {
	return s.start
}

// End returns the exclusive end offset.
func (s Span) End() TextSize {
	return s.end
}

// Len returns the span length in bytes.
func (s Span) Len() TextSize {
	return s.end - s.start
}

// Text slices the span out of source. The caller must pass the same text
// the span's offsets were computed against; beyond slice bounds checking
// the type carries no link to a particular string.
func (s Span) Text(source string) string {
	return source[s.start:s.end]
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.start, s.end)
}
