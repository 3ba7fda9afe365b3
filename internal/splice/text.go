package splice

import "fmt"

// TextSize is a byte offset or length within a source text.
// All text handled by this package fits in 32 bits.
type TextSize uint32

// MaxTextLen is the largest text length the offset model can address.
const MaxTextLen = 1<<32 - 1

// Text holds an immutable piece of text whose length is guaranteed to fit
// the 32-bit offset model. Unedited chunk content is a substring of the
// source and shares its backing array; replacement content owns its bytes.
// Both cases look the same here since Go strings are immutable.
type Text struct {
	s string
}

// NewText wraps a string as a Text.
// Panics if the string is longer than MaxTextLen bytes; the rest of the
// system stores every offset and length as 32 bits, so an oversized text
// cannot be represented.
func NewText(s string) Text {
	checkTextLen(uint64(len(s)))
	return Text{s: s}
}

// checkTextLen panics when a byte length exceeds the 32-bit ceiling.
func checkTextLen(n uint64) {
	if n > MaxTextLen {
		panic(fmt.Sprintf("splice: text of %d bytes exceeds the 4 GiB limit", n))
	}
}

// String returns the underlying text without allocating.
func (t Text) String() string {
	return t.s
}

// Len returns the byte length, always representable as a TextSize.
func (t Text) Len() TextSize {
	return TextSize(len(t.s))
}

// IsEmpty returns true if the text has no bytes.
func (t Text) IsEmpty() bool {
	return len(t.s) == 0
}
