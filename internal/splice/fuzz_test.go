package splice

import (
	"strings"
	"testing"
)

// FuzzChunkSplit checks the split partition law: after splitting, the two
// spans cover the original range exactly and the source text round-trips.
func FuzzChunkSplit(f *testing.F) {
	f.Add("hello world", 5)
	f.Add("ab", 1)
	f.Add("abcdef", 3)
	f.Add(strings.Repeat("x", 300), 120)

	f.Fuzz(func(t *testing.T, source string, offset int) {
		if len(source) < 2 {
			return
		}
		// Clamp to a strictly interior offset.
		if offset < 1 {
			offset = 1
		}
		if offset > len(source)-1 {
			offset = len(source) - 1
		}

		left := NewChunk(NewSpan(0, TextSize(len(source))))
		right := left.Split(TextSize(offset))

		if left.Start() != 0 || left.End() != TextSize(offset) {
			t.Errorf("left span %s, want [0:%d)", left.Span(), offset)
		}
		if right.Start() != TextSize(offset) || right.End() != TextSize(len(source)) {
			t.Errorf("right span %s, want [%d:%d)", right.Span(), offset, len(source))
		}

		combined := fragmentsString(left, source) + fragmentsString(right, source)
		if combined != source {
			t.Errorf("split halves concatenate to %q, want %q", combined, source)
		}
	})
}

// FuzzChunkFragments checks the emission order law for arbitrary fragment
// content: intro front-to-back, content, outro front-to-back.
func FuzzChunkFragments(f *testing.F) {
	f.Add("source", "i1", "i2", "o1")
	f.Add("x", "", "", "")
	f.Add("hello world", "<", ">", "!")

	f.Fuzz(func(t *testing.T, source, i1, i2, o1 string) {
		if len(source) == 0 {
			return
		}

		c := NewChunk(NewSpan(0, TextSize(len(source))))
		c.AppendIntro(NewText(i1))
		c.AppendIntro(NewText(i2))
		c.AppendOutro(NewText(o1))

		want := i1 + i2 + source + o1
		if got := fragmentsString(c, source); got != want {
			t.Errorf("fragments = %q, want %q", got, want)
		}

		it := c.Fragments(source)
		if it.Len() != len(want) {
			t.Errorf("Len() = %d, want %d", it.Len(), len(want))
		}
	})
}
