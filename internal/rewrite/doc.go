// Package rewrite provides the surgical text rewriter built on the splice
// chunk arena.
//
// A Rewriter owns one immutable source text and an arena of chunks tiling
// it. Edits never touch the source: replacing a range splits the chunks at
// the range boundaries and swaps the covered chunks' content, while
// insertions attach fragments to the chunk on the matching side of the
// offset. Materializing walks the chunk chain once, concatenating each
// chunk's fragment sequence, so unedited regions are emitted verbatim from
// the original backing array.
//
// Offsets are byte offsets into the original source and stay valid for the
// rewriter's whole lifetime; they are never shifted by earlier edits.
//
//	rw, _ := rewrite.New("hello world")
//	_ = rw.Update(5, 11, " there")
//	out := rw.String() // "hello there"
//
// Contract violations that the splice core treats as fatal surface here as
// typed errors instead: ErrOffsetOutOfRange, ErrRangeInvalid,
// ErrEditConflict, ErrSourceTooLarge, and ErrTextTooLarge.
package rewrite
