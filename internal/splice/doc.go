// Package splice implements the chunk arena at the heart of the rewriter.
//
// A source text is represented as an ordered chain of chunks. Each chunk
// covers a half-open span of the original text (or replacement content once
// edited) and carries ordered fragment lists emitted immediately before
// (intro) and after (outro) its own content. Chunks live in an append-only
// arena and reference each other by index, so splitting a chunk never
// invalidates anyone's handle.
//
// Key properties:
//   - Unedited chunks reference the source by span; no text is copied
//   - Splitting moves the outro and the forward link to the right half
//   - An edited chunk can never be split again
//   - Arena indices are dense, stable, and never reused
//
// Basic usage:
//
//	arena := splice.NewArena()
//	head := arena.Push(splice.NewChunk(splice.NewSpan(0, 11)))
//	right := arena.Get(head).Split(5)
//	idx := arena.Push(right)
//	arena.Get(head).SetNext(idx)
//
// All offsets are 32-bit; texts beyond 4 GiB are rejected at construction.
// Contract violations (invalid spans, non-interior splits, splitting an
// edited chunk, out-of-range indices) panic rather than returning errors:
// they indicate the caller's offset model is already inconsistent. The
// rewrite package layers recoverable errors on top of these checks.
package splice
