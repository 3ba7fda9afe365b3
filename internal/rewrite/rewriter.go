package rewrite

import (
	"fmt"

	"github.com/dshills/stitch/internal/splice"
)

// Rewriter describes surgical edits against one immutable source text and
// materializes the rewritten result. All offsets refer to the original
// source; they are never shifted by earlier edits.
//
// A Rewriter is not safe for concurrent use.
type Rewriter struct {
	source splice.Text
	arena  *splice.Arena

	// Chunk chain in emission order. hasChunks is false only for an empty
	// source, which is representable here even though chunks themselves can
	// never be empty.
	head      splice.ChunkIdx
	tail      splice.ChunkIdx
	hasChunks bool

	// Chunk boundary lookup by source offset.
	byStart map[splice.TextSize]splice.ChunkIdx
	byEnd   map[splice.TextSize]splice.ChunkIdx

	// Last chunk found by a containment search; scans resume here when the
	// target offset is not behind it.
	searchHint splice.ChunkIdx

	// Document-level fragments for insertions at offsets no chunk owns:
	// intro precedes the first chunk, outro follows the last.
	intro []splice.Text
	outro []splice.Text

	edited bool
}

// New creates a rewriter over source. The whole source is covered by a
// single chunk until edits split it. Returns ErrSourceTooLarge when the
// source does not fit the 32-bit offset model.
func New(source string) (*Rewriter, error) {
	if uint64(len(source)) > splice.MaxTextLen {
		return nil, fmt.Errorf("source of %d bytes: %w", len(source), ErrSourceTooLarge)
	}

	r := &Rewriter{
		source:  splice.NewText(source),
		arena:   splice.NewArena(),
		byStart: make(map[splice.TextSize]splice.ChunkIdx),
		byEnd:   make(map[splice.TextSize]splice.ChunkIdx),
	}

	if len(source) > 0 {
		idx := r.arena.Push(splice.NewChunk(splice.NewSpan(0, splice.TextSize(len(source)))))
		r.head, r.tail, r.hasChunks = idx, idx, true
		r.searchHint = idx
		r.byStart[0] = idx
		r.byEnd[splice.TextSize(len(source))] = idx
	}

	return r, nil
}

// Source returns the original text.
func (r *Rewriter) Source() string {
	return r.source.String()
}

// SourceLen returns the original text's byte length.
func (r *Rewriter) SourceLen() int {
	return int(r.source.Len())
}

// HasChanged reports whether any edit operation has been applied.
func (r *Rewriter) HasChanged() bool {
	return r.edited
}

// ChunkCount returns the number of chunks the source has been divided into.
func (r *Rewriter) ChunkCount() int {
	return r.arena.Len()
}

// Update replaces the source range [start, end) with content using the
// default edit behavior (full overwrite).
func (r *Rewriter) Update(start, end int, content string) error {
	return r.UpdateWith(start, end, content, splice.DefaultEditOptions())
}

// UpdateWith replaces the source range [start, end) with content. With
// opts.Overwrite any fragments already attached inside the range are
// discarded; without it they survive around the new content. A range that
// partially overlaps an earlier replacement returns ErrEditConflict; a
// range that exactly covers or fully contains one simply supersedes it.
func (r *Rewriter) UpdateWith(start, end int, content string, opts splice.EditOptions) error {
	startOff, endOff, err := r.checkRange(start, end)
	if err != nil {
		return err
	}
	text, err := newText(content)
	if err != nil {
		return err
	}
	if err := r.splitRange(startOff, endOff); err != nil {
		return err
	}

	// First chunk in the range carries the content; any further chunks up
	// to the end boundary are emptied so exactly one copy is emitted. The
	// overwrite choice applies to every chunk in the range, so fragments
	// survive throughout when it is off.
	idx := r.byStart[startOff]
	c := r.arena.Get(idx)
	c.Edit(text, opts)
	restOpts := splice.EditOptions{Overwrite: opts.Overwrite}
	for c.End() < endOff {
		next, ok := c.Next()
		if !ok {
			panic(fmt.Sprintf("rewrite: chunk chain ended inside range [%d:%d)", start, end))
		}
		c = r.arena.Get(next)
		c.Edit(splice.NewText(""), restOpts)
	}

	r.edited = true
	return nil
}

// Remove deletes the source range [start, end) from the output. The chunks
// stay in the chain with empty content, so later edits against other
// ranges keep working.
func (r *Rewriter) Remove(start, end int) error {
	return r.UpdateWith(start, end, "", splice.DefaultEditOptions())
}

// Append adds content at the very end of the output, after all chunks and
// any previously appended content.
func (r *Rewriter) Append(content string) error {
	t, err := newText(content)
	if err != nil {
		return err
	}
	r.outro = append(r.outro, t)
	r.edited = true
	return nil
}

// Prepend adds content at the very start of the output, before all chunks
// and any previously prepended content.
func (r *Rewriter) Prepend(content string) error {
	t, err := newText(content)
	if err != nil {
		return err
	}
	r.intro = append([]splice.Text{t}, r.intro...)
	r.edited = true
	return nil
}

// AppendLeft inserts content at offset, attached to the text ending there:
// it is emitted after everything that belongs to the left side, and before
// anything inserted with AppendRight at the same offset. Repeated calls at
// one offset emit in call order.
func (r *Rewriter) AppendLeft(offset int, content string) error {
	off, t, err := r.insertionPoint(offset, content)
	if err != nil {
		return err
	}
	if idx, ok := r.byEnd[off]; ok {
		r.arena.Get(idx).AppendOutro(t)
	} else {
		r.intro = append(r.intro, t)
	}
	r.edited = true
	return nil
}

// PrependLeft is AppendLeft emitting before earlier insertions at the same
// offset instead of after them.
func (r *Rewriter) PrependLeft(offset int, content string) error {
	off, t, err := r.insertionPoint(offset, content)
	if err != nil {
		return err
	}
	if idx, ok := r.byEnd[off]; ok {
		r.arena.Get(idx).PrependOutro(t)
	} else {
		r.intro = append([]splice.Text{t}, r.intro...)
	}
	r.edited = true
	return nil
}

// AppendRight inserts content at offset, attached to the text starting
// there: it is emitted after anything inserted with AppendLeft at the same
// offset and before the right side's own content. Repeated calls at one
// offset emit in call order.
func (r *Rewriter) AppendRight(offset int, content string) error {
	off, t, err := r.insertionPoint(offset, content)
	if err != nil {
		return err
	}
	if idx, ok := r.byStart[off]; ok {
		r.arena.Get(idx).AppendIntro(t)
	} else {
		r.outro = append(r.outro, t)
	}
	r.edited = true
	return nil
}

// PrependRight is AppendRight emitting before earlier insertions at the
// same offset instead of after them.
func (r *Rewriter) PrependRight(offset int, content string) error {
	off, t, err := r.insertionPoint(offset, content)
	if err != nil {
		return err
	}
	if idx, ok := r.byStart[off]; ok {
		r.arena.Get(idx).PrependIntro(t)
	} else {
		r.outro = append([]splice.Text{t}, r.outro...)
	}
	r.edited = true
	return nil
}

// insertionPoint validates an insertion offset, wraps the content, and
// ensures a chunk boundary exists at the offset.
func (r *Rewriter) insertionPoint(offset int, content string) (splice.TextSize, splice.Text, error) {
	off, err := r.checkOffset(offset)
	if err != nil {
		return 0, splice.Text{}, err
	}
	t, err := newText(content)
	if err != nil {
		return 0, splice.Text{}, err
	}
	if off > 0 && off < r.source.Len() {
		if err := r.splitAt(off); err != nil {
			return 0, splice.Text{}, err
		}
	}
	return off, t, nil
}

// splitRange ensures chunk boundaries exist at both ends of [start, end).
func (r *Rewriter) splitRange(start, end splice.TextSize) error {
	if start > 0 {
		if err := r.splitAt(start); err != nil {
			return err
		}
	}
	if end < r.source.Len() {
		if err := r.splitAt(end); err != nil {
			return err
		}
	}
	return nil
}

// splitAt ensures a chunk boundary exists at offset, splitting the chunk
// containing it if needed and wiring the new right half into the chain,
// the tail, and the boundary maps. Offsets that already fall on a boundary
// are a no-op. Returns ErrEditConflict when the containing chunk has been
// edited, since its content no longer maps to source offsets.
func (r *Rewriter) splitAt(offset splice.TextSize) error {
	if _, ok := r.byStart[offset]; ok {
		return nil
	}

	idx := r.chunkContaining(offset)
	target := r.arena.Get(idx)
	if target.IsEdited() {
		return fmt.Errorf("offset %d is inside replaced range %s: %w", offset, target.Span(), ErrEditConflict)
	}

	right := target.Split(offset)
	rightIdx := r.arena.Push(right)
	target.SetNext(rightIdx)

	if r.tail == idx {
		r.tail = rightIdx
	}
	r.byStart[offset] = rightIdx
	r.byEnd[offset] = idx
	r.byEnd[right.End()] = rightIdx

	return nil
}

// chunkContaining returns the chunk whose span strictly contains offset.
// The caller guarantees the offset is interior to the source and not on a
// chunk boundary, so the scan always terminates at a match.
func (r *Rewriter) chunkContaining(offset splice.TextSize) splice.ChunkIdx {
	idx := r.searchHint
	c := r.arena.Get(idx)
	if offset <= c.Start() {
		idx = r.head
		c = r.arena.Get(idx)
	}
	for {
		if c.Contains(offset) {
			r.searchHint = idx
			return idx
		}
		next, ok := c.Next()
		if !ok {
			panic(fmt.Sprintf("rewrite: no chunk contains offset %d", offset))
		}
		idx = next
		c = r.arena.Get(idx)
	}
}

// checkOffset validates an insertion offset, which may sit on either edge
// of the source.
func (r *Rewriter) checkOffset(offset int) (splice.TextSize, error) {
	if offset < 0 || offset > r.SourceLen() {
		return 0, fmt.Errorf("offset %d with source length %d: %w", offset, r.SourceLen(), ErrOffsetOutOfRange)
	}
	return splice.TextSize(offset), nil
}

// checkRange validates a replacement range.
func (r *Rewriter) checkRange(start, end int) (splice.TextSize, splice.TextSize, error) {
	if start < 0 || end > r.SourceLen() {
		return 0, 0, fmt.Errorf("range [%d:%d) with source length %d: %w", start, end, r.SourceLen(), ErrOffsetOutOfRange)
	}
	if start >= end {
		return 0, 0, fmt.Errorf("range [%d:%d): %w", start, end, ErrRangeInvalid)
	}
	return splice.TextSize(start), splice.TextSize(end), nil
}

// newText wraps content for chunk storage, surfacing the core's size cap
// as a typed error.
func newText(content string) (splice.Text, error) {
	if uint64(len(content)) > splice.MaxTextLen {
		return splice.Text{}, fmt.Errorf("content of %d bytes: %w", len(content), ErrTextTooLarge)
	}
	return splice.NewText(content), nil
}
