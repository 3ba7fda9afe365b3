package splice

import "fmt"

// Chunk is one segment of the eventual output: a span into the source text
// (or replacement content once edited) plus ordered fragment lists emitted
// immediately before and after the segment's own content. Chunks link
// forward through arena indices to form the emission chain.
type Chunk struct {
	span          Span
	intro         []Text
	outro         []Text
	editedContent Text
	edited        bool
	storeName     bool
	next          ChunkIdx
	hasNext       bool
}

// NewChunk creates an unedited chunk covering span, with no fragments and
// no forward link.
func NewChunk(span Span) *Chunk {
	return &Chunk{span: span}
}

// Span returns the chunk's current span into the source text.
// For an edited chunk the span still names the source range the
// replacement content stands in for.
func (c *Chunk) Span() Span {
	return c.span
}

// Start returns the span's inclusive start offset.
func (c *Chunk) Start() TextSize {
	return c.span.start
}

// End returns the span's exclusive end offset.
func (c *Chunk) End() TextSize {
	return c.span.end
}

// Contains reports whether offset is strictly interior to the chunk's span.
// Boundary offsets are not contained: a split targets an interior point,
// and an edit exactly at a boundary belongs to the adjacent chunk.
func (c *Chunk) Contains(offset TextSize) bool {
	return c.span.start < offset && offset < c.span.end
}

// AppendIntro queues a fragment after any existing intro fragments.
// Intro fragments are emitted front-to-back before the chunk's content.
func (c *Chunk) AppendIntro(t Text) {
	c.intro = append(c.intro, t)
}

// PrependIntro queues a fragment before any existing intro fragments.
func (c *Chunk) PrependIntro(t Text) {
	c.intro = append([]Text{t}, c.intro...)
}

// AppendOutro queues a fragment after any existing outro fragments.
// Outro fragments are emitted front-to-back after the chunk's content.
func (c *Chunk) AppendOutro(t Text) {
	c.outro = append(c.outro, t)
}

// PrependOutro queues a fragment before any existing outro fragments.
func (c *Chunk) PrependOutro(t Text) {
	c.outro = append([]Text{t}, c.outro...)
}

// Edit replaces the chunk's emitted content with content, overriding the
// source-slice default. With opts.Overwrite the queued intro/outro
// fragments are discarded as well; without it they survive and only the
// content is substituted. opts.StoreName is recorded for name-tracking
// consumers. Editing again simply replaces the content and reapplies the
// overwrite policy.
func (c *Chunk) Edit(content Text, opts EditOptions) {
	if opts.Overwrite {
		c.intro = nil
		c.outro = nil
	}
	c.editedContent = content
	c.edited = true
	c.storeName = opts.StoreName
}

// IsEdited reports whether Edit has been applied to this chunk.
func (c *Chunk) IsEdited() bool {
	return c.edited
}

// StoresName reports the StoreName flag recorded by the latest edit.
func (c *Chunk) StoresName() bool {
	return c.storeName
}

// Next returns the index of the chunk that follows this one in emission
// order, if a link has been set.
func (c *Chunk) Next() (ChunkIdx, bool) {
	return c.next, c.hasNext
}

// SetNext points the forward link at idx.
func (c *Chunk) SetNext(idx ChunkIdx) {
	c.next = idx
	c.hasNext = true
}

// Split divides the chunk in two at offset and returns the new right half.
// The receiver shrinks in place to [start, offset), keeping its intro; the
// right half covers [offset, end) and takes the entire outro along with the
// receiver's forward link, so it assumes the receiver's position relative
// to whatever follows. The receiver's own link is cleared; pushing the new
// chunk into the arena and re-pointing the receiver at it is the caller's
// job, since Split has no arena access.
//
// Panics if the chunk has been edited (its content no longer corresponds
// to a source range, so there is no source offset to partition by) or if
// offset is not strictly interior to the span.
func (c *Chunk) Split(offset TextSize) *Chunk {
	if c.edited {
		panic("splice: cannot split an edited chunk")
	}
	if !c.Contains(offset) {
		panic(fmt.Sprintf("splice: split offset %d not interior to span %s", offset, c.span))
	}

	right := NewChunk(NewSpan(offset, c.span.end))
	right.outro = c.outro
	right.next, right.hasNext = c.next, c.hasNext

	c.span = NewSpan(c.span.start, offset)
	c.outro = nil
	c.next, c.hasNext = 0, false

	return right
}

// content returns the chunk's current contribution between its fragments:
// the edited content if set, otherwise the span's slice of source.
func (c *Chunk) content(source string) string {
	if c.edited {
		return c.editedContent.String()
	}
	return c.span.Text(source)
}
