package splice

import "fmt"

// ChunkIdx is a stable handle to a chunk within its arena. Indices are
// dense, minted in push order, and remain valid for the arena's lifetime.
type ChunkIdx uint32

// Arena owns every chunk of one source text. It is append-only: chunks are
// never removed, so indices are never invalidated or reused. "Deleting"
// content is modeled as editing a chunk to empty content, which keeps the
// forward chain intact.
//
// The arena stores chunk pointers, so a *Chunk obtained from Get stays
// valid across later pushes.
type Arena struct {
	chunks []*Chunk
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Push inserts a chunk and returns its newly minted index.
func (a *Arena) Push(c *Chunk) ChunkIdx {
	if uint64(len(a.chunks)) >= 1<<32 {
		panic("splice: arena chunk count exceeds index range")
	}
	a.chunks = append(a.chunks, c)
	return ChunkIdx(len(a.chunks) - 1)
}

// Get returns the chunk at idx.
// Panics on an out-of-range index: every index in circulation is expected
// to come from this arena, so an invalid one is a programming error rather
// than recoverable input.
func (a *Arena) Get(idx ChunkIdx) *Chunk {
	if uint64(idx) >= uint64(len(a.chunks)) {
		panic(fmt.Sprintf("splice: chunk index %d out of range (arena holds %d)", idx, len(a.chunks)))
	}
	return a.chunks[idx]
}

// Len returns the number of chunks in the arena.
func (a *Arena) Len() int {
	return len(a.chunks)
}
