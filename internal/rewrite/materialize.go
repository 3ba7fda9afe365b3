package rewrite

import (
	"io"
	"strings"

	"github.com/dshills/stitch/internal/splice"
)

// Len returns the byte length of the rewritten output without building it.
func (r *Rewriter) Len() int {
	n := 0
	for _, t := range r.intro {
		n += len(t.String())
	}
	idx, ok := r.head, r.hasChunks
	for ok {
		c := r.arena.Get(idx)
		n += c.Fragments(r.source.String()).Len()
		idx, ok = c.Next()
	}
	for _, t := range r.outro {
		n += len(t.String())
	}
	return n
}

// String materializes the rewritten output: document intro, then every
// chunk's fragment sequence in chain order, then document outro.
func (r *Rewriter) String() string {
	var sb strings.Builder
	sb.Grow(r.Len())

	for _, t := range r.intro {
		sb.WriteString(t.String())
	}
	idx, ok := r.head, r.hasChunks
	for ok {
		c := r.arena.Get(idx)
		it := c.Fragments(r.source.String())
		for it.Next() {
			sb.WriteString(it.Fragment())
		}
		idx, ok = c.Next()
	}
	for _, t := range r.outro {
		sb.WriteString(t.String())
	}

	return sb.String()
}

// WriteTo streams the rewritten output to w fragment by fragment, without
// assembling it in memory first. It implements io.WriterTo.
func (r *Rewriter) WriteTo(w io.Writer) (int64, error) {
	var written int64

	for _, t := range r.intro {
		n, err := io.WriteString(w, t.String())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	idx, ok := r.head, r.hasChunks
	for ok {
		c := r.arena.Get(idx)
		it := c.Fragments(r.source.String())
		for it.Next() {
			n, err := io.WriteString(w, it.Fragment())
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		idx, ok = c.Next()
	}

	for _, t := range r.outro {
		n, err := io.WriteString(w, t.String())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// walkChunks visits every chunk in emission order.
func (r *Rewriter) walkChunks(fn func(c *splice.Chunk)) {
	idx, ok := r.head, r.hasChunks
	for ok {
		c := r.arena.Get(idx)
		fn(c)
		idx, ok = c.Next()
	}
}
