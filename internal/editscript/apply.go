package editscript

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/dshills/stitch/internal/rewrite"
	"github.com/dshills/stitch/internal/splice"
)

// Report summarizes one program run.
type Report struct {
	// RunID uniquely identifies the run.
	RunID string
	// Source is the rewritten input's name; the caller fills it in.
	Source string
	// Edits is the number of applied edits.
	Edits int
	// SourceLen and OutputLen are byte lengths before and after.
	SourceLen int
	OutputLen int
	// Changed reports whether any edit altered the output.
	Changed bool
	// Duration is the apply time.
	Duration time.Duration
}

// Apply runs every edit of the program against rw, in order. A failing
// edit aborts the run with its index and op wrapped around the rewriter's
// error; edits before it remain applied.
func (p *Program) Apply(rw *rewrite.Rewriter) (*Report, error) {
	start := time.Now()

	for i, edit := range p.Edits {
		if err := applyEdit(rw, edit); err != nil {
			return nil, fmt.Errorf("edit %d (%s): %w", i, edit.Op, err)
		}
	}

	return &Report{
		RunID:     uuid.NewString(),
		Edits:     len(p.Edits),
		SourceLen: rw.SourceLen(),
		OutputLen: rw.Len(),
		Changed:   rw.HasChanged(),
		Duration:  time.Since(start),
	}, nil
}

func applyEdit(rw *rewrite.Rewriter, edit Edit) error {
	switch edit.Op {
	case OpUpdate:
		opts := splice.EditOptions{Overwrite: edit.Overwrite, StoreName: edit.StoreName}
		return rw.UpdateWith(edit.Start, edit.End, edit.Text, opts)
	case OpRemove:
		return rw.Remove(edit.Start, edit.End)
	case OpAppend:
		return rw.Append(edit.Text)
	case OpPrepend:
		return rw.Prepend(edit.Text)
	case OpAppendLeft:
		return rw.AppendLeft(edit.Offset, edit.Text)
	case OpAppendRight:
		return rw.AppendRight(edit.Offset, edit.Text)
	case OpPrependLeft:
		return rw.PrependLeft(edit.Offset, edit.Text)
	case OpPrependRight:
		return rw.PrependRight(edit.Offset, edit.Text)
	default:
		return fmt.Errorf("op %q: %w", string(edit.Op), ErrInvalidProgram)
	}
}

// JSON renders the report for toolchain consumers.
func (r *Report) JSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	set("run_id", r.RunID)
	set("source", r.Source)
	set("edits", r.Edits)
	set("source_len", r.SourceLen)
	set("output_len", r.OutputLen)
	set("changed", r.Changed)
	set("duration_ms", r.Duration.Milliseconds())

	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return out, nil
}
