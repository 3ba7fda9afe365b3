package rewrite

import "errors"

// Errors returned by Rewriter operations.
var (
	// ErrSourceTooLarge is returned by New when the source text does not fit
	// the 32-bit offset model.
	ErrSourceTooLarge = errors.New("source text exceeds 4 GiB limit")

	// ErrTextTooLarge is returned when inserted or replacement content does
	// not fit the 32-bit offset model.
	ErrTextTooLarge = errors.New("text exceeds 4 GiB limit")

	// ErrOffsetOutOfRange is returned when an offset lies outside the source.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid is returned for empty or inverted ranges. Zero-length
	// targets are insertions, not replacements; use AppendLeft or
	// PrependRight for those.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrEditConflict is returned when an operation would have to split a
	// chunk whose content has already been replaced. The replaced content no
	// longer corresponds to source offsets, so the operation cannot be
	// positioned inside it.
	ErrEditConflict = errors.New("edit conflicts with an applied edit")
)
