package splice

// EditOptions controls how Chunk.Edit treats existing state.
type EditOptions struct {
	// Overwrite discards any queued intro/outro fragments so the edit fully
	// replaces the chunk's contribution to the output. When false the
	// fragments survive and only the content is substituted.
	Overwrite bool

	// StoreName records that the original content should be kept available
	// for name-tracking consumers. It has no effect on materialization.
	StoreName bool
}

// DefaultEditOptions returns the standard edit behavior: full overwrite,
// no name retention. Use this rather than a zero EditOptions, whose
// Overwrite field would default to false.
func DefaultEditOptions() EditOptions {
	return EditOptions{Overwrite: true}
}
