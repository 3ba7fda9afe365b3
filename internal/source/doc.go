// Package source loads input files for rewriting.
//
// Loading normalizes content to UTF-8: a UTF-8 BOM is stripped and
// UTF-16 content (either byte order, detected by BOM) is decoded. The
// original encoding is remembered so Encode can restore it when results
// are written back in place. Content that looks binary is flagged so
// callers can refuse it instead of silently mangling it.
package source
