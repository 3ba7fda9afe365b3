// Package editscript loads JSON edit programs and applies them to a
// rewriter.
//
// A program is a JSON object with an "edits" array (a bare array is also
// accepted). Each edit names an op and its arguments:
//
//	{"edits": [
//	  {"op": "update", "start": 5, "end": 11, "text": " there"},
//	  {"op": "append_left", "offset": 5, "text": "!"},
//	  {"op": "remove", "start": 0, "end": 1}
//	]}
//
// Ranged ops (update, remove) take start/end; sided inserts (append_left,
// append_right, prepend_left, prepend_right) take offset; content-bearing
// ops take text. update additionally accepts overwrite (default true) and
// store_name (default false).
//
// Offsets always refer to the original source text, so programs can be
// written against the input without accounting for earlier edits.
//
// Applying a program produces a Report summarizing the run, serializable
// to JSON for toolchain consumers.
package editscript
