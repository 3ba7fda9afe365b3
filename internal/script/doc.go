// Package script embeds a sandboxed Lua interpreter that drives the
// rewriter.
//
// Scripts see a preloaded stitch module whose functions mirror the
// rewriter API. Offsets are byte offsets into the original source:
//
//	local s = require("stitch")
//	s.update(5, 11, " there")
//	s.append_left(5, "!")
//	print(s.result())
//
// The interpreter opens only the base, table, string, and math libraries.
// File, OS, and module-loading access is stripped: dofile, loadfile, and
// load are removed, package paths are blanked, and require only resolves
// the built-in safe libraries and the stitch module itself.
//
// Rewriter failures surface inside Lua as errors (catchable with pcall);
// an uncaught error comes back from RunFile or RunString as a
// *ScriptError.
package script
