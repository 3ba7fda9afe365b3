package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/stitch/internal/rewrite"
)

func newEngine(t *testing.T, source string) (*Engine, *rewrite.Rewriter) {
	t.Helper()
	rw, err := rewrite.New(source)
	if err != nil {
		t.Fatalf("rewrite.New() error = %v", err)
	}
	eng := New(rw)
	t.Cleanup(func() { eng.Close() })
	return eng, rw
}

func TestRunStringUpdate(t *testing.T) {
	eng, rw := newEngine(t, "hello world")

	err := eng.RunString(`
		local s = require("stitch")
		s.update(5, 11, " there")
	`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}

	if got := rw.String(); got != "hello there" {
		t.Errorf("result = %q, want %q", got, "hello there")
	}
}

func TestRunStringReadAPI(t *testing.T) {
	eng, _ := newEngine(t, "hello world")

	// The script asserts on its own; any mismatch surfaces as an error.
	err := eng.RunString(`
		local s = require("stitch")
		if s.len() ~= 11 then error("len = " .. s.len()) end
		if s.source() ~= "hello world" then error("source = " .. s.source()) end
		if s.slice(0, 5) ~= "hello" then error("slice = " .. s.slice(0, 5)) end
		if s.slice(5, 5) ~= "" then error("empty slice not empty") end
		if s.changed() then error("changed before any edit") end
	`)
	if err != nil {
		t.Errorf("RunString() error = %v", err)
	}
}

func TestRunStringResult(t *testing.T) {
	eng, rw := newEngine(t, "hello world")

	err := eng.RunString(`
		local s = require("stitch")
		s.remove(5, 11)
		s.append("!")
		if s.result() ~= "hello!" then error("result = " .. s.result()) end
		if not s.changed() then error("changed still false") end
	`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}

	if got := rw.String(); got != "hello!" {
		t.Errorf("result = %q, want %q", got, "hello!")
	}
}

func TestRunStringUpdateOptions(t *testing.T) {
	eng, rw := newEngine(t, "hello world")

	err := eng.RunString(`
		local s = require("stitch")
		s.append_right(5, "*")
		s.update(5, 11, " there", {overwrite = false})
	`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}
	if got := rw.String(); got != "hello* there" {
		t.Errorf("after update without overwrite = %q, want %q", got, "hello* there")
	}

	err = eng.RunString(`require("stitch").update(5, 11, " there")`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}
	if got := rw.String(); got != "hello there" {
		t.Errorf("after overwriting update = %q, want %q", got, "hello there")
	}
}

func TestRunStringInsertions(t *testing.T) {
	eng, rw := newEngine(t, "ab")

	err := eng.RunString(`
		local s = require("stitch")
		s.prepend("<")
		s.append(">")
		s.append_left(1, "X")
		s.append_right(1, "Y")
	`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}

	if got := rw.String(); got != "<aXYb>" {
		t.Errorf("result = %q, want %q", got, "<aXYb>")
	}
}

func TestRunStringSyntaxError(t *testing.T) {
	eng, _ := newEngine(t, "hello world")

	err := eng.RunString(`invalid lua code !!!`)
	if err == nil {
		t.Error("RunString() with invalid code should return error")
	}
}

func TestRunStringEditError(t *testing.T) {
	eng, rw := newEngine(t, "hello world")

	err := eng.RunString(`require("stitch").update(0, 99, "x")`)
	if err == nil {
		t.Fatal("RunString() with out-of-range update should return error")
	}

	var scriptErr *ScriptError
	if !errors.As(err, &scriptErr) {
		t.Errorf("error = %T, want *ScriptError", err)
	}
	if scriptErr != nil && scriptErr.Path != "" {
		t.Errorf("ScriptError.Path = %q, want empty for inline source", scriptErr.Path)
	}

	if rw.HasChanged() {
		t.Error("failed update should leave rewriter unchanged")
	}
}

func TestRunStringPcallCatchesEditError(t *testing.T) {
	eng, rw := newEngine(t, "hello world")

	err := eng.RunString(`
		local s = require("stitch")
		local ok = pcall(function() s.update(0, 99, "x") end)
		if ok then error("expected out-of-range update to fail") end
		s.append("!")
	`)
	if err != nil {
		t.Fatalf("RunString() error = %v", err)
	}

	if got := rw.String(); got != "hello world!" {
		t.Errorf("result = %q, want %q", got, "hello world!")
	}
}

func TestRunFile(t *testing.T) {
	eng, rw := newEngine(t, "hello world")

	path := filepath.Join(t.TempDir(), "edit.lua")
	scriptSrc := `require("stitch").update(5, 11, " there")` + "\n"
	if err := os.WriteFile(path, []byte(scriptSrc), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := eng.RunFile(path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
	if got := rw.String(); got != "hello there" {
		t.Errorf("result = %q, want %q", got, "hello there")
	}
}

func TestRunFileMissing(t *testing.T) {
	eng, _ := newEngine(t, "hello world")

	path := filepath.Join(t.TempDir(), "missing.lua")
	err := eng.RunFile(path)
	if err == nil {
		t.Fatal("RunFile() on missing file should return error")
	}

	var scriptErr *ScriptError
	if !errors.As(err, &scriptErr) {
		t.Fatalf("error = %T, want *ScriptError", err)
	}
	if scriptErr.Path != path {
		t.Errorf("ScriptError.Path = %q, want %q", scriptErr.Path, path)
	}
}

func TestSandboxBlocksUnsafeModules(t *testing.T) {
	eng, _ := newEngine(t, "hello world")

	err := eng.RunString(`
		if dofile ~= nil then error("dofile should be removed") end
		if loadfile ~= nil then error("loadfile should be removed") end
		if load ~= nil then error("load should be removed") end

		for _, name in ipairs({"io", "os", "debug", "not_a_module"}) do
			local ok = pcall(require, name)
			if ok then error("require(" .. name .. ") should fail") end
		end
	`)
	if err != nil {
		t.Errorf("RunString() error = %v", err)
	}
}

func TestSandboxAllowsSafeModules(t *testing.T) {
	eng, _ := newEngine(t, "hello world")

	err := eng.RunString(`
		local str = require("string")
		if str.upper("ab") ~= "AB" then error("string module broken") end
		local m = require("math")
		if m.max(1, 2) ~= 2 then error("math module broken") end
		require("table")
	`)
	if err != nil {
		t.Errorf("RunString() error = %v", err)
	}
}

func TestEngineClose(t *testing.T) {
	eng, _ := newEngine(t, "hello world")

	if err := eng.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !eng.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}

	// Double close should not error.
	if err := eng.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if err := eng.RunString(`x = 1`); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("RunString() on closed engine error = %v, want ErrEngineClosed", err)
	}
	if err := eng.RunFile("edit.lua"); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("RunFile() on closed engine error = %v, want ErrEngineClosed", err)
	}
}

func TestScriptErrorFormat(t *testing.T) {
	inner := errors.New("boom")

	withPath := &ScriptError{Path: "edit.lua", Err: inner}
	if got := withPath.Error(); got != "script edit.lua: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(withPath, inner) {
		t.Error("Unwrap() should expose the inner error")
	}

	inline := &ScriptError{Err: inner}
	if got := inline.Error(); got != "script: boom" {
		t.Errorf("Error() = %q", got)
	}
}
