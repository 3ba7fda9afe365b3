package script

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stitch/internal/rewrite"
)

// Engine runs Lua edit scripts against a single rewriter.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// from Go code, but one Engine drives exactly one script at a time.
type Engine struct {
	state *lua.LState
	rw    *rewrite.Rewriter

	mu     sync.Mutex
	closed bool
}

// New creates a sandboxed engine bound to rw.
func New(rw *rewrite.Rewriter) *Engine {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})

	openSafeLibraries(L)
	installSandbox(L)
	registerStitchModule(L, rw)

	return &Engine{state: L, rw: rw}
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Intentionally not opened:
	// - io (file system access)
	// - os (system calls, execute)
	// - debug (can bypass the sandbox)
	// The package library is opened by NewState itself and is locked
	// down by the sandbox.
}

// RunFile executes a Lua script file.
// Execution is synchronous - the call blocks until completion or error.
func (e *Engine) RunFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	if err := e.doWithRecovery(func() error {
		return e.state.DoFile(path)
	}); err != nil {
		return &ScriptError{Path: path, Err: err}
	}
	return nil
}

// RunString executes inline Lua source.
// Execution is synchronous - the call blocks until completion or error.
func (e *Engine) RunString(src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	if err := e.doWithRecovery(func() error {
		return e.state.DoString(src)
	}); err != nil {
		return &ScriptError{Err: err}
	}
	return nil
}

// doWithRecovery executes a function with panic recovery.
func (e *Engine) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// IsClosed returns true if the engine has been closed.
func (e *Engine) IsClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// Close releases the interpreter. After Close, runs return ErrEngineClosed.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}

	e.state.Close()
	e.closed = true
	return nil
}
