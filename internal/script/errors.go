package script

import (
	"errors"
	"fmt"
)

// ErrEngineClosed is returned when running a script on a closed engine.
var ErrEngineClosed = errors.New("script engine closed")

// ScriptError wraps a Lua execution failure with the script's origin.
type ScriptError struct {
	Path string // script path, empty for inline sources
	Err  error
}

func (e *ScriptError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("script: %v", e.Err)
	}
	return fmt.Sprintf("script %s: %v", e.Path, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
