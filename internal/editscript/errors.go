package editscript

import (
	"errors"
	"fmt"
)

// ErrInvalidProgram indicates an edit program that could not be parsed or
// validated. Every *ParseError unwraps to it.
var ErrInvalidProgram = errors.New("invalid edit program")

// ParseError describes where an edit program failed validation.
type ParseError struct {
	// Path is the program file path, empty for inline programs.
	Path string
	// Index is the failing edit's position, -1 for document-level errors.
	Index int
	// Op is the edit's op name, when one was present.
	Op string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	where := "edit program"
	if e.Path != "" {
		where = e.Path
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", where, e.Message)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: edit %d (%s): %s", where, e.Index, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: edit %d: %s", where, e.Index, e.Message)
}

// Unwrap returns ErrInvalidProgram so callers can match with errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrInvalidProgram
}
