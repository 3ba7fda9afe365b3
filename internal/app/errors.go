package app

import "errors"

// Application errors.
var (
	// ErrNoInput indicates no input file was given.
	ErrNoInput = errors.New("no input file")

	// ErrOutputConflict indicates in-place editing was combined with an
	// output path.
	ErrOutputConflict = errors.New("in-place editing and an output path are mutually exclusive")

	// ErrInPlaceStdin indicates in-place editing of stdin.
	ErrInPlaceStdin = errors.New("cannot edit stdin in place")

	// ErrNoTerminal indicates preview was requested without a terminal.
	ErrNoTerminal = errors.New("preview requires a terminal")
)
