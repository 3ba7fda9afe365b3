package app

import (
	"os"

	"github.com/fatih/color"
)

// status prints user-facing progress lines to stderr. Library packages
// stay silent; this is the only place the tool talks.
type status struct {
	verbose bool
	info    *color.Color
	warn    *color.Color
}

func newStatus(verbose, noColor bool) *status {
	info := color.New(color.FgCyan)
	warn := color.New(color.FgYellow)
	if noColor {
		info.DisableColor()
		warn.DisableColor()
	}
	return &status{verbose: verbose, info: info, warn: warn}
}

func (s *status) infof(format string, args ...any) {
	if !s.verbose {
		return
	}
	s.info.Fprintf(os.Stderr, format+"\n", args...)
}

// warnf prints even without -verbose; warnings should not be missable.
func (s *status) warnf(format string, args ...any) {
	s.warn.Fprintf(os.Stderr, format+"\n", args...)
}
