package app

import (
	"os"
	"strings"
)

// applyEnvDefaults fills options from STITCH_* variables. Flags set on
// the command line win; the environment only turns defaults on.
func applyEnvDefaults(opts *Options) {
	if !opts.Verbose {
		opts.Verbose = envBool("STITCH_VERBOSE")
	}
	if !opts.NoColor {
		opts.NoColor = envBool("STITCH_NO_COLOR")
	}
}

// envBool accepts the usual truthy spellings.
func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
