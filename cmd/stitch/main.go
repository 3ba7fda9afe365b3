// Package main is the entry point for the stitch rewriter.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/stitch/internal/app"
	"github.com/dshills/stitch/internal/source"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if err := app.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, source.ErrBinary) {
			fmt.Fprintln(os.Stderr, "Use -force to rewrite binary-looking input anyway.")
		}
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.Output, "o", "", "Write the result to this file instead of stdout")
	flag.BoolVar(&opts.InPlace, "w", false, "Rewrite the input file in place")
	flag.StringVar(&opts.EditsPath, "edits", "", "Apply the JSON edit program at this path")
	flag.StringVar(&opts.ScriptPath, "script", "", "Run the Lua edit script at this path")
	flag.StringVar(&opts.ReportPath, "report", "", "Write a JSON run report to this path")
	flag.BoolVar(&opts.Preview, "preview", false, "Show the result in a full-screen viewer")
	flag.BoolVar(&opts.Force, "force", false, "Rewrite input that looks binary")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Print status lines to stderr")
	flag.BoolVar(&opts.NoColor, "no-color", false, "Disable colored status output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "stitch - splice-based text rewriter\n\n")
		fmt.Fprintf(os.Stderr, "Usage: stitch [options] <file>\n")
		fmt.Fprintf(os.Stderr, "       stitch [options] -\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stitch -edits edits.json file.txt         Apply a JSON edit program\n")
		fmt.Fprintf(os.Stderr, "  stitch -script edit.lua -w file.txt       Run a Lua script, edit in place\n")
		fmt.Fprintf(os.Stderr, "  cat file.txt | stitch -edits edits.json - Rewrite stdin to stdout\n")
		fmt.Fprintf(os.Stderr, "  stitch -edits edits.json -preview file.txt  View the result\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("stitch %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.Input = flag.Arg(0)

	return opts
}
