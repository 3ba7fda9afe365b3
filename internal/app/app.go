// Package app wires the loading, rewriting, scripting, and output
// stages of the stitch command line tool.
package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dshills/stitch/internal/editscript"
	"github.com/dshills/stitch/internal/preview"
	"github.com/dshills/stitch/internal/rewrite"
	"github.com/dshills/stitch/internal/script"
	"github.com/dshills/stitch/internal/source"
)

// stdinName is the reported path when input comes from stdin.
const stdinName = "<stdin>"

// Options configures a run.
type Options struct {
	// Input is the file to rewrite, or "-" for stdin.
	Input string

	// Output is the destination path; empty writes to stdout.
	Output string

	// InPlace rewrites the input file itself.
	InPlace bool

	// EditsPath is a JSON edit program to apply.
	EditsPath string

	// ScriptPath is a Lua script to run against the source.
	ScriptPath string

	// ReportPath receives a JSON run report.
	ReportPath string

	// Preview shows the result in a full-screen viewer instead of
	// writing it to stdout.
	Preview bool

	// Force accepts input that looks binary.
	Force bool

	// Verbose prints status lines to stderr.
	Verbose bool

	// NoColor disables colored status output.
	NoColor bool
}

// Run executes one rewrite with the given options.
func Run(opts Options) error {
	applyEnvDefaults(&opts)
	return newPipeline(opts).run()
}

// pipeline carries one run's options and streams. Tests swap the
// streams for buffers.
type pipeline struct {
	opts   Options
	status *status

	stdin  io.Reader
	stdout io.Writer
}

func newPipeline(opts Options) *pipeline {
	return &pipeline{
		opts:   opts,
		status: newStatus(opts.Verbose, opts.NoColor),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

func (p *pipeline) run() error {
	if err := p.checkOptions(); err != nil {
		return err
	}
	start := time.Now()

	file, err := p.loadInput()
	if err != nil {
		return err
	}
	p.status.infof("loaded %s (%d bytes, %s)", file.Path, len(file.Content), file.Encoding)

	rw, err := rewrite.New(file.Content)
	if err != nil {
		return fmt.Errorf("build rewriter for %s: %w", file.Path, err)
	}

	report, err := p.applyProgram(rw)
	if err != nil {
		return err
	}
	if err := p.runScript(rw); err != nil {
		return err
	}

	result := rw.String()
	if rw.HasChanged() {
		p.status.infof("rewrote %s: %d -> %d bytes", file.Path, rw.SourceLen(), len(result))
	} else {
		p.status.infof("no changes for %s", file.Path)
	}

	if err := p.writeOutput(file, result); err != nil {
		return err
	}
	if err := p.writeReport(report, file, rw, len(result), time.Since(start)); err != nil {
		return err
	}
	if p.opts.Preview {
		return p.showPreview(file, result)
	}
	return nil
}

func (p *pipeline) checkOptions() error {
	if p.opts.Input == "" {
		return ErrNoInput
	}
	if p.opts.InPlace && p.opts.Output != "" {
		return ErrOutputConflict
	}
	if p.opts.InPlace && p.opts.Input == "-" {
		return ErrInPlaceStdin
	}
	return nil
}

func (p *pipeline) loadInput() (*source.File, error) {
	var (
		file *source.File
		err  error
	)
	if p.opts.Input == "-" {
		var data []byte
		data, err = io.ReadAll(p.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		file, err = source.FromBytes(stdinName, data)
	} else {
		file, err = source.Load(p.opts.Input)
	}
	if err != nil {
		return nil, err
	}

	if file.Binary {
		if !p.opts.Force {
			return nil, fmt.Errorf("%s: %w", file.Path, source.ErrBinary)
		}
		p.status.warnf("%s looks binary, rewriting anyway", file.Path)
	}
	return file, nil
}

func (p *pipeline) applyProgram(rw *rewrite.Rewriter) (*editscript.Report, error) {
	if p.opts.EditsPath == "" {
		return nil, nil
	}

	prog, err := editscript.Load(p.opts.EditsPath)
	if err != nil {
		return nil, err
	}
	report, err := prog.Apply(rw)
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", p.opts.EditsPath, err)
	}
	p.status.infof("applied %d edits from %s", report.Edits, p.opts.EditsPath)
	return report, nil
}

func (p *pipeline) runScript(rw *rewrite.Rewriter) error {
	if p.opts.ScriptPath == "" {
		return nil
	}

	eng := script.New(rw)
	defer eng.Close()

	if err := eng.RunFile(p.opts.ScriptPath); err != nil {
		return err
	}
	p.status.infof("ran script %s", p.opts.ScriptPath)
	return nil
}

func (p *pipeline) writeOutput(file *source.File, result string) error {
	switch {
	case p.opts.InPlace:
		return p.writeFile(file, file.Path, result)
	case p.opts.Output != "":
		return p.writeFile(file, p.opts.Output, result)
	default:
		if p.opts.Preview {
			// The viewer shows the result instead.
			return nil
		}
		if _, err := io.WriteString(p.stdout, result); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
}

// writeFile restores the input's original encoding and, for in-place
// writes, keeps the file's permission bits.
func (p *pipeline) writeFile(file *source.File, path, result string) error {
	data, err := file.Encode(result)
	if err != nil {
		return err
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	p.status.infof("wrote %s (%d bytes)", path, len(data))
	return nil
}

func (p *pipeline) writeReport(report *editscript.Report, file *source.File, rw *rewrite.Rewriter, outputLen int, elapsed time.Duration) error {
	if p.opts.ReportPath == "" {
		return nil
	}

	if report == nil {
		report = &editscript.Report{RunID: uuid.NewString()}
	}
	report.Source = file.Path
	report.SourceLen = rw.SourceLen()
	report.OutputLen = outputLen
	report.Changed = rw.HasChanged()
	report.Duration = elapsed

	data, err := report.JSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.opts.ReportPath, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", p.opts.ReportPath, err)
	}
	p.status.infof("wrote report %s", p.opts.ReportPath)
	return nil
}

func (p *pipeline) showPreview(file *source.File, result string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	title := fmt.Sprintf("stitch: %s (%d bytes)", file.Path, len(result))
	return preview.Run(screen, preview.New(title, result))
}
