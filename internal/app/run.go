package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"syscall"

	"eca/internal/core"
	"eca/internal/pbm"
	"eca/internal/sims/elementary"
)

// Exit codes returned by Run.
const (
	ExitOK     = 0
	ExitIO     = 1
	ExitConfig = 2
)

// Run executes the command line argv and returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "eca: ", 0)

	fs := flag.NewFlagSet("eca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := NewConfig()
	cfg.Bind(fs)

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(fs, stdout)
			return ExitOK
		}
		logger.Print(err)
		printUsage(fs, stderr)
		return ExitConfig
	}
	if fs.NArg() > 0 {
		logger.Printf("unexpected argument %q", fs.Arg(0))
		return ExitConfig
	}

	plan, err := cfg.Plan()
	if err != nil {
		logger.Print(err)
		return ExitConfig
	}
	if err := plan.Write(stdout); err != nil {
		if IsBrokenPipe(err) {
			return ExitOK
		}
		logger.Print(err)
		return ExitIO
	}

	if !cfg.Quiet {
		report := stdout
		if plan.Output == "-" {
			report = stderr
		}
		_, _ = fmt.Fprintf(report, "wrote %s (%s)\n", plan.Output, plan.Sim.Snapshot())
	}
	return ExitOK
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage: eca [flags]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Simulates an elementary cellular automaton and writes the generations")
	_, _ = fmt.Fprintln(w, "as a plain PBM image, generation 0 on top.")
	_, _ = fmt.Fprintln(w)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// Engine returns the engine configured for this plan.
func (p *Plan) Engine() elementary.Engine {
	return elementary.Engine{Rule: p.Sim.Rule, Boundary: p.Sim.Boundary, Workers: p.Workers}
}

// Grid simulates the whole plan into memory.
func (p *Plan) Grid() *core.ByteGrid {
	return p.Engine().Run(p.Initial, p.Sim.Height)
}

// Encode simulates the plan and streams every generation to w as a PBM.
func (p *Plan) Encode(w io.Writer) error {
	enc, err := pbm.NewEncoder(w, p.Sim.Width, p.Sim.Height)
	if err != nil {
		return err
	}
	err = p.Engine().Stream(p.Initial, p.Sim.Height, func(_ int, row []uint8) error {
		return enc.WriteRow(row)
	})
	if err != nil {
		return err
	}
	return enc.Close()
}

// Write encodes the plan to its output path, or to stdout when the path is
// "-". A partially written file is left in place on error.
func (p *Plan) Write(stdout io.Writer) (err error) {
	if p.Output == "-" {
		return p.Encode(stdout)
	}
	f, err := os.Create(p.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", p.Output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", p.Output, cerr)
		}
	}()
	if err := p.Encode(f); err != nil {
		return fmt.Errorf("write %s: %w", p.Output, err)
	}
	return nil
}

// SourceSnapshot describes a bitmap loaded from disk.
func SourceSnapshot(path string, g *core.ByteGrid) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "image",
		Params: []core.Parameter{
			{Key: "source", Label: "Source", Type: core.ParamTypeString, Value: path},
			{Key: "width", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(g.W)},
			{Key: "height", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(g.H)},
		},
	}}}
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
