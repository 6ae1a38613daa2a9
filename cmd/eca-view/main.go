//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"eca/internal/app"
	"eca/internal/core"
	"eca/internal/pbm"
	"eca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindSim(flag.CommandLine)
	in := flag.String("in", "", "show an existing PBM file instead of simulating")
	scale := flag.Int("scale", 3, "pixel scale multiplier")
	flag.Parse()

	var (
		grid *core.ByteGrid
		snap core.ParameterSnapshot
		name string
	)
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal(err)
		}
		grid, err = pbm.Decode(f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("%s: %v", *in, err)
		}
		snap = app.SourceSnapshot(*in, grid)
		name = *in
	} else {
		plan, err := cfg.Plan()
		if err != nil {
			log.Fatal(err)
		}
		grid = plan.Grid()
		snap = plan.Sim.Snapshot()
		name = "rule " + plan.Sim.Rule.String()
	}
	if *scale < 1 {
		log.Fatalf("invalid -scale %d: must be at least 1", *scale)
	}

	viewer := app.NewViewer(grid, ui.CaptionLines(snap), *scale)

	ebiten.SetWindowTitle("eca — " + name)
	ebiten.SetWindowSize(max(1, grid.W*(*scale)), max(1, grid.H*(*scale)))

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
