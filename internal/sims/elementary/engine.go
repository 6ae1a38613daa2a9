package elementary

import (
	"golang.org/x/sync/errgroup"

	"eca/internal/core"
)

// ParallelMinWidth is the minimum number of cells each worker must receive
// before Step splits a generation across goroutines.
const ParallelMinWidth = 1024

// Engine applies one rule under one boundary policy. The zero value evaluates
// rule 0 with wrapping on a single goroutine.
type Engine struct {
	Rule     Rule
	Boundary Boundary
	// Workers caps the goroutines used per generation. Values below 2 keep
	// evaluation on the calling goroutine.
	Workers int
}

// Next computes the generation following row into a fresh slice.
func (e Engine) Next(row []uint8) []uint8 {
	next := make([]uint8, len(row))
	e.Step(next, row)
	return next
}

// Step writes the generation following src into dst. dst must have the same
// length as src and must not overlap it.
func (e Engine) Step(dst, src []uint8) {
	w := len(src)
	workers := e.workers(w)
	if workers <= 1 {
		e.stepRange(dst, src, 0, w)
		return
	}
	chunk := (w + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < w; lo += chunk {
		hi := min(lo+chunk, w)
		g.Go(func() error {
			e.stepRange(dst, src, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

func (e Engine) workers(w int) int {
	if e.Workers < 2 {
		return 1
	}
	return max(1, min(e.Workers, w/ParallelMinWidth))
}

func (e Engine) stepRange(dst, src []uint8, lo, hi int) {
	for x := lo; x < hi; x++ {
		left, center, right := Neighborhood(src, x, e.Boundary)
		dst[x] = e.Rule.Output(Pattern(left, center, right))
	}
}

// Run evolves initial for height generations and returns all of them in one
// arena. Generation 0 is a copy of initial. A height of zero or less yields an
// empty grid.
func (e Engine) Run(initial []uint8, height int) *core.ByteGrid {
	grid := core.NewByteGrid(len(initial), height)
	if grid.H == 0 {
		return grid
	}
	copy(grid.Row(0), initial)
	for y := 1; y < grid.H; y++ {
		e.Step(grid.Row(y), grid.Row(y-1))
	}
	return grid
}

// Stream evolves initial for height generations, handing each one to emit in
// order with two row buffers. The row passed to emit is only valid until emit
// returns. Stream stops at the first error returned by emit.
func (e Engine) Stream(initial []uint8, height int, emit func(gen int, row []uint8) error) error {
	if height <= 0 {
		return nil
	}
	cur := append([]uint8(nil), initial...)
	nxt := make([]uint8, len(cur))
	for gen := 0; gen < height; gen++ {
		if gen > 0 {
			e.Step(nxt, cur)
			cur, nxt = nxt, cur
		}
		if err := emit(gen, cur); err != nil {
			return err
		}
	}
	return nil
}
