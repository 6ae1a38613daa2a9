package core

// ByteGrid stores a sequence of generations in one flat row-major buffer,
// indexed generation*W + position. Row 0 is generation 0.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Negative dimensions
// are treated as zero, so an empty result is still a valid grid.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Row returns generation y as a slice aliasing the grid storage. The slice
// capacity is clipped so appending to it never clobbers the next generation.
func (g *ByteGrid) Row(y int) []uint8 {
	start := y * g.W
	end := start + g.W
	return g.data[start:end:end]
}
