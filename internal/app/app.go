//go:build ebiten

package app

import (
	"image/color"

	"eca/internal/core"
	"eca/internal/render"
	"eca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Viewer adapts a finished simulation result to the ebiten.Game interface.
// It draws the same image every frame and only reacts to the quit keys.
type Viewer struct {
	grid    *core.ByteGrid
	painter *render.GridPainter
	caption *ui.Caption

	onColor  color.Color
	offColor color.Color

	scale int
}

// NewViewer constructs a Viewer for the provided grid. Alive cells are drawn
// black on white, matching how PBM viewers show a 1 pixel.
func NewViewer(grid *core.ByteGrid, caption []string, scale int) *Viewer {
	if scale < 1 {
		scale = 1
	}
	return &Viewer{
		grid:     grid,
		painter:  render.NewGridPainter(grid.W, grid.H),
		caption:  ui.NewCaption(caption),
		onColor:  color.Black,
		offColor: color.White,
		scale:    scale,
	}
}

// Update handles the quit keys.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the bitmap and its caption.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.painter.Blit(screen, v.grid.Cells(), v.onColor, v.offColor, v.scale)
	v.caption.Draw(screen)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := v.grid.Size()
	return max(1, s.W*v.scale), max(1, s.H*v.scale)
}
