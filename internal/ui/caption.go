//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	captionPadding  = 4
	captionBaseline = 11
	captionLine     = 15
)

// Caption draws a few lines of text over a translucent bar in the top-left
// corner of the screen.
type Caption struct {
	lines []string
	pixel *ebiten.Image
	width int
}

// NewCaption constructs a caption for the provided lines.
func NewCaption(lines []string) *Caption {
	c := &Caption{lines: lines}
	c.pixel = ebiten.NewImage(1, 1)
	c.pixel.Fill(color.White)
	face := basicfont.Face7x13
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > c.width {
			c.width = w
		}
	}
	return c
}

// Draw renders the caption onto screen.
func (c *Caption) Draw(screen *ebiten.Image) {
	if c == nil || len(c.lines) == 0 {
		return
	}
	w := c.width + 2*captionPadding
	h := len(c.lines)*captionLine + captionPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 24, G: 26, B: 32, A: 200})
	screen.DrawImage(c.pixel, op)

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range c.lines {
		text.Draw(screen, line, face, captionPadding, captionPadding+captionBaseline+i*captionLine, fg)
	}
}
