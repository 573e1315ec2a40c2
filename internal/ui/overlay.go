//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const solvedBanner = "SOLVED - press S for a new board"

// Overlay draws a banner across the board once it is solved.
type Overlay struct {
	face    text.Face
	visible bool
	band    *ebiten.Image
}

// NewOverlay constructs an overlay.
func NewOverlay() *Overlay {
	return &Overlay{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Update toggles the banner from the completion state.
func (o *Overlay) Update(complete bool) { o.visible = complete }

// Draw paints the banner centred over a board of the given width and height.
func (o *Overlay) Draw(screen *ebiten.Image, width, height int) {
	if !o.visible || width <= 0 || height <= 0 {
		return
	}
	const bandHeight = 28
	if o.band == nil || o.band.Bounds().Dx() != width {
		o.band = ebiten.NewImage(width, bandHeight)
		o.band.Fill(color.RGBA{A: 200})
	}
	bop := &ebiten.DrawImageOptions{}
	bop.GeoM.Translate(0, float64(height-bandHeight)/2)
	screen.DrawImage(o.band, bop)

	w, h := text.Measure(solvedBanner, o.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(width)-w)/2, (float64(height)-h)/2)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 220, B: 80, A: 255})
	text.Draw(screen, solvedBanner, o.face, op)
}
