//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"lightsout/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	provider core.ParameterProvider
	width    int
	panel    *ebiten.Image
	face     text.Face
	lines    []string
}

// NewHUD constructs a HUD for the provided parameter source and panel width.
func NewHUD(provider core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{
		provider: provider,
		width:    width,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the displayed parameter values.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	h.lines = formatSnapshot(h.provider.Parameters())
}

// Draw paints the panel starting at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = hudLineHeight
	text.Draw(h.panel, strings.Join(h.lines, "\n"), h.face, op)

	dop := &ebiten.DrawImageOptions{}
	dop.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, dop)
}
