//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"lightsout/internal/game"
	"lightsout/internal/render"
	"lightsout/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// Game adapts a puzzle session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session.
func New(session *game.Session, scale int) *Game {
	size := session.Size()
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.Rows, size.Columns),
		hud:      ui.NewHUD(session, hudWidth),
		overlay:  ui.NewOverlay(),
		onColor:  color.RGBA{R: 255, G: 214, B: 64, A: 255},
		offColor: color.RGBA{R: 30, G: 36, B: 52, A: 255},
		scale:    scale,
	}
}

// Reset replaces the board with the layout for seed.
func (g *Game) Reset(seed int64) {
	if err := g.session.Reset(seed); err != nil {
		log.Printf("[app] reset failed: %v", err)
	}
}

// Update handles input and refreshes the HUD.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		size := g.session.Size()
		if row, col, ok := render.CellAt(x, y, g.scale, size.Rows, size.Columns); ok {
			if err := g.session.Activate(row, col); err != nil {
				log.Printf("[app] activate (%d,%d): %v", row, col, err)
			}
		}
	}

	g.hud.Update()
	g.overlay.Update(g.session.Complete())
	return nil
}

// Draw renders the board, the HUD and the solved banner.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.painter.Blit(screen, snap.Cells, g.onColor, g.offColor, g.scale)
	w, h := snap.Columns*g.scale, snap.Rows*g.scale
	g.overlay.Draw(screen, w, h)
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.Columns*g.scale + g.hud.Width(), s.Rows * g.scale
}
