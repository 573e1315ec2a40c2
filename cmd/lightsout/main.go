//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lightsout/internal/app"
	"lightsout/internal/game"
	"lightsout/internal/settings"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var opts app.Options
	opts.Bind(flag.CommandLine)
	flag.Parse()

	store, err := settings.Open()
	if err != nil {
		log.Printf("[settings] %v (settings will not persist)", err)
	}
	cfg, err := opts.Resolve(store)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	session, err := game.NewSession(cfg)
	if err != nil {
		log.Fatalf("new board: %v", err)
	}

	g := app.New(session, cfg.Scale)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle("Lights Out")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
