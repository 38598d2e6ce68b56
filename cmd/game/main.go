package main

import (
	"log"
	"time"

	"github.com/Garsondee/DragonFire/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sprites, err := game.LoadSprites()
	if err != nil {
		log.Fatal(err)
	}

	cfg := game.DefaultConfig()
	cfg.DroneWidth, cfg.DroneHeight = sprites.DroneSize()

	g, err := game.New(cfg, sprites, time.Now().UnixNano())
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("DragonFire")
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
