package main

import (
	"fmt"

	"github.com/automoto/planetdrop/config"
	"github.com/automoto/planetdrop/fonts"
	"github.com/automoto/planetdrop/scenes"
	"github.com/automoto/planetdrop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	RunE:  runPlay,
}

type Game struct {
	scene *scenes.ArenaScene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps one screen pixel per arena unit, so a window resize is an
// arena resize.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Resize(width, height)
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	if err := systems.InitPersistence("planetdrop"); err != nil {
		logger.Warn("could not initialize persistence", "err", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		logger.Warn("could not parse saved settings", "err", err)
	}

	scene, err := scenes.NewArenaScene(scenes.Options{
		Width:  config.C.Width,
		Height: config.C.Height,
		Seed:   flagSeed,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	scene.ApplySaved(saved)

	ebiten.SetWindowTitle("planetdrop")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Physics.TicksPerSecond)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
