package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"heaven-through-violence/config"
	"heaven-through-violence/logging"
)

func main() {
	settingsPath := flag.String("settings", "settings.yaml", "path to the settings file (defaults apply if it is missing)")
	viewSprites := flag.Bool("view-sprites", false, "open the sprite sheet viewer instead of the game")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(settings.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)

	if *viewSprites {
		viewer, err := NewSpriteViewer(settings)
		if err != nil {
			logger.Fatal("failed to open sprite viewer", zap.Error(err))
		}
		ebiten.SetWindowTitle(settings.Window.Title + " - Sprite Viewer")
		if err := ebiten.RunGame(viewer); err != nil {
			logger.Fatal("sprite viewer stopped", zap.Error(err))
		}
		return
	}

	game, err := NewGame(settings, logger)
	if err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}

	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetFullscreen(settings.Window.Fullscreen)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}
