package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roadrush/logger"
)

func main() {
	prefsPath := flag.String("prefs", "", "prefs file for the local high score (default: user config dir)")
	leaderboardURL := flag.String("leaderboard", os.Getenv("ROADRUSH_LEADERBOARD_URL"), "leaderboard server base URL; empty disables submitting")
	player := flag.String("name", os.Getenv("USER"), "player name used when submitting scores")
	mute := flag.Bool("mute", false, "disable sound")
	watch := flag.Bool("watch", true, "reload prefabs/ when the files change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log := logger.New("roadrush")

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	cfg := gameConfig{
		prefsPath:      *prefsPath,
		leaderboardURL: *leaderboardURL,
		player:         *player,
		mute:           *mute,
		watch:          *watch,
	}
	if err := run(cfg, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg gameConfig, log *logger.Logger) error {
	game, err := NewGame(cfg, log)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Road Rush")

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
