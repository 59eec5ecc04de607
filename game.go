package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/roadrush/assets"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/ecs/render"
	"github.com/milk9111/roadrush/ecs/system"
	"github.com/milk9111/roadrush/leaderboard"
	"github.com/milk9111/roadrush/logger"
	"github.com/milk9111/roadrush/prefabs"
	"github.com/milk9111/roadrush/prefs"
	"github.com/milk9111/roadrush/race"
)

type gameConfig struct {
	prefsPath      string
	leaderboardURL string
	player         string
	mute           bool
	watch          bool
}

type Game struct {
	engine  *race.Engine
	frames  *race.FrameLoop
	surface *render.EbitenSurface
	sprites *render.Sprites
	watcher *prefabs.Watcher
	over    *gameOver
	overUI  *gameOverUI
	log     *logger.Logger

	width, height int
	ended         bool
}

func NewGame(cfg gameConfig, log *logger.Logger) (*Game, error) {
	spec, err := prefabs.LoadRaceSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		frames:  race.NewFrameLoop(),
		surface: render.NewEbitenSurface(),
		sprites: render.NewSprites(render.NewAssetCache(assets.DecodeImage, log)),
		log:     log,
		width:   int(spec.Canvas.Width),
		height:  int(spec.Canvas.Height),
	}
	g.preload(spec)

	g.engine, err = race.NewEngine(spec,
		race.WithLogger(log),
		race.WithPrefs(openPrefs(cfg.prefsPath, log)),
		race.WithFrameScheduler(g.frames),
		race.WithInput(system.EbitenInput{}),
		race.WithImages(g.sprites),
		race.WithAudio(!cfg.mute),
	)
	if err != nil {
		return nil, err
	}

	var submitter ScoreSubmitter
	if cfg.leaderboardURL != "" {
		submitter = leaderboard.NewClient(cfg.leaderboardURL, nil)
	}
	g.over = newGameOver(cfg.player, submitter, copyToClipboard, log)
	g.overUI = newGameOverUI(g.over, g.restart, g.width, g.height)

	g.engine.Subscribe(func(s race.Snapshot) {
		g.ended = s.State == component.RunEnded
		if g.ended {
			g.over.Show(s)
		}
	})

	if cfg.watch {
		if dirs := prefabs.WatchDirs(); len(dirs) > 0 {
			if g.watcher, err = prefabs.NewWatcher(dirs...); err != nil {
				log.Warnf("prefab hot reload disabled: %v", err)
			}
		}
	}

	if err := g.engine.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

func openPrefs(path string, log *logger.Logger) prefs.Store {
	if path == "" {
		p, err := prefs.DefaultPath()
		if err != nil {
			log.Warnf("high score will not be kept: %v", err)
			return prefs.NewMemoryStore()
		}
		path = p
	}
	store, err := prefs.OpenFileStore(path)
	if err != nil {
		log.Warnf("starting with empty prefs: %v", err)
	}
	return store
}

func (g *Game) preload(spec *prefabs.RaceSpec) {
	ids := []string{spec.Player.Sprite}
	for _, ob := range spec.Obstacles {
		ids = append(ids, ob.Sprite)
	}
	g.sprites.Preload(ids...)
}

func (g *Game) restart() {
	if err := g.engine.Start(); err != nil {
		g.log.Errorf("restart: %v", err)
	}
}

func (g *Game) Update() error {
	g.applyReloads()

	if g.ended {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.restart()
		} else {
			g.overUI.Update()
		}
	}

	g.frames.RunPending()
	return nil
}

// applyReloads picks up edited prefab files. Tuning changes wait for the
// next run; a new spawn script takes over immediately.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Events:
			switch change.Kind {
			case prefabs.ChangeSpec:
				spec, err := prefabs.LoadRaceSpec()
				if err != nil {
					g.log.Warnf("reload %s: %v", change.Path, err)
					continue
				}
				if err := g.engine.SetSpec(spec); err != nil {
					g.log.Warnf("reload %s: %v", change.Path, err)
					continue
				}
				g.preload(spec)
				g.log.Infof("reloaded %s, applies from the next run", change.Path)
			case prefabs.ChangeScript:
				g.engine.ReloadSpawnScript()
				g.log.Infof("reloaded %s", change.Path)
			}
		case err := <-g.watcher.Errors:
			g.log.Warnf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Draw(g.surface.Bind(screen))
	if g.ended {
		g.overUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	if err := g.watcher.Close(); err != nil {
		return fmt.Errorf("close prefab watcher: %w", err)
	}
	return nil
}
