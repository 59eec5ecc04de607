// Command sprites previews the obstacle catalog and the player car from
// prefabs/race.yaml, drawn at their in-game sizes.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/roadrush/assets"
	"github.com/milk9111/roadrush/ecs/render"
	"github.com/milk9111/roadrush/logger"
	"github.com/milk9111/roadrush/prefabs"
)

const (
	screenWidth  = 512
	screenHeight = 512
	columns      = 4
	cellSize     = 120
)

// cell is one catalog slot: the sprite box centered in a grid square, with
// its label underneath.
type cell struct {
	Name     string
	Sprite   string
	Fallback color.Color
	X, Y     float64
	W, H     float64
	LabelX   float64
	LabelY   float64
}

// layoutCatalog places the player followed by every obstacle on a grid.
func layoutCatalog(spec *prefabs.RaceSpec, cols int, size float64) []cell {
	type item struct {
		name, sprite string
		w, h         float64
		clr          color.Color
	}
	items := []item{{
		name:   "player",
		sprite: spec.Player.Sprite,
		w:      spec.Player.Width,
		h:      spec.Player.Height,
		clr:    spec.Player.Color.ColorOr(color.RGBA{B: 0xff, A: 0xff}),
	}}
	for _, ob := range spec.Obstacles {
		items = append(items, item{
			name:   ob.Name,
			sprite: ob.Sprite,
			w:      ob.Width,
			h:      ob.Height,
			clr:    ob.Color.ColorOr(color.RGBA{R: 0xff, A: 0xff}),
		})
	}

	cells := make([]cell, len(items))
	for i, it := range items {
		left := float64(i%cols) * size
		top := float64(i/cols) * size
		cells[i] = cell{
			Name:     it.name,
			Sprite:   it.sprite,
			Fallback: it.clr,
			X:        left + (size-it.w)/2,
			Y:        top + (size-20-it.h)/2,
			W:        it.w,
			H:        it.h,
			LabelX:   left + 6,
			LabelY:   top + size - 6,
		}
	}
	return cells
}

type previewGame struct {
	cells    []cell
	images   map[string]*ebiten.Image
	surface  *render.EbitenSurface
	selected int
}

func newPreviewGame(spec *prefabs.RaceSpec, log *logger.Logger) *previewGame {
	g := &previewGame{
		cells:   layoutCatalog(spec, columns, cellSize),
		images:  make(map[string]*ebiten.Image),
		surface: render.NewEbitenSurface(),
	}
	for _, c := range g.cells {
		if _, ok := g.images[c.Sprite]; ok || c.Sprite == "" {
			continue
		}
		img, err := assets.LoadImage(c.Sprite)
		if err != nil {
			log.Warnf("%s: %v", c.Name, err)
			continue
		}
		g.images[c.Sprite] = img
	}
	return g
}

func (g *previewGame) Update() error {
	if len(g.cells) == 0 {
		return nil
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.selected = (g.selected + 1) % len(g.cells)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.selected = (g.selected + len(g.cells) - 1) % len(g.cells)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	s := g.surface.Bind(screen)
	s.Fill(color.RGBA{0x44, 0x44, 0x44, 0xff})

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	for i, c := range g.cells {
		if !s.DrawImage(g.images[c.Sprite], c.X, c.Y, c.W, c.H) {
			s.FillRect(c.X, c.Y, c.W, c.H, c.Fallback)
		}
		label := fmt.Sprintf("%s %gx%g", c.Name, c.W, c.H)
		if i == g.selected {
			label = "> " + label
		}
		s.DrawText(label, c.LabelX, c.LabelY, 13, white, nil, 0)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	log := logger.New("sprites")

	spec, err := prefabs.LoadRaceSpec()
	if err != nil {
		log.Errorf("load race spec: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Road Rush sprites")
	if err := ebiten.RunGame(newPreviewGame(spec, log)); err != nil {
		log.Errorf("run: %v", err)
		os.Exit(1)
	}
}
