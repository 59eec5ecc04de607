package system

import (
	"image/color"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/ecs/render"
)

var (
	defaultPlayerColor   = color.NRGBA{B: 0xff, A: 0xff}
	defaultObstacleColor = color.NRGBA{R: 0xff, A: 0xff}
)

// RenderSystem draws the player and then every obstacle, substituting a
// filled rectangle for any sprite that has not loaded.
type RenderSystem struct {
	images render.ImageSource
}

func NewRenderSystem(images render.ImageSource) *RenderSystem {
	if images == nil {
		images = render.NoImages{}
	}
	return &RenderSystem{images: images}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, s render.Surface) {
	if r == nil || w == nil {
		return
	}

	if e, t, ok := player(w); ok {
		r.drawSprite(w, s, e, t, defaultPlayerColor)
	}

	obstacleKind := component.ObstacleComponent.Kind()
	transformKind := component.TransformComponent.Kind()
	for _, e := range ecs.Query2(w, obstacleKind, transformKind) {
		t, _ := ecs.Get(w, e, transformKind)
		r.drawSprite(w, s, e, t, defaultObstacleColor)
	}
}

func (r *RenderSystem) drawSprite(w *ecs.World, s render.Surface, e ecs.Entity, t *component.Transform, fallback color.Color) {
	if t == nil {
		return
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if ok {
		if img, ok := r.images.Image(sprite.Asset); ok && s.DrawImage(img, t.X, t.Y, t.Width, t.Height) {
			return
		}
		if sprite.Fallback != nil {
			fallback = sprite.Fallback
		}
	}
	s.FillRect(t.X, t.Y, t.Width, t.Height, fallback)
}
