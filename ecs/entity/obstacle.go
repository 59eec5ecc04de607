package entity

import (
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

// NewObstacle creates an obstacle from a catalog entry at (x, y) moving
// down by speed each tick.
func NewObstacle(w *ecs.World, spec prefabs.ObstacleSpec, x, y, speed float64) (ecs.Entity, error) {
	kind, err := component.ParseObstacleKind(spec.Kind)
	if err != nil {
		return 0, err
	}
	return buildEntity(w, "obstacle "+spec.Name,
		add(component.ObstacleComponent, &component.Obstacle{
			Kind:  kind,
			Name:  spec.Name,
			Speed: speed,
		}),
		add(component.TransformComponent, &component.Transform{
			X:      x,
			Y:      y,
			Width:  spec.Width,
			Height: spec.Height,
		}),
		add(component.SpriteComponent, &component.Sprite{
			Asset:    spec.Sprite,
			Fallback: spec.Color.ColorOr(nil),
		}),
	)
}
