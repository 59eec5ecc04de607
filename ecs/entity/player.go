package entity

import (
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

// NewPlayer creates the player car at its start position.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	return buildEntity(w, "player",
		add(component.PlayerTagComponent, &component.PlayerTag{}),
		add(component.PlayerComponent, &component.Player{
			MoveSpeed:       spec.MoveSpeed,
			PointerSpeed:    spec.PointerSpeed,
			PointerDeadZone: spec.PointerDeadZone,
		}),
		add(component.InputComponent, &component.Input{}),
		add(component.TransformComponent, &component.Transform{
			X:      spec.Start.X,
			Y:      spec.Start.Y,
			Width:  spec.Width,
			Height: spec.Height,
		}),
		add(component.SpriteComponent, &component.Sprite{
			Asset:    spec.Sprite,
			Fallback: spec.Color.ColorOr(nil),
		}),
	)
}
