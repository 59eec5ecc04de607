package system

import (
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

// run returns the run singleton, or nil when the world has none.
func run(w *ecs.World) *component.Run {
	e, ok := ecs.First(w, component.RunComponent.Kind())
	if !ok {
		return nil
	}
	r, _ := ecs.Get(w, e, component.RunComponent.Kind())
	return r
}

func running(w *ecs.World) bool {
	r := run(w)
	return r != nil && r.State == component.RunRunning
}

// player returns the player entity and its transform.
func player(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	return e, t, ok
}
