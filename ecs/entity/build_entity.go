package entity

import (
	"fmt"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity) error

// buildEntity creates an entity and runs each builder in order. A failed
// builder destroys the half-built entity.
func buildEntity(w *ecs.World, name string, builders ...componentBuildFn) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build %s: world is nil", name)
	}

	e := ecs.CreateEntity(w)
	for _, build := range builders {
		if err := build(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build %s: %w", name, err)
		}
	}
	return e, nil
}

func add[T any](h component.ComponentHandle[T], value *T) componentBuildFn {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, h.Kind(), value)
	}
}
