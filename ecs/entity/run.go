package entity

import (
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

// NewRun creates the singleton holding the run state and road scroll.
func NewRun(w *ecs.World, state component.RunState) (ecs.Entity, error) {
	return buildEntity(w, "run",
		add(component.RunComponent, &component.Run{State: state}),
		add(component.RoadComponent, &component.Road{}),
	)
}
