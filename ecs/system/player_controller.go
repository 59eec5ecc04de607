package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

type PlayerControllerSystem struct {
	area prefabs.PlayAreaSpec
}

func NewPlayerControllerSystem(area prefabs.PlayAreaSpec) *PlayerControllerSystem {
	return &PlayerControllerSystem{area: area}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || !running(w) {
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, pl *component.Player) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			return
		}
		Steer(t, *pl, *input, p.area)
	})
}

// Steer applies one frame of held-direction and pointer movement to t and
// clamps the result into area.
func Steer(t *component.Transform, pl component.Player, in component.Input, area prefabs.PlayAreaSpec) {
	if in.Left {
		t.X -= pl.MoveSpeed
	}
	if in.Right {
		t.X += pl.MoveSpeed
	}
	if in.Up {
		t.Y -= pl.MoveSpeed
	}
	if in.Down {
		t.Y += pl.MoveSpeed
	}

	if in.Pointer {
		center := cp.Vector{X: t.X + t.Width/2, Y: t.Y + t.Height/2}
		d := cp.Vector{X: in.PointerX, Y: in.PointerY}.Sub(center)
		if math.Abs(d.X) > pl.PointerDeadZone {
			t.X += sign(d.X) * pl.PointerSpeed
		}
		if math.Abs(d.Y) > pl.PointerDeadZone {
			t.Y += sign(d.Y) * pl.PointerSpeed
		}
	}

	t.X = cp.Clamp(t.X, area.MinX, area.MaxX)
	t.Y = cp.Clamp(t.Y, area.MinY, area.MaxY)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
