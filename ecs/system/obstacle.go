package system

import (
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

const crashClip = "crash"

// ObstacleSystem moves obstacles, culls those past the bottom edge and ends
// the run on the first one overlapping the player.
type ObstacleSystem struct {
	height         float64
	framesPerPoint int
}

func NewObstacleSystem(spec *prefabs.RaceSpec) *ObstacleSystem {
	return &ObstacleSystem{height: spec.Canvas.Height, framesPerPoint: spec.Score.FramesPerPoint}
}

func (o *ObstacleSystem) Update(w *ecs.World) {
	if w == nil || !running(w) {
		return
	}
	r := run(w)
	playerEntity, playerTransform, hasPlayer := player(w)

	obstacleKind := component.ObstacleComponent.Kind()
	transformKind := component.TransformComponent.Kind()
	for _, e := range ecs.Query2(w, obstacleKind, transformKind) {
		ob, _ := ecs.Get(w, e, obstacleKind)
		t, _ := ecs.Get(w, e, transformKind)
		if ob == nil || t == nil {
			continue
		}

		t.Y += ob.Speed
		if t.Y > o.height {
			ecs.DestroyEntity(w, e)
			continue
		}

		if !hasPlayer || !Overlaps(Bounds(*playerTransform), Bounds(*t)) {
			continue
		}

		r.State = component.RunEnded
		r.FinalScore = r.Frame / o.framesPerPoint
		r.Score = r.FinalScore
		w.Events().Push(ecs.Event{
			Type: ecs.EventTypeCollision,
			Data: ecs.CollisionEvent{
				Player:   playerEntity,
				Obstacle: e,
				Kind:     ecs.CollisionEventCrash,
				Frame:    r.Frame,
			},
		})
		ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
			a.Request(crashClip)
		})
		return
	}
}
