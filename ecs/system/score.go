package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/render"
	"github.com/milk9111/roadrush/prefabs"
)

// ScoreSystem derives the score from the frame counter and draws the HUD.
type ScoreSystem struct {
	framesPerPoint int
	spawner        prefabs.SpawnerSpec
	hud            prefabs.HUDSpec
}

func NewScoreSystem(spec *prefabs.RaceSpec) *ScoreSystem {
	return &ScoreSystem{
		framesPerPoint: spec.Score.FramesPerPoint,
		spawner:        spec.Spawner,
		hud:            spec.HUD,
	}
}

// ScoreAt is the score after frame frames.
func ScoreAt(frame, framesPerPoint int) int {
	return frame / framesPerPoint
}

// DisplaySpeed is the whole-number speed shown in the HUD.
func DisplaySpeed(spawner prefabs.SpawnerSpec, frame int) int {
	return int(math.Floor(SpeedAt(spawner, frame)))
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil || !running(w) {
		return
	}
	r := run(w)
	r.Score = ScoreAt(r.Frame, s.framesPerPoint)
}

func (s *ScoreSystem) Draw(w *ecs.World, surface render.Surface) {
	r := run(w)
	if r == nil {
		return
	}
	fill := s.hud.Fill.ColorOr(color.White)
	outline := s.hud.Outline.ColorOr(color.Black)

	score := s.hud.Score
	surface.DrawText(fmt.Sprintf("Score: %d", r.Score), score.X, score.Y, score.Size, fill, outline, s.hud.OutlineWidth)

	speed := s.hud.Speed
	surface.DrawText(fmt.Sprintf("Speed: %d", DisplaySpeed(s.spawner, r.Frame)), speed.X, speed.Y, speed.Size, fill, outline, s.hud.OutlineWidth)
}
