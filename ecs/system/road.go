package system

import (
	"image/color"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/ecs/render"
	"github.com/milk9111/roadrush/prefabs"
)

var (
	defaultRoadColor  = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	defaultVergeColor = color.NRGBA{R: 0x2d, G: 0x50, B: 0x16, A: 0xff}
)

// RoadSystem scrolls the lane dashes and draws the road.
type RoadSystem struct {
	track  prefabs.TrackSpec
	canvas prefabs.CanvasSpec
}

func NewRoadSystem(track prefabs.TrackSpec, canvas prefabs.CanvasSpec) *RoadSystem {
	return &RoadSystem{track: track, canvas: canvas}
}

func (r *RoadSystem) Update(w *ecs.World) {
	if w == nil || !running(w) {
		return
	}
	ecs.ForEach(w, component.RoadComponent.Kind(), func(_ ecs.Entity, road *component.Road) {
		road.Offset += r.track.ScrollSpeed
		if road.Offset > r.track.ScrollModulus {
			road.Offset = 0
		}
	})
}

func (r *RoadSystem) Draw(w *ecs.World, s render.Surface) {
	width, height := r.canvas.Width, r.canvas.Height
	s.FillRect(0, 0, width, height, r.track.Background.ColorOr(defaultRoadColor))

	verge := r.track.VergeColor.ColorOr(defaultVergeColor)
	if r.track.VergeWidth > 0 {
		s.FillRect(0, 0, r.track.VergeWidth, height, verge)
		s.FillRect(width-r.track.VergeWidth, 0, r.track.VergeWidth, height, verge)
	}

	offset := 0.0
	if e, ok := ecs.First(w, component.RoadComponent.Kind()); ok {
		if road, ok := ecs.Get(w, e, component.RoadComponent.Kind()); ok {
			offset = road.Offset
		}
	}

	pad := r.track.ScrollModulus
	dash := r.track.DashColor.ColorOr(color.White)
	for i := 1; i < r.track.Lanes; i++ {
		x := r.track.Left + float64(i)*r.track.LaneWidth
		s.StrokeLine(x, offset-pad, x, height+pad+offset, r.track.DashWidth, dash, r.track.Dash)
	}
}
