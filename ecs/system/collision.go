package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roadrush/ecs/component"
)

// Bounds converts a transform into a bounding box. Canvas y grows downward,
// so B holds the top edge and T the bottom edge.
func Bounds(t component.Transform) cp.BB {
	return cp.BB{L: t.X, B: t.Y, R: t.X + t.Width, T: t.Y + t.Height}
}

// Overlaps reports whether two boxes share positive area. Boxes that only
// touch along an edge do not overlap. cp.BB.Intersects counts touching
// boxes, hence the strict comparisons here.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}
