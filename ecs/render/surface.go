package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the 2D drawing contract the race renderer targets. Coordinates
// are logical units with the origin at the top-left corner.
type Surface interface {
	// Size reports the logical dimensions of the surface.
	Size() (width, height float64)
	Fill(clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	// StrokeLine draws a line. A non-empty dash slice alternates on and off
	// lengths, as a canvas line dash does.
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color, dash []float64)
	// DrawImage stretches img into the rectangle. It reports false and draws
	// nothing when img is nil.
	DrawImage(img *ebiten.Image, x, y, w, h float64) bool
	// DrawText draws s with its top-left corner near (x, y-size), the way a
	// canvas fillText treats y as the baseline, with an outline when
	// outlineWidth > 0.
	DrawText(s string, x, y, size float64, fill, outline color.Color, outlineWidth float64)
}

// ImageSource resolves sprite ids to drawable images. It returns false when
// the image is not loaded (yet, or ever).
type ImageSource interface {
	Image(id string) (*ebiten.Image, bool)
}

// NoImages is an ImageSource that never has anything, forcing fallback
// rectangles everywhere.
type NoImages struct{}

func (NoImages) Image(string) (*ebiten.Image, bool) { return nil, false }

// DashSegments splits the line from a to b (a scalar span) into the "on"
// pieces of the dash pattern. With an empty pattern the whole span is
// returned.
func DashSegments(a, b float64, dash []float64) [][2]float64 {
	if b < a {
		a, b = b, a
	}
	if len(dash) == 0 {
		return [][2]float64{{a, b}}
	}
	total := 0.0
	for _, d := range dash {
		if d < 0 {
			return [][2]float64{{a, b}}
		}
		total += d
	}
	if total <= 0 {
		return [][2]float64{{a, b}}
	}

	var out [][2]float64
	pos := a
	for i := 0; pos < b; i++ {
		length := dash[i%len(dash)]
		end := pos + length
		if end > b {
			end = b
		}
		if i%2 == 0 && end > pos {
			out = append(out, [2]float64{pos, end})
		}
		pos += length
	}
	return out
}
