package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// basicFontHeight is the pixel height of basicfont.Face7x13.
const basicFontHeight = 13.0

// EbitenSurface draws onto an ebiten image. Bind it to the screen at the
// start of every Draw call.
type EbitenSurface struct {
	target *ebiten.Image
	face   text.Face
}

func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Bind points the surface at dst and returns it.
func (s *EbitenSurface) Bind(dst *ebiten.Image) *EbitenSurface {
	s.target = dst
	return s
}

func (s *EbitenSurface) Size() (float64, float64) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Fill(clr color.Color) {
	if s.target == nil {
		return
	}
	s.target.Fill(clr)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	if s.target == nil || w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(s.target, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color, dash []float64) {
	if s.target == nil {
		return
	}
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return
	}
	ux := (x1 - x0) / length
	uy := (y1 - y0) / length
	for _, seg := range DashSegments(0, length, dash) {
		vector.StrokeLine(s.target,
			float32(x0+ux*seg[0]), float32(y0+uy*seg[0]),
			float32(x0+ux*seg[1]), float32(y0+uy*seg[1]),
			float32(width), clr, false)
	}
}

func (s *EbitenSurface) DrawImage(img *ebiten.Image, x, y, w, h float64) bool {
	if s.target == nil || img == nil {
		return false
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
	return true
}

func (s *EbitenSurface) DrawText(str string, x, y, size float64, fill, outline color.Color, outlineWidth float64) {
	if s.target == nil || str == "" || size <= 0 {
		return
	}
	scale := size / basicFontHeight
	top := y - size

	if outlineWidth > 0 && outline != nil {
		for _, d := range [8][2]float64{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}} {
			s.drawString(str, x+d[0]*outlineWidth, top+d[1]*outlineWidth, scale, outline)
		}
	}
	s.drawString(str, x, top, scale, fill)
}

func (s *EbitenSurface) drawString(str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.target, str, s.face, op)
}
