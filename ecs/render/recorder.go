package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // "fill", "rect", "line", "image", "text"
	X, Y  float64
	W, H  float64
	Color color.Color
	Dash  []float64
	Text  string
	Size  float64
}

// Recorder is a headless Surface that keeps the calls it receives, so a
// renderer can be checked without a GPU.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Fill(clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", W: r.Width, H: r.Height, Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color, dash []float64) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x0, Y: y0, W: x1 - x0, H: y1 - y0, Size: width, Color: clr, Dash: append([]float64(nil), dash...)})
}

func (r *Recorder) DrawImage(img *ebiten.Image, x, y, w, h float64) bool {
	if img == nil {
		return false
	}
	r.Ops = append(r.Ops, Op{Kind: "image", X: x, Y: y, W: w, H: h})
	return true
}

func (r *Recorder) DrawText(s string, x, y, size float64, fill, outline color.Color, outlineWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Size: size, Color: fill})
}

// Find returns the recorded ops of the given kind.
func (r *Recorder) Find(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
