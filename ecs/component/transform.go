package component

// Transform places an axis-aligned box in canvas units, origin top-left.
type Transform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var TransformComponent = NewComponent[Transform]()
