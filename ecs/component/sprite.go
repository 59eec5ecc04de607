package component

import "image/color"

type Sprite struct {
	// Asset is the embedded asset path. Empty means always draw Fallback.
	Asset    string
	Fallback color.Color
}

var SpriteComponent = NewComponent[Sprite]()
