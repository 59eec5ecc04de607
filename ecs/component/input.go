package component

// Input stores per-frame input state for the player. Held directions and the
// pointer may both be active.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Pointer  bool
	PointerX float64
	PointerY float64
}

var InputComponent = NewComponent[Input]()
