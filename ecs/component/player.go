package component

type Player struct {
	MoveSpeed       float64
	PointerSpeed    float64
	PointerDeadZone float64
}

var PlayerComponent = NewComponent[Player]()
