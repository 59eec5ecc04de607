package component

type RunState int

const (
	RunNotStarted RunState = iota
	RunRunning
	RunEnded
)

func (s RunState) String() string {
	switch s {
	case RunNotStarted:
		return "not-started"
	case RunRunning:
		return "running"
	case RunEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Run is the singleton holding the frame counter and run state.
type Run struct {
	State RunState
	Frame int
	Score int
	// FinalScore is captured on the tick the run ends.
	FinalScore int
}

var RunComponent = NewComponent[Run]()

// Road is the singleton scroll offset of the lane dashes.
type Road struct {
	Offset float64
}

var RoadComponent = NewComponent[Road]()
