package component

import "fmt"

type ObstacleKind int

const (
	ObstacleCar ObstacleKind = iota
	ObstacleBarrel
	ObstacleRoadblock
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleCar:
		return "car"
	case ObstacleBarrel:
		return "barrel"
	case ObstacleRoadblock:
		return "roadblock"
	default:
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
}

func ParseObstacleKind(s string) (ObstacleKind, error) {
	switch s {
	case "car":
		return ObstacleCar, nil
	case "barrel":
		return ObstacleBarrel, nil
	case "roadblock":
		return ObstacleRoadblock, nil
	}
	return 0, fmt.Errorf("component: unknown obstacle kind %q", s)
}

// Obstacle is a falling hazard. Speed is fixed when it spawns.
type Obstacle struct {
	Kind  ObstacleKind
	Name  string
	Speed float64
}

var ObstacleComponent = NewComponent[Obstacle]()
