package system

import (
	"math/rand/v2"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/entity"
	"github.com/milk9111/roadrush/logger"
	"github.com/milk9111/roadrush/prefabs"
)

// SpawnChoice selects a catalog entry and a lane for the next obstacle.
type SpawnChoice struct {
	Obstacle int
	Lane     int
}

// SpawnPicker decides what spawns next. catalog and lanes are both > 0 and
// the returned indexes must be in range; out-of-range picks are wrapped.
type SpawnPicker interface {
	Pick(frame, catalog, lanes int) SpawnChoice
}

// RandomPicker picks uniformly over the catalog and the lanes.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker returns a picker seeded with seed, or with a random seed
// when seed is 0.
func NewRandomPicker(seed uint64) *RandomPicker {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *RandomPicker) Pick(_, catalog, lanes int) SpawnChoice {
	return SpawnChoice{Obstacle: p.rng.IntN(catalog), Lane: p.rng.IntN(lanes)}
}

// SpeedAt is the obstacle speed for an obstacle spawned on frame. It grows
// linearly and without bound.
func SpeedAt(spawner prefabs.SpawnerSpec, frame int) float64 {
	return spawner.BaseSpeed * (1 + float64(frame)/spawner.Ramp)
}

type SpawnSystem struct {
	spawner prefabs.SpawnerSpec
	track   prefabs.TrackSpec
	catalog []prefabs.ObstacleSpec
	picker  SpawnPicker
	log     *logger.Logger
}

func NewSpawnSystem(spec *prefabs.RaceSpec, picker SpawnPicker, log *logger.Logger) *SpawnSystem {
	if picker == nil {
		picker = NewRandomPicker(spec.Spawner.Seed)
	}
	return &SpawnSystem{
		spawner: spec.Spawner,
		track:   spec.Track,
		catalog: spec.Obstacles,
		picker:  picker,
		log:     log,
	}
}

// SetPicker replaces the picker used from the next spawn on.
func (s *SpawnSystem) SetPicker(picker SpawnPicker) {
	if picker != nil {
		s.picker = picker
	}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || !running(w) {
		return
	}

	// The spawner owns the frame counter.
	r := run(w)
	r.Frame++
	if r.Frame%s.spawner.Interval != 0 {
		return
	}

	choice := s.picker.Pick(r.Frame, len(s.catalog), s.track.Lanes)
	ob := s.catalog[wrap(choice.Obstacle, len(s.catalog))]
	lane := wrap(choice.Lane, s.track.Lanes)

	x := s.track.LaneX(lane, ob.Width)
	if _, err := entity.NewObstacle(w, ob, x, -ob.Height, SpeedAt(s.spawner, r.Frame)); err != nil {
		s.log.Errorf("spawn %s in lane %d: %v", ob.Name, lane, err)
	}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
