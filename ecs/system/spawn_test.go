package system

import (
	"testing"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/ecs/entity"
	"github.com/milk9111/roadrush/logger"
	"github.com/milk9111/roadrush/prefabs"
)

func loadSpec(t *testing.T) *prefabs.RaceSpec {
	t.Helper()
	spec, err := prefabs.LoadRaceSpec()
	if err != nil {
		t.Fatalf("LoadRaceSpec: %v", err)
	}
	return spec
}

func TestSpeedAtIsStrictlyIncreasing(t *testing.T) {
	spawner := prefabs.SpawnerSpec{BaseSpeed: 4, Ramp: 1000}
	if SpeedAt(spawner, 0) != 4 || SpeedAt(spawner, 1000) != 8 {
		t.Fatalf("unexpected ramp endpoints %v %v", SpeedAt(spawner, 0), SpeedAt(spawner, 1000))
	}
	prev := SpeedAt(spawner, 0)
	for f := 1; f <= 100_000; f++ {
		s := SpeedAt(spawner, f)
		if s <= prev {
			t.Fatalf("speed did not increase at frame %d: %v <= %v", f, s, prev)
		}
		prev = s
	}
}

func TestScoreAtIsMonotone(t *testing.T) {
	prev := 0
	for f := 0; f < 10_000; f++ {
		s := ScoreAt(f, 10)
		if s < prev || s != f/10 {
			t.Fatalf("ScoreAt(%d) = %d", f, s)
		}
		prev = s
	}
	if DisplaySpeed(prefabs.SpawnerSpec{BaseSpeed: 4, Ramp: 1000}, 999) != 7 {
		t.Fatalf("display speed should floor")
	}
}

func TestRandomPickerInRange(t *testing.T) {
	p := NewRandomPicker(42)
	seenLane := map[int]bool{}
	seenKind := map[int]bool{}
	for i := 0; i < 1000; i++ {
		c := p.Pick(i, 7, 4)
		if c.Obstacle < 0 || c.Obstacle >= 7 || c.Lane < 0 || c.Lane >= 4 {
			t.Fatalf("out of range pick %+v", c)
		}
		seenLane[c.Lane] = true
		seenKind[c.Obstacle] = true
	}
	if len(seenLane) != 4 || len(seenKind) != 7 {
		t.Fatalf("picker not covering the space: lanes %v kinds %v", seenLane, seenKind)
	}

	a, b := NewRandomPicker(9), NewRandomPicker(9)
	for i := 0; i < 20; i++ {
		if a.Pick(i, 7, 4) != b.Pick(i, 7, 4) {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
}

type fixedPicker SpawnChoice

func (f fixedPicker) Pick(int, int, int) SpawnChoice { return SpawnChoice(f) }

func newRunningWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.NewRun(w, component.RunRunning); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestSpawnSystemWrapsPicks(t *testing.T) {
	spec := loadSpec(t)
	spec.Spawner.Interval = 1
	w := newRunningWorld(t)
	s := NewSpawnSystem(spec, fixedPicker{Obstacle: 13, Lane: -1}, logger.Discard())

	s.Update(w)

	var got []*component.Transform
	var kinds []component.ObstacleKind
	ecs.ForEach2(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, ob *component.Obstacle, tr *component.Transform) {
			got = append(got, tr)
			kinds = append(kinds, ob.Kind)
		})
	if len(got) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(got))
	}
	// 13 % 7 = 6 is the roadblock; lane -1 wraps to 3.
	if kinds[0] != component.ObstacleRoadblock || got[0].X != 40+3*90+5 || got[0].Y != -40 {
		t.Fatalf("unexpected spawn %v %+v", kinds[0], got[0])
	}
}

func TestSpawnSystemIdleUnlessRunning(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	if _, err := entity.NewRun(w, component.RunEnded); err != nil {
		t.Fatal(err)
	}
	s := NewSpawnSystem(spec, nil, logger.Discard())
	for i := 0; i < 200; i++ {
		s.Update(w)
	}
	if run(w).Frame != 0 || ecs.Count(w, component.ObstacleComponent.Kind()) != 0 {
		t.Fatalf("spawn system advanced an ended run")
	}
}
