// Package race runs one lane-racing session: it owns the world, advances
// it once per frame and keeps the high score.
package race

import (
	"fmt"
	"sync"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/ecs/entity"
	"github.com/milk9111/roadrush/ecs/render"
	"github.com/milk9111/roadrush/ecs/system"
	"github.com/milk9111/roadrush/logger"
	"github.com/milk9111/roadrush/prefabs"
	"github.com/milk9111/roadrush/prefs"
)

// Snapshot is the externally visible run state.
type Snapshot struct {
	State        component.RunState
	Frame        int
	Score        int
	FinalScore   int
	HighScore    int
	NewHighScore bool
	Speed        int
}

// ObstacleView is a read-only copy of one live obstacle.
type ObstacleView struct {
	Name   string
	Kind   component.ObstacleKind
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
}

type Option func(*Engine)

func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithPrefs sets where the high score is read from and written to.
func WithPrefs(store prefs.Store) Option {
	return func(e *Engine) { e.prefs = store }
}

// WithFrameScheduler sets how ticks are re-armed. Without one the engine
// never ticks on its own and Tick must be called directly.
func WithFrameScheduler(frames FrameScheduler) Option {
	return func(e *Engine) { e.frames = frames }
}

// WithPicker overrides the spawn picker built from the spec.
func WithPicker(picker system.SpawnPicker) Option {
	return func(e *Engine) { e.picker = picker }
}

func WithInput(source system.InputSource) Option {
	return func(e *Engine) { e.input = source }
}

func WithImages(images render.ImageSource) Option {
	return func(e *Engine) { e.images = images }
}

// WithAudio loads the sound clips. Leave it off in headless runs.
func WithAudio(enabled bool) Option {
	return func(e *Engine) { e.audio = enabled }
}

type Engine struct {
	log    *logger.Logger
	prefs  prefs.Store
	frames FrameScheduler
	picker system.SpawnPicker
	input  system.InputSource
	images render.ImageSource
	audio  bool

	spec        *prefabs.RaceSpec
	pendingSpec *prefabs.RaceSpec

	world     *ecs.World
	scheduler *ecs.Scheduler
	runEntity ecs.Entity
	player    ecs.Entity

	handle    FrameHandle
	highScore int
	newHigh   bool

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

func NewEngine(spec *prefabs.RaceSpec, opts ...Option) (*Engine, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{spec: spec, subs: make(map[int]func(Snapshot))}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Discard()
	}

	e.highScore = loadHighScore(e.prefs, spec.Score.HighScoreKey, e.log)
	if err := e.build(); err != nil {
		return nil, err
	}
	return e, nil
}

// build creates the world and the systems for e.spec.
func (e *Engine) build() error {
	spec := e.spec
	w := ecs.NewWorld()

	runEntity, err := entity.NewRun(w, component.RunNotStarted)
	if err != nil {
		return fmt.Errorf("race: %w", err)
	}
	playerEntity, err := entity.NewPlayer(w, spec.Player)
	if err != nil {
		return fmt.Errorf("race: %w", err)
	}
	if _, err := entity.NewAudio(w, spec.Audio, e.audio); err != nil {
		e.log.Warnf("audio disabled: %v", err)
		if _, err := entity.NewAudio(w, spec.Audio, false); err != nil {
			return fmt.Errorf("race: %w", err)
		}
	}

	picker := e.picker
	if picker == nil {
		picker = e.scriptPicker()
	}

	e.world = w
	e.runEntity = runEntity
	e.player = playerEntity
	e.scheduler = ecs.NewScheduler(
		system.NewRoadSystem(spec.Track, spec.Canvas),
		system.NewInputSystem(e.input),
		system.NewPlayerControllerSystem(spec.PlayArea),
		system.NewRenderSystem(e.images),
		system.NewSpawnSystem(spec, picker, e.log),
		system.NewObstacleSystem(spec),
		system.NewScoreSystem(spec),
		system.NewAudioSystem(),
	)
	return nil
}

func (e *Engine) scriptPicker() system.SpawnPicker {
	random := system.NewRandomPicker(e.spec.Spawner.Seed)
	name := e.spec.Spawner.Script
	if name == "" {
		return random
	}
	picker, err := system.LoadScriptPicker(name, e.spec.Obstacles, random, e.log)
	if err != nil {
		e.log.Warnf("spawn script disabled: %v", err)
		return random
	}
	return picker
}

// SetSpec replaces the tuning. It takes effect at the next Start.
func (e *Engine) SetSpec(spec *prefabs.RaceSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	e.pendingSpec = spec
	return nil
}

// Spec returns the tuning currently in effect.
func (e *Engine) Spec() *prefabs.RaceSpec {
	return e.spec
}

// Start resets the player, clears obstacles, zeroes the counters and begins
// a run. Starting while a run is in progress restarts it.
func (e *Engine) Start() error {
	e.cancel()

	if e.pendingSpec != nil {
		e.spec, e.pendingSpec = e.pendingSpec, nil
		if err := e.build(); err != nil {
			return err
		}
	}

	w := e.world
	for _, ob := range ecs.Query2(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind()) {
		ecs.DestroyEntity(w, ob)
	}
	if t, ok := ecs.Get(w, e.player, component.TransformComponent.Kind()); ok {
		t.X, t.Y = e.spec.Player.Start.X, e.spec.Player.Start.Y
	}
	if in, ok := ecs.Get(w, e.player, component.InputComponent.Kind()); ok {
		*in = component.Input{}
	}
	if road, ok := ecs.Get(w, e.runEntity, component.RoadComponent.Kind()); ok {
		road.Offset = 0
	}
	w.Events().Drain()

	r := e.run()
	*r = component.Run{State: component.RunRunning}
	e.newHigh = false

	e.notify()
	e.arm()
	return nil
}

// Tick advances the run by one frame. It does nothing unless running.
func (e *Engine) Tick() {
	e.cancel()
	if e.run().State != component.RunRunning {
		return
	}

	e.scheduler.Update(e.world)

	for _, evt := range e.world.Events().Drain() {
		if evt.Type == ecs.EventTypeCollision {
			e.finish()
		}
	}

	if e.run().State == component.RunRunning {
		e.arm()
	}
}

// finish records the final score once the obstacle system has ended the run.
func (e *Engine) finish() {
	r := e.run()
	if r.FinalScore > e.highScore {
		e.highScore = r.FinalScore
		e.newHigh = true
		saveHighScore(e.prefs, e.spec.Score.HighScoreKey, e.highScore, e.log)
	}
	e.log.Infof("run ended at frame %d with score %d (high %d)", r.Frame, r.FinalScore, e.highScore)
	e.notify()
}

// Stop abandons the current run without recording a score.
func (e *Engine) Stop() {
	e.cancel()
	r := e.run()
	if r.State == component.RunNotStarted {
		return
	}
	r.State = component.RunNotStarted
	e.notify()
}

// Draw renders the road, the player, the obstacles and the HUD.
func (e *Engine) Draw(s render.Surface) {
	e.scheduler.Draw(e.world, s)
}

// Subscribe registers fn for every run-state transition and returns a
// function that removes it.
func (e *Engine) Subscribe(fn func(Snapshot)) func() {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		delete(e.subs, id)
	}
}

func (e *Engine) notify() {
	snap := e.Snapshot()
	e.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

func (e *Engine) Snapshot() Snapshot {
	r := e.run()
	return Snapshot{
		State:        r.State,
		Frame:        r.Frame,
		Score:        r.Score,
		FinalScore:   r.FinalScore,
		HighScore:    e.highScore,
		NewHighScore: e.newHigh,
		Speed:        system.DisplaySpeed(e.spec.Spawner, r.Frame),
	}
}

func (e *Engine) HighScore() int {
	return e.highScore
}

// Player returns a copy of the player's box.
func (e *Engine) Player() component.Transform {
	t, _ := ecs.Get(e.world, e.player, component.TransformComponent.Kind())
	if t == nil {
		return component.Transform{}
	}
	return *t
}

// Obstacles returns a copy of every live obstacle, in no particular order.
func (e *Engine) Obstacles() []ObstacleView {
	var out []ObstacleView
	ecs.ForEach2(e.world, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, ob *component.Obstacle, t *component.Transform) {
			out = append(out, ObstacleView{
				Name:   ob.Name,
				Kind:   ob.Kind,
				X:      t.X,
				Y:      t.Y,
				Width:  t.Width,
				Height: t.Height,
				Speed:  ob.Speed,
			})
		})
	return out
}

// PlaceObstacle adds the named catalog obstacle at (x, y) with the given
// speed, outside the regular spawn schedule.
func (e *Engine) PlaceObstacle(name string, x, y, speed float64) error {
	for _, ob := range e.spec.Obstacles {
		if ob.Name == name {
			_, err := entity.NewObstacle(e.world, ob, x, y, speed)
			return err
		}
	}
	return fmt.Errorf("race: no obstacle named %q", name)
}

// SetInput swaps the input source of the running world.
func (e *Engine) SetInput(source system.InputSource) {
	e.input = source
	for _, s := range e.scheduler.Systems() {
		if in, ok := s.(*system.InputSystem); ok {
			in.SetSource(source)
		}
	}
}

// ReloadSpawnScript recompiles the spawn script and hands the new picker to
// the running world. A picker passed with WithPicker is left alone.
func (e *Engine) ReloadSpawnScript() {
	if e.picker != nil {
		return
	}
	picker := e.scriptPicker()
	for _, s := range e.scheduler.Systems() {
		if spawn, ok := s.(*system.SpawnSystem); ok {
			spawn.SetPicker(picker)
		}
	}
}

func (e *Engine) run() *component.Run {
	r, ok := ecs.Get(e.world, e.runEntity, component.RunComponent.Kind())
	if !ok {
		// The run entity is never destroyed; a missing one is a bug.
		panic("race: run state missing")
	}
	return r
}

func (e *Engine) arm() {
	e.cancel()
	if e.frames == nil {
		return
	}
	e.handle = e.frames.RequestFrame(e.Tick)
}

func (e *Engine) cancel() {
	if e.frames != nil && e.handle != 0 {
		e.frames.CancelFrame(e.handle)
	}
	e.handle = 0
}
