package system

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/roadrush/logger"
	"github.com/milk9111/roadrush/prefabs"
)

// ScriptPicker lets a tengo script choose spawns. The script sees frame,
// lanes, kinds, last_lane and a uniform suggestion in r_kind and r_lane, and
// must leave its choice in kind and lane. Any script failure falls back to
// the suggestion.
type ScriptPicker struct {
	name     string
	compiled *tengo.Compiled
	fallback *RandomPicker
	kinds    []any
	lastLane int
	log      *logger.Logger
	warn     sync.Once
}

// LoadScriptPicker compiles the named script from the prefab scripts.
func LoadScriptPicker(name string, catalog []prefabs.ObstacleSpec, fallback *RandomPicker, log *logger.Logger) (*ScriptPicker, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("spawn script %q: %w", name, err)
	}
	return NewScriptPicker(name, src, catalog, fallback, log)
}

func NewScriptPicker(name string, src []byte, catalog []prefabs.ObstacleSpec, fallback *RandomPicker, log *logger.Logger) (*ScriptPicker, error) {
	if fallback == nil {
		fallback = NewRandomPicker(0)
	}
	kinds := make([]any, 0, len(catalog))
	for _, o := range catalog {
		kinds = append(kinds, o.Kind)
	}

	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("lanes", 0)
	_ = script.Add("kinds", kinds)
	_ = script.Add("last_lane", -1)
	_ = script.Add("r_kind", 0)
	_ = script.Add("r_lane", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn script %q: compile: %w", name, err)
	}

	return &ScriptPicker{
		name:     name,
		compiled: compiled,
		fallback: fallback,
		kinds:    kinds,
		lastLane: -1,
		log:      log,
	}, nil
}

func (p *ScriptPicker) Pick(frame, catalog, lanes int) SpawnChoice {
	suggested := p.fallback.Pick(frame, catalog, lanes)
	choice, err := p.run(frame, lanes, suggested)
	if err != nil {
		p.warn.Do(func() {
			p.log.Warnf("spawn script %q failed, using uniform picks: %v", p.name, err)
		})
		choice = suggested
	}
	choice.Obstacle = wrap(choice.Obstacle, catalog)
	choice.Lane = wrap(choice.Lane, lanes)
	p.lastLane = choice.Lane
	return choice
}

func (p *ScriptPicker) run(frame, lanes int, suggested SpawnChoice) (SpawnChoice, error) {
	set := map[string]any{
		"frame":     frame,
		"lanes":     lanes,
		"last_lane": p.lastLane,
		"r_kind":    suggested.Obstacle,
		"r_lane":    suggested.Lane,
	}
	for k, v := range set {
		if err := p.compiled.Set(k, v); err != nil {
			return SpawnChoice{}, err
		}
	}
	if err := p.compiled.Run(); err != nil {
		return SpawnChoice{}, err
	}

	kind := p.compiled.Get("kind")
	lane := p.compiled.Get("lane")
	if kind.ValueType() != "int" || lane.ValueType() != "int" {
		return SpawnChoice{}, fmt.Errorf("kind and lane must be ints, got %s and %s", kind.ValueType(), lane.ValueType())
	}
	return SpawnChoice{Obstacle: kind.Int(), Lane: lane.Int()}, nil
}
