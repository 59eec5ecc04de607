package system

import (
	"testing"

	"github.com/milk9111/roadrush/logger"
)

func TestScriptPickerUsesScriptChoice(t *testing.T) {
	spec := loadSpec(t)
	src := []byte(`
kind := len(kinds) - 1
lane := (frame / 80) % lanes
`)
	p, err := NewScriptPicker("test", src, spec.Obstacles, NewRandomPicker(1), logger.Discard())
	if err != nil {
		t.Fatalf("NewScriptPicker: %v", err)
	}
	for i, frame := range []int{80, 160, 240, 320, 400} {
		c := p.Pick(frame, len(spec.Obstacles), 4)
		if c.Obstacle != 6 || c.Lane != (i+1)%4 {
			t.Fatalf("frame %d: got %+v", frame, c)
		}
	}
}

func TestScriptPickerFallsBackOnRuntimeError(t *testing.T) {
	spec := loadSpec(t)
	src := []byte(`
kind := r_kind
lane := "left"
`)
	p, err := NewScriptPicker("bad", src, spec.Obstacles, NewRandomPicker(5), logger.Discard())
	if err != nil {
		t.Fatalf("NewScriptPicker: %v", err)
	}
	reference := NewRandomPicker(5)
	for frame := 80; frame < 800; frame += 80 {
		got := p.Pick(frame, 7, 4)
		want := reference.Pick(frame, 7, 4)
		if got != want {
			t.Fatalf("frame %d: got %+v, want uniform fallback %+v", frame, got, want)
		}
	}
}

func TestScriptPickerCompileError(t *testing.T) {
	spec := loadSpec(t)
	if _, err := NewScriptPicker("broken", []byte("kind := ("), spec.Obstacles, nil, logger.Discard()); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestBundledSpawnScript(t *testing.T) {
	spec := loadSpec(t)
	p, err := LoadScriptPicker("spawn.tengo", spec.Obstacles, NewRandomPicker(3), logger.Discard())
	if err != nil {
		t.Fatalf("LoadScriptPicker: %v", err)
	}
	last := -1
	for frame := 80; frame < 8000; frame += 80 {
		c := p.Pick(frame, len(spec.Obstacles), spec.Track.Lanes)
		if c.Lane < 0 || c.Lane >= spec.Track.Lanes || c.Obstacle < 0 || c.Obstacle >= len(spec.Obstacles) {
			t.Fatalf("out of range pick %+v", c)
		}
		if frame > 1600 && c.Lane == last {
			t.Fatalf("frame %d repeated lane %d", frame, c.Lane)
		}
		last = c.Lane
	}
}
