package ecs

import "github.com/milk9111/roadrush/ecs/render"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// RenderSystem draws world state onto a surface.
type RenderSystem interface {
	Draw(w *World, s render.Surface)
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Draw calls every render-capable system in order.
func (s *Scheduler) Draw(w *World, surface render.Surface) {
	if w == nil || surface == nil {
		return
	}
	for _, system := range s.systems {
		if rs, ok := system.(RenderSystem); ok {
			rs.Draw(w, surface)
		}
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
