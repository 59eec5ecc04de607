package ecs

import "github.com/milk9111/roadrush/ecs/component"

// ForEach calls fn for every entity carrying kind. The entity list is
// snapshotted first, so fn may add, remove or destroy freely; entities
// destroyed earlier in the same pass are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.store(kind.ID(), false).Entities() {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range Query2(w, ka, kb) {
		a, aok := Get(w, e, ka)
		b, bok := Get(w, e, kb)
		if aok && bok {
			fn(e, a, b)
		}
	}
}

// Query2 returns the entities carrying both kinds, iterating the smaller set.
func Query2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B]) []Entity {
	if w == nil {
		return nil
	}
	a := w.store(ka.ID(), false)
	b := w.store(kb.ID(), false)
	if a.Len() == 0 || b.Len() == 0 {
		return nil
	}
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]Entity, 0, a.Len())
	for _, e := range a.Entities() {
		if b.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity carrying kind. Used for singletons such as
// the player or the run state.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	set := w.store(kind.ID(), false)
	if set.Len() == 0 {
		return 0, false
	}
	return set.denseEntities[0], true
}

// Count returns how many entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}
