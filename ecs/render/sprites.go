package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprites turns the cache's decoded images into GPU images on first use.
// Call Image only from the draw goroutine.
type Sprites struct {
	cache *AssetCache

	mu     sync.Mutex
	images map[string]*ebiten.Image
}

func NewSprites(cache *AssetCache) *Sprites {
	return &Sprites{cache: cache, images: make(map[string]*ebiten.Image)}
}

// Preload requests every id so loading starts before the first frame.
func (s *Sprites) Preload(ids ...string) {
	for _, id := range ids {
		s.cache.Request(id)
	}
}

func (s *Sprites) Image(id string) (*ebiten.Image, bool) {
	if s == nil || id == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if img, ok := s.images[id]; ok {
		return img, true
	}
	src, ok := s.cache.Get(id)
	if !ok {
		s.cache.Request(id)
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	s.images[id] = img
	return img, true
}
