package render

import (
	"fmt"
	"image"
	"sync"

	"github.com/milk9111/roadrush/logger"
)

// LoadFunc decodes the image for an asset id. It runs off the game
// goroutine and must not touch the GPU.
type LoadFunc func(id string) (image.Image, error)

type assetState int

const (
	assetLoading assetState = iota
	assetReady
	assetFailed
)

type assetEntry struct {
	state assetState
	img   image.Image
	err   error
}

// AssetCache loads decoded images in the background. Every id is loaded at
// most once; a failed load stays failed.
type AssetCache struct {
	load LoadFunc
	log  *logger.Logger

	mu      sync.RWMutex
	entries map[string]*assetEntry
	wg      sync.WaitGroup
}

func NewAssetCache(load LoadFunc, log *logger.Logger) *AssetCache {
	return &AssetCache{
		load:    load,
		log:     log,
		entries: make(map[string]*assetEntry),
	}
}

// Request starts loading id unless it is already loading or done.
func (c *AssetCache) Request(id string) {
	if c == nil || id == "" {
		return
	}
	c.mu.Lock()
	if _, ok := c.entries[id]; ok {
		c.mu.Unlock()
		return
	}
	c.entries[id] = &assetEntry{state: assetLoading}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		img, err := c.loadSafe(id)
		c.mu.Lock()
		e := c.entries[id]
		if err != nil {
			e.state = assetFailed
			e.err = err
		} else {
			e.state = assetReady
			e.img = img
		}
		c.mu.Unlock()
		if err != nil {
			c.log.Warnf("asset %q unavailable, drawing placeholder: %v", id, err)
		}
	}()
}

func (c *AssetCache) loadSafe(id string) (img image.Image, err error) {
	if c.load == nil {
		return nil, fmt.Errorf("render: no loader for asset %q", id)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render: load %q: %v", id, r)
		}
	}()
	img, err = c.load(id)
	if err == nil && img == nil {
		err = fmt.Errorf("render: load %q: nil image", id)
	}
	return img, err
}

// IsReady reports whether id finished loading successfully.
func (c *AssetCache) IsReady(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Get returns the decoded image for id once it is ready.
func (c *AssetCache) Get(id string) (image.Image, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	if !ok || e.state != assetReady {
		return nil, false
	}
	return e.img, true
}

// Failed returns the load error for id, or nil when it has not failed.
func (c *AssetCache) Failed(id string) error {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.entries[id]; ok && e.state == assetFailed {
		return e.err
	}
	return nil
}

// Wait blocks until every requested load has finished.
func (c *AssetCache) Wait() {
	if c == nil {
		return
	}
	c.wg.Wait()
}
