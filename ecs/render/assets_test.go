package render

import (
	"errors"
	"image"
	"sync/atomic"
	"testing"

	"github.com/milk9111/roadrush/logger"
)

func TestAssetCacheLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	cache := NewAssetCache(func(id string) (image.Image, error) {
		calls.Add(1)
		return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
	}, logger.Discard())

	for i := 0; i < 5; i++ {
		cache.Request("car1")
	}
	cache.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	if !cache.IsReady("car1") {
		t.Fatalf("expected car1 ready")
	}
	img, ok := cache.Get("car1")
	if !ok || img.Bounds().Dx() != 4 {
		t.Fatalf("unexpected image %v ok=%v", img, ok)
	}
	if err := cache.Failed("car1"); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestAssetCacheFailureIsSticky(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	cache := NewAssetCache(func(id string) (image.Image, error) {
		calls.Add(1)
		return nil, boom
	}, logger.Discard())

	cache.Request("barrel")
	cache.Wait()
	cache.Request("barrel")
	cache.Wait()

	if cache.IsReady("barrel") {
		t.Fatalf("failed asset reported ready")
	}
	if !errors.Is(cache.Failed("barrel"), boom) {
		t.Fatalf("Failed = %v, want %v", cache.Failed("barrel"), boom)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestAssetCacheRecoversLoaderPanic(t *testing.T) {
	cache := NewAssetCache(func(id string) (image.Image, error) {
		panic("bad png")
	}, logger.Discard())
	cache.Request("roadblock")
	cache.Wait()
	if cache.Failed("roadblock") == nil {
		t.Fatalf("expected failure after panic")
	}
}

func TestAssetCacheUnknownID(t *testing.T) {
	cache := NewAssetCache(nil, logger.Discard())
	if cache.IsReady("x") {
		t.Fatalf("unrequested asset reported ready")
	}
	if cache.Failed("x") != nil {
		t.Fatalf("unrequested asset reported failed")
	}
	cache.Request("x")
	cache.Wait()
	if cache.Failed("x") == nil {
		t.Fatalf("nil loader should fail the request")
	}
}

func TestDashSegments(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		dash []float64
		want [][2]float64
	}{
		{name: "solid", a: 0, b: 10, want: [][2]float64{{0, 10}}},
		{name: "even", a: 0, b: 80, dash: []float64{20, 20}, want: [][2]float64{{0, 20}, {40, 60}}},
		{name: "clipped", a: 0, b: 50, dash: []float64{20, 20}, want: [][2]float64{{0, 20}, {40, 50}}},
		{name: "offset start", a: -40, b: 0, dash: []float64{20, 20}, want: [][2]float64{{-40, -20}}},
		{name: "reversed", a: 10, b: 0, want: [][2]float64{{0, 10}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DashSegments(tc.a, tc.b, tc.dash)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("segment %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestRecorderSkipsNilImages(t *testing.T) {
	r := NewRecorder(420, 900)
	if r.DrawImage(nil, 0, 0, 10, 10) {
		t.Fatalf("nil image should not draw")
	}
	if len(r.Ops) != 0 {
		t.Fatalf("expected no ops, got %v", r.Ops)
	}
}
