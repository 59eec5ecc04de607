package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

var testArea = prefabs.PlayAreaSpec{MinX: 40, MaxX: 350, MinY: 50, MaxY: 800}

var testPlayer = component.Player{MoveSpeed: 6, PointerSpeed: 8, PointerDeadZone: 10}

func TestSteerKeys(t *testing.T) {
	tests := []struct {
		name  string
		in    component.Input
		wantX float64
		wantY float64
	}{
		{"idle", component.Input{}, 180, 380},
		{"left", component.Input{Left: true}, 174, 380},
		{"right", component.Input{Right: true}, 186, 380},
		{"up", component.Input{Up: true}, 180, 374},
		{"down", component.Input{Down: true}, 180, 386},
		{"left and right cancel", component.Input{Left: true, Right: true}, 180, 380},
		{"pointer right", component.Input{Pointer: true, PointerX: 300, PointerY: 415}, 188, 380},
		{"pointer in dead zone", component.Input{Pointer: true, PointerX: 205, PointerY: 420}, 180, 380},
		{"pointer up left", component.Input{Pointer: true, PointerX: 0, PointerY: 0}, 172, 372},
		{"keys and pointer", component.Input{Left: true, Pointer: true, PointerX: 0, PointerY: 415}, 166, 380},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := box(180, 380, 40, 70)
			Steer(&tr, testPlayer, tc.in, testArea)
			if tr.X != tc.wantX || tr.Y != tc.wantY {
				t.Fatalf("got (%v, %v), want (%v, %v)", tr.X, tr.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestSteerStaysInPlayArea(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tr := box(180, 380, 40, 70)
	for i := 0; i < 5000; i++ {
		in := component.Input{
			Up:       rng.IntN(2) == 0,
			Down:     rng.IntN(3) == 0,
			Left:     rng.IntN(2) == 0,
			Right:    rng.IntN(3) == 0,
			Pointer:  rng.IntN(4) == 0,
			PointerX: rng.Float64()*1000 - 300,
			PointerY: rng.Float64()*2000 - 500,
		}
		Steer(&tr, testPlayer, in, testArea)
		if tr.X < testArea.MinX || tr.X > testArea.MaxX || tr.Y < testArea.MinY || tr.Y > testArea.MaxY {
			t.Fatalf("step %d left the play area: %+v", i, tr)
		}
	}
}
