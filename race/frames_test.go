package race

import "testing"

func TestFrameLoop(t *testing.T) {
	loop := NewFrameLoop()
	var calls []string

	a := loop.RequestFrame(func() { calls = append(calls, "a") })
	b := loop.RequestFrame(func() {
		calls = append(calls, "b")
		loop.RequestFrame(func() { calls = append(calls, "next") })
	})
	c := loop.RequestFrame(func() { calls = append(calls, "c") })
	if a == 0 || a == b || b == c {
		t.Fatalf("handles not unique: %v %v %v", a, b, c)
	}
	loop.CancelFrame(c)

	if ran := loop.RunPending(); ran != 2 {
		t.Fatalf("ran %d callbacks, want 2", ran)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("calls = %v", calls)
	}
	if loop.Pending() != 1 {
		t.Fatalf("callback requested during drain should wait, pending = %d", loop.Pending())
	}
	loop.RunPending()
	if calls[len(calls)-1] != "next" {
		t.Fatalf("calls = %v", calls)
	}

	// Cancelling twice or cancelling a fired handle is harmless.
	loop.CancelFrame(a)
	loop.CancelFrame(c)
	if loop.Pending() != 0 {
		t.Fatalf("pending = %d", loop.Pending())
	}
}
