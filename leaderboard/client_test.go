package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/milk9111/roadrush/logger"
)

func TestClientSaveAndList(t *testing.T) {
	srv := newAPIServer(t, newService(t), nil)
	c := NewClient(srv.URL+"/", nil)
	ctx := context.Background()

	for i, score := range []int{40, 90, 10} {
		res, err := c.SaveScore(ctx, SaveRequest{Username: string(rune('a' + i)), Score: IntPtr(score)})
		if err != nil || !res.Success {
			t.Fatalf("SaveScore(%d) = %+v, %v", score, res, err)
		}
	}
	res, err := c.SaveScore(ctx, SaveRequest{Username: "dee", Score: IntPtr(50)})
	if err != nil || res.Rank != 2 {
		t.Fatalf("SaveScore(50) = %+v, %v, want rank 2", res, err)
	}

	top, err := c.TopScores(ctx, 3)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	want := []int{90, 50, 40}
	if len(top) != len(want) {
		t.Fatalf("len(TopScores) = %d, want %d", len(top), len(want))
	}
	for i, e := range top {
		if e.Score != want[i] || e.Rank != i+1 {
			t.Fatalf("top[%d] = %+v", i, e)
		}
	}
}

func TestClientRejectsInvalidLocally(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", nil)
	_, err := c.SaveScore(context.Background(), SaveRequest{Username: "ana"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestClientServerFailure(t *testing.T) {
	srv := newAPIServer(t, NewService(&brokenStore{}, logger.Discard()), nil)
	c := NewClient(srv.URL, srv.Client())

	_, err := c.SaveScore(context.Background(), SaveRequest{Username: "ana", Score: IntPtr(3)})
	if err == nil || errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want a server error", err)
	}

	top, err := c.TopScores(context.Background(), 5)
	if err != nil || len(top) != 0 {
		t.Fatalf("TopScores = %v, %v, want empty", top, err)
	}
}

func TestClientUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.TopScores(ctx, 5); err == nil {
		t.Fatalf("expected an error")
	}
}
