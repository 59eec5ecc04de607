package leaderboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/milk9111/roadrush/logger"
)

func startHub(t *testing.T, allowedOrigin string) *Hub {
	t.Helper()
	hub := NewHub(logger.Discard(), allowedOrigin)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount = %d, want %d", hub.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcastsSavedScores(t *testing.T) {
	hub := startHub(t, "")
	s := newService(t, WithPublisher(hub))
	srv := newAPIServer(t, s, hub)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)

	res := save(t, s, "ana", 77)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg FeedMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if msg.Type != "score_saved" || msg.Entry.ID != res.Entry.ID || msg.Entry.Score != 77 || msg.Entry.Rank != 1 {
		t.Fatalf("message = %+v", msg)
	}
}

func TestHubUnregistersOnDisconnect(t *testing.T) {
	hub := startHub(t, "")
	srv := newAPIServer(t, newService(t), hub)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	waitForClients(t, hub, 1)
	conn.Close()
	waitForClients(t, hub, 0)
}

func TestHubChecksOrigin(t *testing.T) {
	hub := startHub(t, "https://roadrush.example")
	srv := newAPIServer(t, newService(t), hub)

	tests := []struct {
		origin string
		ok     bool
	}{
		{origin: "https://roadrush.example", ok: true},
		{origin: "https://elsewhere.example", ok: false},
	}
	for _, tt := range tests {
		header := http.Header{"Origin": []string{tt.origin}}
		conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
		if tt.ok {
			if err != nil {
				t.Fatalf("origin %s: Dial: %v", tt.origin, err)
			}
			conn.Close()
			continue
		}
		if err == nil {
			conn.Close()
			t.Fatalf("origin %s: expected rejection", tt.origin)
		}
		if resp == nil || resp.StatusCode != http.StatusForbidden {
			t.Fatalf("origin %s: response = %v, want 403", tt.origin, resp)
		}
	}
}

func TestHubPublishWithoutViewers(t *testing.T) {
	hub := NewHub(logger.Discard(), "")
	// Nothing drains the hub; Publish must still return.
	for i := 0; i < cap(hub.broadcast)+10; i++ {
		hub.Publish(Entry{ID: "x"})
	}
	if len(hub.broadcast) != cap(hub.broadcast) {
		t.Fatalf("queued %d, want %d", len(hub.broadcast), cap(hub.broadcast))
	}
}
