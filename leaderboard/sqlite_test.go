package leaderboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func openStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "leaderboard.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func entry(id, player string, score int, at time.Duration) Entry {
	return Entry{ID: id, PlayerName: player, Score: score, GameType: DefaultGameType, PlayedAt: epoch.Add(at)}
}

func insertAll(t *testing.T, store Store, entries ...Entry) {
	t.Helper()
	for _, e := range entries {
		if err := store.Insert(context.Background(), e); err != nil {
			t.Fatalf("Insert(%s): %v", e.ID, err)
		}
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSQLiteQueryTopOrder(t *testing.T) {
	store := openStore(t)
	insertAll(t, store,
		entry("a", "ana", 50, 0),
		entry("b", "bo", 70, time.Second),
		entry("c", "cy", 50, -time.Second),
		entry("d", "di", 10, 500*time.Millisecond),
		Entry{ID: "x", PlayerName: "ana", Score: 999, GameType: "other", PlayedAt: epoch},
	)

	tests := []struct {
		limit int
		want  []string
	}{
		{limit: 10, want: []string{"b", "c", "a", "d"}},
		{limit: 2, want: []string{"b", "c"}},
		{limit: 1, want: []string{"b"}},
	}
	for _, tt := range tests {
		got, err := store.QueryTop(context.Background(), DefaultGameType, tt.limit)
		if err != nil {
			t.Fatalf("QueryTop(%d): %v", tt.limit, err)
		}
		if !sameIDs(ids(got), tt.want) {
			t.Fatalf("QueryTop(%d) = %v, want %v", tt.limit, ids(got), tt.want)
		}
	}
}

func TestSQLiteRoundTripsFields(t *testing.T) {
	store := openStore(t)
	want := Entry{ID: "a", PlayerName: "ana", Score: 42, UserID: "u-1", GameType: DefaultGameType, PlayedAt: epoch.Add(123456789)}
	insertAll(t, store, want, entry("b", "bo", 1, 0))

	got, err := store.QueryTop(context.Background(), DefaultGameType, 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("QueryTop = %v, %v", got, err)
	}
	g := got[0]
	if g.ID != want.ID || g.PlayerName != want.PlayerName || g.Score != want.Score ||
		g.UserID != want.UserID || g.GameType != want.GameType || !g.PlayedAt.Equal(want.PlayedAt) {
		t.Fatalf("entry = %+v, want %+v", got[0], want)
	}

	all, _ := store.QueryTop(context.Background(), DefaultGameType, 10)
	if all[1].UserID != "" {
		t.Fatalf("user id without value = %q", all[1].UserID)
	}
}

func TestSQLitePlayerQueries(t *testing.T) {
	store := openStore(t)
	insertAll(t, store,
		entry("a", "ana", 30, 0),
		entry("b", "ana", 80, time.Second),
		entry("c", "bo", 90, 0),
		entry("d", "ana", 55, 2*time.Second),
	)
	ctx := context.Background()

	best, err := store.QueryBest(ctx, DefaultGameType, "ana")
	if err != nil || best == nil || best.ID != "b" {
		t.Fatalf("QueryBest(ana) = %+v, %v", best, err)
	}
	none, err := store.QueryBest(ctx, DefaultGameType, "nobody")
	if err != nil || none != nil {
		t.Fatalf("QueryBest(nobody) = %+v, %v, want nil, nil", none, err)
	}

	scores, err := store.QueryByPlayer(ctx, DefaultGameType, "ana")
	if err != nil {
		t.Fatalf("QueryByPlayer: %v", err)
	}
	if want := []string{"b", "d", "a"}; !sameIDs(ids(scores), want) {
		t.Fatalf("QueryByPlayer = %v, want %v", ids(scores), want)
	}
}

func TestSQLiteCountWhere(t *testing.T) {
	store := openStore(t)
	insertAll(t, store,
		entry("a", "ana", 30, 0),
		entry("b", "ana", 80, 0),
		entry("c", "bo", 90, 0),
		Entry{ID: "x", PlayerName: "ana", Score: 999, GameType: "other", PlayedAt: epoch},
	)
	above := func(v int) *int { return &v }

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "everything", filter: Filter{}, want: 4},
		{name: "game type", filter: Filter{GameType: DefaultGameType}, want: 3},
		{name: "player", filter: Filter{GameType: DefaultGameType, PlayerName: "ana"}, want: 2},
		{name: "strictly above", filter: Filter{GameType: DefaultGameType, ScoreAbove: above(80)}, want: 1},
		{name: "above everything", filter: Filter{GameType: DefaultGameType, ScoreAbove: above(90)}, want: 0},
		{name: "all filters", filter: Filter{GameType: DefaultGameType, PlayerName: "ana", ScoreAbove: above(29)}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.CountWhere(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("CountWhere: %v", err)
			}
			if got != tt.want {
				t.Fatalf("CountWhere = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSQLiteDuplicateIDFails(t *testing.T) {
	store := openStore(t)
	insertAll(t, store, entry("a", "ana", 1, 0))
	if err := store.Insert(context.Background(), entry("a", "bo", 2, 0)); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	insertAll(t, store, entry("a", "ana", 12, 0))
	store.Close()

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	n, err := reopened.CountWhere(context.Background(), Filter{})
	if err != nil || n != 1 {
		t.Fatalf("CountWhere after reopen = %d, %v", n, err)
	}
}

func TestSQLiteInMemory(t *testing.T) {
	store, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite(:memory:): %v", err)
	}
	defer store.Close()
	insertAll(t, store, entry("a", "ana", 12, 0))
	got, err := store.QueryTop(context.Background(), DefaultGameType, 5)
	if err != nil || len(got) != 1 {
		t.Fatalf("QueryTop = %v, %v", got, err)
	}
}
