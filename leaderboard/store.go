package leaderboard

import "context"

// Filter narrows CountWhere. Zero fields do not filter.
type Filter struct {
	GameType   string
	PlayerName string
	// ScoreAbove counts only entries scoring strictly more.
	ScoreAbove *int
}

// Store persists entries. Reads come back ordered by score, highest first,
// earliest run first among equal scores.
type Store interface {
	Insert(ctx context.Context, e Entry) error
	QueryTop(ctx context.Context, gameType string, limit int) ([]Entry, error)
	// QueryBest returns nil and no error when the player has no entries.
	QueryBest(ctx context.Context, gameType, player string) (*Entry, error)
	QueryByPlayer(ctx context.Context, gameType, player string) ([]Entry, error)
	CountWhere(ctx context.Context, f Filter) (int, error)
	Close() error
}
