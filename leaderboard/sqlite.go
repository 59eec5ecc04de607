package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a Store backed by a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and its schema. The
// special path ":memory:" gives a private in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("leaderboard: create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: open sqlite: %w", err)
	}
	// ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: ping sqlite: %w", err)
	}
	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: create schemas: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS leaderboard (
			id TEXT PRIMARY KEY,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			user_id TEXT,
			game_type TEXT NOT NULL,
			played_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_game_score ON leaderboard(game_type, score DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_player ON leaderboard(game_type, player_name);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Insert(ctx context.Context, e Entry) error {
	var userID sql.NullString
	if e.UserID != "" {
		userID = sql.NullString{String: e.UserID, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leaderboard (id, player_name, score, user_id, game_type, played_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.PlayerName, e.Score, userID, e.GameType, e.PlayedAt.UTC().Format(playedAtLayout))
	if err != nil {
		return fmt.Errorf("leaderboard: insert: %w", err)
	}
	return nil
}

// playedAtLayout is fixed width so played_at sorts as text.
const playedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const selectEntry = `SELECT id, player_name, score, user_id, game_type, played_at FROM leaderboard`

const orderByRank = ` ORDER BY score DESC, played_at ASC, id ASC`

func (s *SQLiteStore) QueryTop(ctx context.Context, gameType string, limit int) ([]Entry, error) {
	return s.query(ctx, selectEntry+` WHERE game_type = ?`+orderByRank+` LIMIT ?`, gameType, limit)
}

func (s *SQLiteStore) QueryBest(ctx context.Context, gameType, player string) (*Entry, error) {
	entries, err := s.query(ctx, selectEntry+` WHERE game_type = ? AND player_name = ?`+orderByRank+` LIMIT 1`, gameType, player)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[0], nil
}

func (s *SQLiteStore) QueryByPlayer(ctx context.Context, gameType, player string) ([]Entry, error) {
	return s.query(ctx, selectEntry+` WHERE game_type = ? AND player_name = ?`+orderByRank, gameType, player)
}

func (s *SQLiteStore) CountWhere(ctx context.Context, f Filter) (int, error) {
	var (
		where []string
		args  []any
	)
	if f.GameType != "" {
		where = append(where, "game_type = ?")
		args = append(args, f.GameType)
	}
	if f.PlayerName != "" {
		where = append(where, "player_name = ?")
		args = append(args, f.PlayerName)
	}
	if f.ScoreAbove != nil {
		where = append(where, "score > ?")
		args = append(args, *f.ScoreAbove)
	}

	query := `SELECT COUNT(*) FROM leaderboard`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("leaderboard: count: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e        Entry
			userID   sql.NullString
			playedAt string
		)
		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Score, &userID, &e.GameType, &playedAt); err != nil {
			return nil, fmt.Errorf("leaderboard: scan: %w", err)
		}
		e.UserID = userID.String
		if e.PlayedAt, err = time.Parse(time.RFC3339Nano, playedAt); err != nil {
			return nil, fmt.Errorf("leaderboard: entry %s: bad played_at: %w", e.ID, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard: rows: %w", err)
	}
	return out, nil
}
