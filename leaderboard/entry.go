// Package leaderboard stores finished runs and ranks them.
package leaderboard

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultGameType = "racing"
	MaxNameLength   = 32
	DefaultLimit    = 10
	MaxLimit        = 100
)

var ErrInvalidRequest = errors.New("leaderboard: invalid request")

// Entry is one recorded run. Rank is computed on read and never stored.
type Entry struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	UserID     string    `json:"user_id,omitempty"`
	GameType   string    `json:"game_type"`
	PlayedAt   time.Time `json:"played_at"`
	Rank       int       `json:"rank,omitempty"`
}

// SaveRequest is the body of a score submission. Score is a pointer so a
// missing score can be told apart from a zero score.
type SaveRequest struct {
	Username string `json:"username"`
	Score    *int   `json:"score"`
	UserID   string `json:"user_id,omitempty"`
}

func (r SaveRequest) Validate() error {
	name := strings.TrimSpace(r.Username)
	switch {
	case name == "":
		return fmt.Errorf("%w: missing username", ErrInvalidRequest)
	case utf8.RuneCountInString(name) > MaxNameLength:
		return fmt.Errorf("%w: username longer than %d characters", ErrInvalidRequest, MaxNameLength)
	case r.Score == nil:
		return fmt.Errorf("%w: missing score", ErrInvalidRequest)
	case *r.Score < 0:
		return fmt.Errorf("%w: negative score", ErrInvalidRequest)
	}
	return nil
}

// SaveResult reports the outcome of SaveScore. Rank is 0 when unknown.
type SaveResult struct {
	Rank    int    `json:"rank"`
	Success bool   `json:"success"`
	Entry   *Entry `json:"entry,omitempty"`
}

// ClampLimit maps a requested list size into [1, MaxLimit], using
// DefaultLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// IntPtr is a convenience for building a SaveRequest.
func IntPtr(v int) *int {
	return &v
}
