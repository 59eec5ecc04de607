package leaderboard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/roadrush/logger"
)

// Publisher receives every successfully saved entry.
type Publisher interface {
	Publish(e Entry)
}

// Service applies ranking on top of a Store. Failures are logged and turned
// into neutral results: writes report Success false, reads report rank 0,
// an empty list or nil.
type Service struct {
	store    Store
	gameType string
	log      *logger.Logger
	feed     Publisher
	now      func() time.Time
}

type ServiceOption func(*Service)

func WithGameType(gameType string) ServiceOption {
	return func(s *Service) {
		if gameType != "" {
			s.gameType = gameType
		}
	}
}

func WithPublisher(p Publisher) ServiceOption {
	return func(s *Service) { s.feed = p }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, log *logger.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		store:    store,
		gameType: DefaultGameType,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GameType() string {
	return s.gameType
}

// SaveScore validates and records a run, then ranks it. Only an invalid
// request returns an error.
func (s *Service) SaveScore(ctx context.Context, req SaveRequest) (SaveResult, error) {
	if err := req.Validate(); err != nil {
		return SaveResult{}, err
	}

	entry := Entry{
		ID:         uuid.NewString(),
		PlayerName: strings.TrimSpace(req.Username),
		Score:      *req.Score,
		UserID:     req.UserID,
		GameType:   s.gameType,
		PlayedAt:   s.now().UTC(),
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		s.log.Errorf("save score for %q: %v", entry.PlayerName, err)
		return SaveResult{Rank: 0, Success: false}, nil
	}

	entry.Rank = s.CalculateRank(ctx, entry.Score)
	s.log.Event("SCORE_SAVED", entry.PlayerName, entry.ID)
	if s.feed != nil {
		s.feed.Publish(entry)
	}
	return SaveResult{Rank: entry.Rank, Success: true, Entry: &entry}, nil
}

// CalculateRank returns 1 + the number of entries scoring strictly higher.
func (s *Service) CalculateRank(ctx context.Context, score int) int {
	n, err := s.store.CountWhere(ctx, Filter{GameType: s.gameType, ScoreAbove: &score})
	if err != nil {
		s.log.Errorf("calculate rank for %d: %v", score, err)
		return 0
	}
	return n + 1
}

// TopScores returns the best entries ranked 1..n.
func (s *Service) TopScores(ctx context.Context, limit int) []Entry {
	entries, err := s.store.QueryTop(ctx, s.gameType, ClampLimit(limit))
	if err != nil {
		s.log.Errorf("fetch leaderboard: %v", err)
		return []Entry{}
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

// PlayerBest returns the player's highest entry, or nil.
func (s *Service) PlayerBest(ctx context.Context, player string) *Entry {
	e, err := s.store.QueryBest(ctx, s.gameType, player)
	if err != nil {
		s.log.Errorf("fetch best score for %q: %v", player, err)
		return nil
	}
	return e
}

// PlayerScores returns every entry of the player, best first.
func (s *Service) PlayerScores(ctx context.Context, player string) []Entry {
	entries, err := s.store.QueryByPlayer(ctx, s.gameType, player)
	if err != nil {
		s.log.Errorf("fetch scores for %q: %v", player, err)
		return []Entry{}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}
