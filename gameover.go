package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/milk9111/roadrush/leaderboard"
	"github.com/milk9111/roadrush/logger"
	"github.com/milk9111/roadrush/race"
)

// ScoreSubmitter saves a finished run somewhere shared.
type ScoreSubmitter interface {
	SaveScore(ctx context.Context, req leaderboard.SaveRequest) (leaderboard.SaveResult, error)
}

const submitTimeout = 5 * time.Second

type submitState int

const (
	submitIdle submitState = iota
	submitPending
	submitDone
	submitFailed
)

type submitOutcome struct {
	run    int
	result leaderboard.SaveResult
	err    error
}

// gameOver is the state behind the end-of-run overlay. Submissions run on
// their own goroutine and report back through results, which Poll drains
// on the game goroutine.
type gameOver struct {
	player    string
	submitter ScoreSubmitter
	copyText  func(string) error
	log       *logger.Logger

	snap    race.Snapshot
	run     int
	state   submitState
	status  string
	results chan submitOutcome
}

func newGameOver(player string, submitter ScoreSubmitter, copyText func(string) error, log *logger.Logger) *gameOver {
	return &gameOver{
		player:    strings.TrimSpace(player),
		submitter: submitter,
		copyText:  copyText,
		log:       log,
		results:   make(chan submitOutcome, 4),
	}
}

// Show prepares the overlay for a run that just ended.
func (g *gameOver) Show(snap race.Snapshot) {
	g.snap = snap
	g.run++
	g.state = submitIdle
	g.status = ""
}

func (g *gameOver) ScoreLine() string {
	return fmt.Sprintf("Score: %d", g.snap.FinalScore)
}

func (g *gameOver) HighScoreLine() string {
	if g.snap.NewHighScore {
		return "New High Score!"
	}
	return fmt.Sprintf("High Score: %d", g.snap.HighScore)
}

func (g *gameOver) Status() string {
	return g.status
}

// CanSubmit is false while a submission is in flight or after it succeeded.
func (g *gameOver) CanSubmit() bool {
	return g.state == submitIdle || g.state == submitFailed
}

// Submit saves the final score in the background. A run is submitted at
// most once; a failed attempt may be retried.
func (g *gameOver) Submit() {
	if !g.CanSubmit() {
		return
	}
	if g.submitter == nil {
		g.status = "Leaderboard offline"
		return
	}
	g.state = submitPending
	g.status = "Submitting..."

	req := leaderboard.SaveRequest{Username: g.player, Score: leaderboard.IntPtr(g.snap.FinalScore)}
	run := g.run
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		res, err := g.submitter.SaveScore(ctx, req)
		g.results <- submitOutcome{run: run, result: res, err: err}
	}()
}

// Poll applies finished submissions. Results for an earlier run are
// dropped.
func (g *gameOver) Poll() {
	for {
		select {
		case out := <-g.results:
			if out.run != g.run || g.state != submitPending {
				continue
			}
			g.apply(out)
		default:
			return
		}
	}
}

func (g *gameOver) apply(out submitOutcome) {
	switch {
	case errors.Is(out.err, leaderboard.ErrInvalidRequest):
		g.state = submitFailed
		g.status = "Set a player name with -name"
		g.log.Warnf("score rejected: %v", out.err)
	case out.err != nil:
		g.state = submitFailed
		g.status = "Could not reach leaderboard"
		g.log.Warnf("submit score: %v", out.err)
	case !out.result.Success:
		g.state = submitFailed
		g.status = "Could not save score"
	case out.result.Rank > 0:
		g.state = submitDone
		g.status = fmt.Sprintf("Ranked %s!", humanize.Ordinal(out.result.Rank))
	default:
		g.state = submitDone
		g.status = "Score saved"
	}
}

// Copy puts a shareable line with the final score on the clipboard.
func (g *gameOver) Copy() {
	if g.copyText == nil {
		g.status = "Clipboard unavailable"
		return
	}
	line := fmt.Sprintf("I scored %s in Road Rush!", humanize.Comma(int64(g.snap.FinalScore)))
	if err := g.copyText(line); err != nil {
		g.log.Warnf("copy score: %v", err)
		g.status = "Clipboard unavailable"
		return
	}
	g.status = "Copied to clipboard"
}
