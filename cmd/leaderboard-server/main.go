// Command leaderboard-server stores Road Rush scores and serves the
// leaderboard API and live feed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/milk9111/roadrush/config"
	"github.com/milk9111/roadrush/leaderboard"
	"github.com/milk9111/roadrush/logger"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file with ROADRUSH_* settings")
	top := flag.Int("top", 0, "print the top N scores and exit")
	flag.Parse()

	log := logger.New("leaderboard")

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Errorf("load config: %v", err)
		os.Exit(1)
	}

	store, err := leaderboard.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Errorf("open database %s: %v", cfg.DBPath, err)
		os.Exit(1)
	}
	defer store.Close()

	if *top > 0 {
		service := leaderboard.NewService(store, log, leaderboard.WithGameType(cfg.GameType))
		printTop(os.Stdout, service.TopScores(context.Background(), *top), time.Now())
		return
	}

	if err := serve(cfg, store, log); err != nil {
		log.Errorf("server: %v", err)
		os.Exit(1)
	}
}

func serve(cfg config.Server, store leaderboard.Store, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := leaderboard.NewHub(log, cfg.AllowedOrigin)
	go hub.Run(ctx)

	service := leaderboard.NewService(store, log,
		leaderboard.WithGameType(cfg.GameType),
		leaderboard.WithPublisher(hub),
	)

	mux := http.NewServeMux()
	leaderboard.NewAPI(service, hub, log).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (db %s, game type %s)", cfg.Addr, cfg.DBPath, cfg.GameType)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func printTop(w io.Writer, entries []leaderboard.Entry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no scores yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPLAYER\tSCORE\tPLAYED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			humanize.Ordinal(e.Rank),
			e.PlayerName,
			humanize.Comma(int64(e.Score)),
			humanize.RelTime(e.PlayedAt, now, "ago", "from now"),
		)
	}
	tw.Flush()
}
