package race

import (
	"strconv"
	"strings"

	"github.com/milk9111/roadrush/logger"
	"github.com/milk9111/roadrush/prefs"
)

// loadHighScore reads the stored best score. Missing or unreadable values
// count as 0.
func loadHighScore(store prefs.Store, key string, log *logger.Logger) int {
	if store == nil {
		return 0
	}
	raw, ok := store.Get(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		log.Warnf("ignoring unreadable high score %q under %s", raw, key)
		return 0
	}
	return n
}

func saveHighScore(store prefs.Store, key string, score int, log *logger.Logger) {
	if store == nil {
		return
	}
	if err := store.Set(key, strconv.Itoa(score)); err != nil {
		log.Errorf("persist high score %d: %v", score, err)
	}
}
