package leaderboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/milk9111/roadrush/logger"
)

const maxRequestBody = 4 << 10

// API exposes a Service over HTTP.
type API struct {
	service *Service
	hub     *Hub
	logger  *logger.Logger
}

// NewAPI creates the handlers. hub may be nil, in which case /ws is not
// registered.
func NewAPI(service *Service, hub *Hub, log *logger.Logger) *API {
	return &API{service: service, hub: hub, logger: log}
}

// RegisterRoutes sets up the leaderboard API routes.
func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/save-score", a.HandleSaveScore)
	mux.HandleFunc("GET /api/leaderboard", a.HandleLeaderboard)
	mux.HandleFunc("GET /api/players/{name}/best", a.HandlePlayerBest)
	mux.HandleFunc("GET /api/players/{name}/scores", a.HandlePlayerScores)
	if a.hub != nil {
		mux.HandleFunc("GET /ws", a.hub.ServeWS)
	}
}

// HandleSaveScore records a finished run.
// POST /api/save-score {"username": "...", "score": 123}
func (a *API) HandleSaveScore(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		a.logger.Warnf("save-score: decode body: %v", err)
		a.jsonError(w, "Invalid data", http.StatusBadRequest)
		return
	}

	result, err := a.service.SaveScore(r.Context(), req)
	if err != nil {
		a.logger.Warnf("save-score: %v", err)
		a.jsonError(w, "Invalid data", http.StatusBadRequest)
		return
	}
	if !result.Success {
		a.jsonError(w, "Failed to save score", http.StatusInternalServerError)
		return
	}
	a.jsonSuccess(w, result)
}

// HandleLeaderboard lists the best entries.
// GET /api/leaderboard?limit=10
func (a *API) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			a.jsonError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	a.jsonSuccess(w, map[string]any{
		"game_type": a.service.GameType(),
		"entries":   a.service.TopScores(r.Context(), limit),
	})
}

// HandlePlayerBest returns one player's best entry.
func (a *API) HandlePlayerBest(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	best := a.service.PlayerBest(r.Context(), name)
	if best == nil {
		a.jsonError(w, "No scores for player", http.StatusNotFound)
		return
	}
	a.jsonSuccess(w, best)
}

// HandlePlayerScores returns every entry of one player.
func (a *API) HandlePlayerScores(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	a.jsonSuccess(w, map[string]any{
		"player_name": name,
		"entries":     a.service.PlayerScores(r.Context(), name),
	})
}

// jsonError sends an error response.
func (a *API) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// jsonSuccess sends a success response.
func (a *API) jsonSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}
