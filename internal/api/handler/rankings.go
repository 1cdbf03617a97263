package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sweeplab/minesweeper-go/internal/api/apierr"
	"github.com/sweeplab/minesweeper-go/internal/api/response"
	"github.com/sweeplab/minesweeper-go/internal/model"
	"github.com/sweeplab/minesweeper-go/internal/services/leaderboard"
)

// RankingsHandler handles leaderboard endpoints
type RankingsHandler struct {
	leaderboardService *leaderboard.Service
}

// NewRankingsHandler creates a new rankings handler
func NewRankingsHandler(leaderboardService *leaderboard.Service) *RankingsHandler {
	return &RankingsHandler{
		leaderboardService: leaderboardService,
	}
}

// Get handles GET /api/v1/rankings/{difficulty}
func (h *RankingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	difficulty, ok := model.ParseDifficulty(mux.Vars(r)["difficulty"])
	if !ok {
		WriteError(w, apierr.NewInvalidDifficultyError())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("limit must be an integer"))
			return
		}
		limit = n
	}

	entries, err := h.leaderboardService.TopScores(r.Context(), difficulty, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RankingsFromEntries(difficulty, entries))
}
