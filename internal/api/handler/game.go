package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sweeplab/minesweeper-go/internal/api/middleware"
	"github.com/sweeplab/minesweeper-go/internal/api/request"
	"github.com/sweeplab/minesweeper-go/internal/api/response"
	"github.com/sweeplab/minesweeper-go/internal/model"
	"github.com/sweeplab/minesweeper-go/internal/services/progression"
	"github.com/sweeplab/minesweeper-go/internal/services/shop"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	progressionService *progression.Service
	shopService        *shop.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(progressionService *progression.Service, shopService *shop.Service) *GameHandler {
	return &GameHandler{
		progressionService: progressionService,
		shopService:        shopService,
	}
}

// Finish handles POST /api/v1/games/finish
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.FinishGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// Unknown difficulties flow through with a zero reward; a missing
	// time report degrades to the sentinel rather than failing
	difficulty, _ := model.ParseDifficulty(req.Difficulty)
	elapsed := model.ElapsedUnknown
	if req.Time != nil {
		elapsed = int(*req.Time)
	}

	result, err := h.progressionService.FinishGame(r.Context(), account.ID, difficulty, elapsed)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FinishGameResponse{
		CoinsEarned: result.CoinsEarned,
		TotalCoins:  result.TotalCoins,
	})
}

// Fail handles POST /api/v1/games/fail
func (h *GameHandler) Fail(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	if _, err := h.progressionService.FailGame(r.Context(), account.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FailGameResponse{Success: true})
}

// Recover handles POST /api/v1/games/recover
func (h *GameHandler) Recover(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	updated, err := h.shopService.RecoverGame(r.Context(), account.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BalanceResponse{
		Success:    true,
		NewBalance: updated.Coins,
	})
}
