package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sweeplab/minesweeper-go/internal/api/handler"
	"github.com/sweeplab/minesweeper-go/internal/api/middleware"
	"github.com/sweeplab/minesweeper-go/internal/services/auth"
	"github.com/sweeplab/minesweeper-go/internal/services/leaderboard"
	"github.com/sweeplab/minesweeper-go/internal/services/progression"
	"github.com/sweeplab/minesweeper-go/internal/services/shop"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	ProgressionService *progression.Service
	ShopService        *shop.Service
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.ProgressionService, cfg.ShopService)
	shopHandler := handler.NewShopHandler(cfg.ShopService)
	rankingsHandler := handler.NewRankingsHandler(cfg.LeaderboardService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for registering/logging in)
	api.HandleFunc("/accounts/register", accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/accounts/login", accountHandler.Login).Methods(http.MethodPost)

	// Protected account routes
	accounts := api.PathPrefix("/accounts").Subrouter()
	accounts.Use(authMiddleware)
	accounts.HandleFunc("/logout", accountHandler.Logout).Methods(http.MethodPost)
	accounts.HandleFunc("/me", accountHandler.GetMe).Methods(http.MethodGet)
	accounts.HandleFunc("/me/achievements", accountHandler.GetAchievements).Methods(http.MethodGet)

	// Game routes (all require auth)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("/finish", gameHandler.Finish).Methods(http.MethodPost)
	games.HandleFunc("/fail", gameHandler.Fail).Methods(http.MethodPost)
	games.HandleFunc("/recover", gameHandler.Recover).Methods(http.MethodPost)

	// Shop routes (all require auth)
	shopRoutes := api.PathPrefix("/shop").Subrouter()
	shopRoutes.Use(authMiddleware)
	shopRoutes.HandleFunc("/skins/purchase", shopHandler.PurchaseSkin).Methods(http.MethodPost)
	shopRoutes.HandleFunc("/skins/equip", shopHandler.EquipSkin).Methods(http.MethodPost)

	// Title routes (require auth)
	titles := api.PathPrefix("/titles").Subrouter()
	titles.Use(authMiddleware)
	titles.HandleFunc("/equip", shopHandler.EquipTitle).Methods(http.MethodPost)

	// Rankings are public
	api.HandleFunc("/rankings/{difficulty}", rankingsHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
