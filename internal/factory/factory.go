package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/sweeplab/minesweeper-go/internal/dependencies/clock"
	"github.com/sweeplab/minesweeper-go/internal/services/auth"
	"github.com/sweeplab/minesweeper-go/internal/services/leaderboard"
	"github.com/sweeplab/minesweeper-go/internal/services/progression"
	"github.com/sweeplab/minesweeper-go/internal/services/reward"
	"github.com/sweeplab/minesweeper-go/internal/services/shop"
	"github.com/sweeplab/minesweeper-go/internal/storage"
	"github.com/sweeplab/minesweeper-go/internal/storage/memory"
	redisstorage "github.com/sweeplab/minesweeper-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService        *auth.Service
	RewardService      *reward.Service
	ProgressionService *progression.Service
	ShopService        *shop.Service
	LeaderboardService *leaderboard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	// Create services
	authService := auth.New(store, clk, authCfg, logger)
	rewardService := reward.New()
	progressionService := progression.New(store, rewardService, clk, logger)
	shopService := shop.New(store, shop.DefaultCatalog, clk, logger)
	leaderboardService := leaderboard.New(store, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		AuthService:        authService,
		RewardService:      rewardService,
		ProgressionService: progressionService,
		ShopService:        shopService,
		LeaderboardService: leaderboardService,
	}
}
