package progression

import (
	"context"
	"log/slog"

	"github.com/sweeplab/minesweeper-go/internal/dependencies/clock"
	"github.com/sweeplab/minesweeper-go/internal/model"
	"github.com/sweeplab/minesweeper-go/internal/services/reward"
	"github.com/sweeplab/minesweeper-go/internal/storage"
)

// achievementRule grants a one-time coin bonus when total games played
// reaches the threshold
type achievementRule struct {
	ID        string
	Threshold int
	Coins     int
}

var achievementRules = []achievementRule{
	{ID: "play_10", Threshold: 10, Coins: 10},
	{ID: "play_20", Threshold: 20, Coins: 10},
	{ID: "play_50", Threshold: 50, Coins: 20},
	{ID: "play_100", Threshold: 100, Coins: 100},
}

// Clear titles, in ascending rank by win count
type titleRule struct {
	Threshold int
	Title     string
}

var clearTitles = []titleRule{
	{1, "Novice Sweeper"},
	{10, "Apprentice Sweeper"},
	{20, "Veteran Sweeper"},
	{50, "Elite Sweeper"},
	{100, "Legendary Sweeper"},
}

// TitleMineMagnet is unlocked by hitting enough mines rather than winning
const TitleMineMagnet = "Mine Magnet"

const (
	mineMagnetThreshold = 50
	// The top clear title displaces Mine Magnet from this many wins
	magnetOverrideWins = 100
)

// Service applies game results to accounts: lifetime stats, coin
// rewards, achievement and title unlocks, and leaderboard scores.
// Every result commits as a single atomic account update.
type Service struct {
	storage storage.Storage
	rewards *reward.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new progression Service
func New(storage storage.Storage, rewards *reward.Service, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		rewards: rewards,
		clock:   clock,
		logger:  logger,
	}
}

// FinishResult reports the outcome of a won game
type FinishResult struct {
	CoinsEarned int
	TotalCoins  int
	Account     *model.Account
}

// FinishGame records a won game: stats, the game's coin reward, any
// achievement bonuses and title unlocks, and a leaderboard score.
// Unknown difficulties pass through with a zero reward; negative
// elapsed times are treated as the unknown sentinel.
func (s *Service) FinishGame(ctx context.Context, id model.AccountID, difficulty model.Difficulty, elapsedSeconds int) (*FinishResult, error) {
	if elapsedSeconds < 0 {
		elapsedSeconds = model.ElapsedUnknown
	}

	coins := s.rewards.CoinsFor(difficulty, elapsedSeconds)
	now := s.clock.Now()

	account, err := s.storage.UpdateAccount(ctx, id, func(a *model.Account) (*model.Score, error) {
		a.GamesPlayed++
		a.GamesWon++
		a.Coins += coins
		s.applyAchievements(a)
		applyTitles(a)
		a.UpdatedAt = now

		return &model.Score{
			AccountID:   a.ID,
			Username:    a.Username,
			Difficulty:  difficulty,
			TimeSeconds: elapsedSeconds,
			RecordedAt:  now,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("game finished",
		slog.String("account_id", string(id)),
		slog.String("difficulty", string(difficulty)),
		slog.Int("elapsed_seconds", elapsedSeconds),
		slog.Int("coins_earned", coins),
	)

	return &FinishResult{
		CoinsEarned: coins,
		TotalCoins:  account.Coins,
		Account:     account,
	}, nil
}

// FailGame records a lost game: the attempt and the mine hit count, plus
// any unlock evaluation those trigger. No coins and no leaderboard score.
func (s *Service) FailGame(ctx context.Context, id model.AccountID) (*model.Account, error) {
	now := s.clock.Now()

	account, err := s.storage.UpdateAccount(ctx, id, func(a *model.Account) (*model.Score, error) {
		a.GamesPlayed++
		a.MinesHit++
		s.applyAchievements(a)
		applyTitles(a)
		a.UpdatedAt = now
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("game failed",
		slog.String("account_id", string(id)),
		slog.Int("mines_hit", account.MinesHit),
	)

	return account, nil
}

// applyAchievements credits every play-count milestone the account has
// reached but not yet claimed. The claimed set makes re-evaluation with
// unchanged stats a no-op.
func (s *Service) applyAchievements(a *model.Account) {
	for _, rule := range achievementRules {
		if a.GamesPlayed < rule.Threshold || a.AchievementsClaimed.Contains(rule.ID) {
			continue
		}
		a.AchievementsClaimed.Add(rule.ID)
		a.Coins += rule.Coins

		s.logger.Info("achievement claimed",
			slog.String("account_id", string(a.ID)),
			slog.String("achievement", rule.ID),
			slog.Int("bonus", rule.Coins),
		)
	}
}

// applyTitles unlocks every title whose condition is met and re-equips
// the highest clear title. Mine Magnet keeps the slot it was auto-equipped
// into until magnetOverrideWins wins.
func applyTitles(a *model.Account) {
	if a.MinesHit >= mineMagnetThreshold && a.UnlockedTitles.Add(TitleMineMagnet) {
		if a.CurrentTitle == "" {
			a.CurrentTitle = TitleMineMagnet
		}
	}

	var best string
	for _, rule := range clearTitles {
		if a.GamesWon >= rule.Threshold {
			a.UnlockedTitles.Add(rule.Title)
			best = rule.Title
		}
	}
	if best == "" {
		return
	}

	if a.CurrentTitle == TitleMineMagnet && a.GamesWon < magnetOverrideWins {
		return
	}
	a.CurrentTitle = best
}
