package leaderboard

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/sweeplab/minesweeper-go/internal/model"
	"github.com/sweeplab/minesweeper-go/internal/storage"
)

const (
	// DefaultLimit is the ranking size when the caller doesn't ask for one
	DefaultLimit = 10
	// MaxLimit caps how many entries a single request may ask for
	MaxLimit = 100
)

// Entry is one ranked account: its best time for the difficulty and
// when that time was set
type Entry struct {
	Username    string
	TimeSeconds int
	RecordedAt  time.Time
}

// Service resolves per-difficulty best-time rankings.
// Recomputed on every call; no caching.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new leaderboard Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// TopScores returns up to limit accounts ranked by personal-best time,
// fastest first. Each account appears at most once regardless of how
// many scores it has recorded.
func (s *Service) TopScores(ctx context.Context, difficulty model.Difficulty, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	scores, err := s.storage.ScoresByDifficulty(ctx, difficulty)
	if err != nil {
		return nil, err
	}

	// Personal best per account; earliest record wins a time tie
	best := make(map[model.AccountID]*model.Score)
	for _, score := range scores {
		current, ok := best[score.AccountID]
		if !ok || score.TimeSeconds < current.TimeSeconds ||
			(score.TimeSeconds == current.TimeSeconds && score.RecordedAt.Before(current.RecordedAt)) {
			best[score.AccountID] = score
		}
	}

	entries := make([]Entry, 0, len(best))
	for _, score := range best {
		entries = append(entries, Entry{
			Username:    score.Username,
			TimeSeconds: score.TimeSeconds,
			RecordedAt:  score.RecordedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TimeSeconds != entries[j].TimeSeconds {
			return entries[i].TimeSeconds < entries[j].TimeSeconds
		}
		if !entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].RecordedAt.Before(entries[j].RecordedAt)
		}
		return entries[i].Username < entries[j].Username
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
