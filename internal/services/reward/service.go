package reward

import (
	"github.com/sweeplab/minesweeper-go/internal/model"
)

// bucket pays coins for any clear at or under MaxSeconds
type bucket struct {
	MaxSeconds int
	Coins      int
}

// rewardCurve is the payout policy for one difficulty: time buckets
// checked in order, then the floor payout for any slower clear
type rewardCurve struct {
	Buckets []bucket
	Floor   int
}

var curves = map[model.Difficulty]rewardCurve{
	model.DifficultyEasy: {
		Buckets: []bucket{{30, 10}, {60, 5}},
		Floor:   1,
	},
	model.DifficultyNormal: {
		Buckets: []bucket{{90, 20}, {180, 10}},
		Floor:   5,
	},
	model.DifficultyHard: {
		Buckets: []bucket{{600, 30}, {900, 15}},
		Floor:   10,
	},
}

// Service computes coin rewards for finished games.
// Pure and deterministic; safe to share.
type Service struct{}

// New creates a new reward Service
func New() *Service {
	return &Service{}
}

// CoinsFor returns the coin reward for clearing the given difficulty in
// elapsedSeconds. Faster clears never pay less than slower ones.
// Unknown difficulties pay nothing.
func (s *Service) CoinsFor(difficulty model.Difficulty, elapsedSeconds int) int {
	curve, ok := curves[difficulty]
	if !ok {
		return 0
	}

	for _, b := range curve.Buckets {
		if elapsedSeconds <= b.MaxSeconds {
			return b.Coins
		}
	}
	return curve.Floor
}
