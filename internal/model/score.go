package model

import "time"

// Difficulty identifies one of the fixed game configurations
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a raw string to a known difficulty tier.
// ok is false for anything outside the fixed set; callers decide whether
// that is an error (rankings) or a zero-reward passthrough (game finish).
func ParseDifficulty(raw string) (Difficulty, bool) {
	switch d := Difficulty(raw); d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d, true
	default:
		return d, false
	}
}

// ElapsedUnknown is the sentinel elapsed time recorded when the client
// reports a missing, non-numeric or negative time. It lands in the
// worst reward bucket rather than failing the request.
const ElapsedUnknown = 1<<31 - 1

// Score is one finished winning attempt. Immutable once written;
// used only for leaderboard ranking. Username is denormalized so
// rankings never need an account lookup.
type Score struct {
	AccountID   AccountID
	Username    string
	Difficulty  Difficulty
	TimeSeconds int
	RecordedAt  time.Time
}
