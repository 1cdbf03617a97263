package response

import (
	"time"

	"github.com/sweeplab/minesweeper-go/internal/model"
	"github.com/sweeplab/minesweeper-go/internal/services/auth"
	"github.com/sweeplab/minesweeper-go/internal/services/leaderboard"
)

// AccountSummary is the profile view returned to the owning player
type AccountSummary struct {
	Username     string   `json:"username"`
	Coins        int      `json:"coins"`
	CurrentSkin  string   `json:"current_skin"`
	OwnedSkins   []string `json:"owned_skins"`
	CurrentTitle string   `json:"current_title"`
}

// AccountSummaryFromModel converts a model.Account to an AccountSummary
func AccountSummaryFromModel(a *model.Account) AccountSummary {
	return AccountSummary{
		Username:     a.Username,
		Coins:        a.Coins,
		CurrentSkin:  a.CurrentSkin,
		OwnedSkins:   a.OwnedSkins,
		CurrentTitle: a.CurrentTitle,
	}
}

// AuthResponse is the response for registration and login
type AuthResponse struct {
	Account      AccountSummary `json:"account"`
	SessionToken string         `json:"session_token"`
}

// AuthResponseFrom builds an AuthResponse from an account and its session
func AuthResponseFrom(a *model.Account, s *auth.Session) AuthResponse {
	return AuthResponse{
		Account:      AccountSummaryFromModel(a),
		SessionToken: s.Token,
	}
}

// Achievements is the progression view: unlocks plus lifetime stats
type Achievements struct {
	UnlockedTitles      []string `json:"unlocked_titles"`
	AchievementsClaimed []string `json:"achievements_claimed"`
	GamesPlayed         int      `json:"games_played"`
	GamesWon            int      `json:"games_won"`
	MinesHit            int      `json:"mines_hit"`
}

// AchievementsFromModel converts a model.Account to its Achievements view
func AchievementsFromModel(a *model.Account) Achievements {
	return Achievements{
		UnlockedTitles:      a.UnlockedTitles,
		AchievementsClaimed: a.AchievementsClaimed,
		GamesPlayed:         a.GamesPlayed,
		GamesWon:            a.GamesWon,
		MinesHit:            a.MinesHit,
	}
}

// FinishGameResponse reports the reward for a won game
type FinishGameResponse struct {
	CoinsEarned int `json:"coins_earned"`
	TotalCoins  int `json:"total_coins"`
}

// FailGameResponse acknowledges a lost game
type FailGameResponse struct {
	Success bool `json:"success"`
}

// BalanceResponse reports a wallet change
type BalanceResponse struct {
	Success    bool `json:"success"`
	NewBalance int  `json:"new_balance"`
}

// EquipResponse acknowledges a cosmetic change
type EquipResponse struct {
	Success bool `json:"success"`
}

// RankingEntry is one row of a difficulty leaderboard
type RankingEntry struct {
	Rank        int       `json:"rank"`
	Username    string    `json:"username"`
	TimeSeconds int       `json:"time_seconds"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// RankingsResponse is a difficulty leaderboard
type RankingsResponse struct {
	Difficulty string         `json:"difficulty"`
	Entries    []RankingEntry `json:"entries"`
}

// RankingsFromEntries converts leaderboard entries, assigning 1-based ranks
func RankingsFromEntries(difficulty model.Difficulty, entries []leaderboard.Entry) RankingsResponse {
	out := make([]RankingEntry, len(entries))
	for i, e := range entries {
		out[i] = RankingEntry{
			Rank:        i + 1,
			Username:    e.Username,
			TimeSeconds: e.TimeSeconds,
			RecordedAt:  e.RecordedAt,
		}
	}
	return RankingsResponse{
		Difficulty: string(difficulty),
		Entries:    out,
	}
}
