package model

import "time"

// AccountID uniquely identifies an account across the system
type AccountID string

// DefaultSkin is owned by every account from registration onwards
const DefaultSkin = "default"

// Account is a registered player's persistent profile and wallet
type Account struct {
	ID           AccountID
	Username     string // unique handle, immutable
	Email        string // unique contact address, used for login
	PasswordHash string // bcrypt hash

	Coins        int
	CurrentSkin  string
	OwnedSkins   StringSet
	CurrentTitle string // empty means no title equipped

	UnlockedTitles      StringSet
	AchievementsClaimed StringSet

	GamesPlayed int
	GamesWon    int
	MinesHit    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates an account with registration defaults:
// zero coins, the default skin owned and equipped, no titles, zero stats.
func NewAccount(id AccountID, username, email, passwordHash string, now time.Time) *Account {
	return &Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CurrentSkin:  DefaultSkin,
		OwnedSkins:   StringSet{DefaultSkin},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Clone returns a deep copy of the account. Storage implementations use
// it so a failed mutation never leaves a partially-updated account visible.
func (a *Account) Clone() *Account {
	clone := *a
	clone.OwnedSkins = a.OwnedSkins.Clone()
	clone.UnlockedTitles = a.UnlockedTitles.Clone()
	clone.AchievementsClaimed = a.AchievementsClaimed.Clone()
	return &clone
}
