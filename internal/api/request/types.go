package request

import (
	"encoding/json"

	"github.com/sweeplab/minesweeper-go/internal/model"
)

// ElapsedSeconds decodes a client-reported elapsed time leniently:
// non-numeric or negative values become the unknown-time sentinel
// instead of failing the request, so a bad timer report still finishes
// the game (it just lands in the worst reward bucket).
type ElapsedSeconds int

// UnmarshalJSON implements lenient decoding for ElapsedSeconds
func (e *ElapsedSeconds) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err != nil || n < 0 {
		*e = model.ElapsedUnknown
		return nil
	}
	*e = ElapsedSeconds(n)
	return nil
}

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FinishGameRequest is the request body for reporting a won game.
// Time is a pointer so a missing field degrades to the sentinel rather
// than reading as a zero-second clear.
type FinishGameRequest struct {
	Difficulty string          `json:"difficulty"`
	Time       *ElapsedSeconds `json:"time"`
}

// PurchaseSkinRequest is the request body for buying a skin.
// Cost is optional; when present it must match the catalog price.
type PurchaseSkinRequest struct {
	SkinID string `json:"skin_id"`
	Cost   *int   `json:"cost"`
}

// EquipSkinRequest is the request body for equipping an owned skin
type EquipSkinRequest struct {
	SkinID string `json:"skin_id"`
}

// EquipTitleRequest is the request body for equipping an unlocked title
type EquipTitleRequest struct {
	Title string `json:"title"`
}
