package storage

import (
	"context"

	"github.com/sweeplab/minesweeper-go/internal/model"
)

// Mutate is applied to an account inside UpdateAccount. It may return a
// score to be appended in the same commit (nil for none). Returning an
// error aborts the update with no state change.
type Mutate func(account *model.Account) (*model.Score, error)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)

	// UpdateAccount applies mutate to the account as one atomic
	// read-modify-commit. Concurrent updates to the same account must not
	// interleave, and a failed commit must leave no partial mutation
	// visible. Returns the committed account state.
	UpdateAccount(ctx context.Context, id model.AccountID, mutate Mutate) (*model.Account, error)

	// Score operations
	ScoresByDifficulty(ctx context.Context, difficulty model.Difficulty) ([]*model.Score, error)
}
