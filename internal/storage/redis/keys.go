package redis

import (
	"fmt"

	"github.com/sweeplab/minesweeper-go/internal/model"
)

// Key prefix for all minesweeper data
const keyPrefix = "msweep"

// accountKey returns the Redis key for an Account
func accountKey(id model.AccountID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> account_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// emailIndexKey returns the Redis key for the email -> account_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// scoresKey returns the Redis key for the per-difficulty score list
func scoresKey(difficulty model.Difficulty) string {
	return fmt.Sprintf("%s:scores:%s", keyPrefix, difficulty)
}
