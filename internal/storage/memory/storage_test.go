package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sweeplab/minesweeper-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newAccount(id model.AccountID) *model.Account {
	return model.NewAccount(id, "user-"+string(id), string(id)+"@example.com", "hash", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := s.newAccount("a1")

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(account.ID, retrieved.ID)
	s.Equal(account.Username, retrieved.Username)
	s.Equal(account.OwnedSkins, retrieved.OwnedSkins)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGetAccountByUsername() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	retrieved, err := s.storage.GetAccountByUsername(s.ctx, "user-a1")
	s.Require().NoError(err)
	s.Equal(model.AccountID("a1"), retrieved.ID)

	_, err = s.storage.GetAccountByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGetAccountByEmail() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "a1@example.com")
	s.Require().NoError(err)
	s.Equal(model.AccountID("a1"), retrieved.ID)

	_, err = s.storage.GetAccountByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGetReturnsIndependentCopy() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	first, _ := s.storage.GetAccount(s.ctx, "a1")
	first.Coins = 999
	first.OwnedSkins.Add("stolen")

	second, _ := s.storage.GetAccount(s.ctx, "a1")
	s.Equal(0, second.Coins)
	s.False(second.OwnedSkins.Contains("stolen"))
}

// UpdateAccount tests

func (s *StorageSuite) TestUpdateAccountCommitsMutation() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	updated, err := s.storage.UpdateAccount(s.ctx, "a1", func(a *model.Account) (*model.Score, error) {
		a.Coins += 10
		a.GamesPlayed++
		return nil, nil
	})
	s.Require().NoError(err)
	s.Equal(10, updated.Coins)

	stored, _ := s.storage.GetAccount(s.ctx, "a1")
	s.Equal(10, stored.Coins)
	s.Equal(1, stored.GamesPlayed)
}

func (s *StorageSuite) TestUpdateAccountRollsBackOnError() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	boom := errors.New("boom")
	_, err := s.storage.UpdateAccount(s.ctx, "a1", func(a *model.Account) (*model.Score, error) {
		a.Coins = 999
		a.OwnedSkins.Add("midnight")
		return nil, boom
	})
	s.ErrorIs(err, boom)

	stored, _ := s.storage.GetAccount(s.ctx, "a1")
	s.Equal(0, stored.Coins)
	s.False(stored.OwnedSkins.Contains("midnight"))
}

func (s *StorageSuite) TestUpdateAccountNotFound() {
	_, err := s.storage.UpdateAccount(s.ctx, "nope", func(a *model.Account) (*model.Score, error) {
		return nil, nil
	})
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestUpdateAccountAppendsScore() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	_, err := s.storage.UpdateAccount(s.ctx, "a1", func(a *model.Account) (*model.Score, error) {
		a.GamesWon++
		return &model.Score{
			AccountID:   a.ID,
			Username:    a.Username,
			Difficulty:  model.DifficultyEasy,
			TimeSeconds: 42,
			RecordedAt:  now,
		}, nil
	})
	s.Require().NoError(err)

	scores, err := s.storage.ScoresByDifficulty(s.ctx, model.DifficultyEasy)
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(42, scores[0].TimeSeconds)
	s.Equal(now, scores[0].RecordedAt)
}

func (s *StorageSuite) TestFailedUpdateWritesNoScore() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	_, err := s.storage.UpdateAccount(s.ctx, "a1", func(a *model.Account) (*model.Score, error) {
		return &model.Score{AccountID: a.ID, Difficulty: model.DifficultyEasy}, model.ErrInsufficientCoins
	})
	s.ErrorIs(err, model.ErrInsufficientCoins)

	scores, _ := s.storage.ScoresByDifficulty(s.ctx, model.DifficultyEasy)
	s.Empty(scores)
}

// Score tests

func (s *StorageSuite) TestScoresByDifficultyEmpty() {
	scores, err := s.storage.ScoresByDifficulty(s.ctx, model.DifficultyHard)
	s.Require().NoError(err)
	s.Empty(scores)
}
