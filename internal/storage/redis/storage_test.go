package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/sweeplab/minesweeper-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
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

func (s *StorageSuite) TestLookupIndexes() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	byUsername, err := s.storage.GetAccountByUsername(s.ctx, "user-a1")
	s.Require().NoError(err)
	s.Equal(model.AccountID("a1"), byUsername.ID)

	byEmail, err := s.storage.GetAccountByEmail(s.ctx, "a1@example.com")
	s.Require().NoError(err)
	s.Equal(model.AccountID("a1"), byEmail.ID)

	_, err = s.storage.GetAccountByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrAccountNotFound)
	_, err = s.storage.GetAccountByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// UpdateAccount tests

func (s *StorageSuite) TestUpdateAccountCommitsMutation() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	updated, err := s.storage.UpdateAccount(s.ctx, "a1", func(a *model.Account) (*model.Score, error) {
		a.Coins += 10
		return nil, nil
	})
	s.Require().NoError(err)
	s.Equal(10, updated.Coins)

	stored, _ := s.storage.GetAccount(s.ctx, "a1")
	s.Equal(10, stored.Coins)
}

func (s *StorageSuite) TestUpdateAccountRollsBackOnError() {
	_ = s.storage.SaveAccount(s.ctx, s.newAccount("a1"))

	boom := errors.New("boom")
	_, err := s.storage.UpdateAccount(s.ctx, "a1", func(a *model.Account) (*model.Score, error) {
		a.Coins = 999
		return nil, boom
	})
	s.ErrorIs(err, boom)

	stored, _ := s.storage.GetAccount(s.ctx, "a1")
	s.Equal(0, stored.Coins)
}

func (s *StorageSuite) TestUpdateAccountNotFound() {
	_, err := s.storage.UpdateAccount(s.ctx, "nope", func(a *model.Account) (*model.Score, error) {
		return nil, nil
	})
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestUpdateAccountAppendsScoreAtomically() {
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

	stored, _ := s.storage.GetAccount(s.ctx, "a1")
	s.Equal(1, stored.GamesWon)
}

// Score tests

func (s *StorageSuite) TestScoresByDifficultyEmpty() {
	scores, err := s.storage.ScoresByDifficulty(s.ctx, model.DifficultyHard)
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestScoresSkipInvalidData() {
	s.mini.Lpush("msweep:scores:easy", "not json")

	scores, err := s.storage.ScoresByDifficulty(s.ctx, model.DifficultyEasy)
	s.Require().NoError(err)
	s.Empty(scores)
}
