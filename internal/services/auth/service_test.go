package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sweeplab/minesweeper-go/internal/dependencies/mocks"
	"github.com/sweeplab/minesweeper-go/internal/model"
	"github.com/sweeplab/minesweeper-go/internal/storage/memory"
	"github.com/sweeplab/minesweeper-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	account, session, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.Equal("alice", account.Username)
	s.Equal("alice@example.com", account.Email)
	s.NotEmpty(session.Token)
	s.Equal(account.ID, session.AccountID)
}

func (s *ServiceSuite) TestRegisterAppliesDefaults() {
	account, _, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.Equal(0, account.Coins)
	s.Equal(model.DefaultSkin, account.CurrentSkin)
	s.Equal(model.StringSet{model.DefaultSkin}, account.OwnedSkins)
	s.Empty(account.CurrentTitle)
	s.Empty(account.UnlockedTitles)
	s.Equal(0, account.GamesPlayed)
}

func (s *ServiceSuite) TestRegisterPersistsHashedPassword() {
	account, _, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	stored, err := s.storage.GetAccount(s.ctx, account.ID)
	s.Require().NoError(err)
	s.NotEmpty(stored.PasswordHash)
	s.NotEqual("password123", stored.PasswordHash) // Should be hashed
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, _, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	_, _, err = s.service.Register(s.ctx, "alice", "other@example.com", "different")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestRegisterFailsIfEmailExists() {
	_, _, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	_, _, err = s.service.Register(s.ctx, "alice2", "alice@example.com", "different")
	s.ErrorIs(err, ErrEmailExists)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	registered, _, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	account, session, err := s.service.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.Equal(registered.ID, account.ID)
	s.NotEmpty(session.Token)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, _, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	_, _, err = s.service.Login(s.ctx, "alice@example.com", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownEmail() {
	_, _, err := s.service.Login(s.ctx, "nobody@example.com", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Session tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	_, session, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.AccountID, validated.AccountID)
}

func (s *ServiceSuite) TestValidateSessionFailsWithInvalidToken() {
	_, err := s.service.ValidateSession("invalid_token")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsWhenExpired() {
	_, session, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestAccountForTokenReturnsCurrentState() {
	account, session, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	// Mutate the account behind the session's back
	_, err = s.storage.UpdateAccount(s.ctx, account.ID, func(a *model.Account) (*model.Score, error) {
		a.Coins = 42
		return nil, nil
	})
	s.Require().NoError(err)

	loaded, err := s.service.AccountForToken(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(42, loaded.Coins)
}

func (s *ServiceSuite) TestInvalidateSession() {
	_, session, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	_, expired, err := s.service.Register(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, fresh, err := s.service.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(expired.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
