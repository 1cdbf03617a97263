package shop

import (
	"context"
	"log/slog"

	"github.com/sweeplab/minesweeper-go/internal/dependencies/clock"
	"github.com/sweeplab/minesweeper-go/internal/model"
	"github.com/sweeplab/minesweeper-go/internal/storage"
)

// RecoverCost is the flat coin price of recovering a blown-up game
const RecoverCost = 20

// DefaultCatalog maps purchasable skin ids to their coin prices.
// The catalog is authoritative: a client-supplied cost is checked
// against it, never trusted.
var DefaultCatalog = map[string]int{
	model.DefaultSkin: 0,
	"midnight":        50,
	"ocean":           75,
	"neon":            100,
	"golden":          150,
}

// Service handles cosmetics and coin spending: skin purchase and equip,
// title equip, and game recovery
type Service struct {
	storage storage.Storage
	catalog map[string]int
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new shop Service with the given skin catalog
func New(storage storage.Storage, catalog map[string]int, clock clock.Clock, logger *slog.Logger) *Service {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	return &Service{
		storage: storage,
		catalog: catalog,
		clock:   clock,
		logger:  logger,
	}
}

// PurchaseSkin debits the catalog price and adds the skin to the
// account's owned set. clientCost, when non-nil, must match the catalog
// price; a rejected purchase leaves the balance untouched.
func (s *Service) PurchaseSkin(ctx context.Context, id model.AccountID, skinID string, clientCost *int) (*model.Account, error) {
	price, ok := s.catalog[skinID]
	if !ok {
		return nil, model.ErrSkinNotFound
	}
	if clientCost != nil && *clientCost != price {
		return nil, model.ErrPriceMismatch
	}

	now := s.clock.Now()
	account, err := s.storage.UpdateAccount(ctx, id, func(a *model.Account) (*model.Score, error) {
		if a.OwnedSkins.Contains(skinID) {
			return nil, model.ErrSkinAlreadyOwned
		}
		if a.Coins < price {
			return nil, model.ErrInsufficientCoins
		}
		a.Coins -= price
		a.OwnedSkins.Add(skinID)
		a.UpdatedAt = now
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("skin purchased",
		slog.String("account_id", string(id)),
		slog.String("skin_id", skinID),
		slog.Int("price", price),
	)

	return account, nil
}

// EquipSkin sets the account's current skin to an owned skin
func (s *Service) EquipSkin(ctx context.Context, id model.AccountID, skinID string) (*model.Account, error) {
	now := s.clock.Now()
	return s.storage.UpdateAccount(ctx, id, func(a *model.Account) (*model.Score, error) {
		if !a.OwnedSkins.Contains(skinID) {
			return nil, model.ErrSkinNotOwned
		}
		a.CurrentSkin = skinID
		a.UpdatedAt = now
		return nil, nil
	})
}

// EquipTitle sets the account's displayed title to an unlocked title
func (s *Service) EquipTitle(ctx context.Context, id model.AccountID, title string) (*model.Account, error) {
	now := s.clock.Now()
	return s.storage.UpdateAccount(ctx, id, func(a *model.Account) (*model.Score, error) {
		if !a.UnlockedTitles.Contains(title) {
			return nil, model.ErrTitleNotUnlocked
		}
		a.CurrentTitle = title
		a.UpdatedAt = now
		return nil, nil
	})
}

// RecoverGame debits the flat recovery cost and returns the new balance
func (s *Service) RecoverGame(ctx context.Context, id model.AccountID) (*model.Account, error) {
	now := s.clock.Now()
	account, err := s.storage.UpdateAccount(ctx, id, func(a *model.Account) (*model.Score, error) {
		if a.Coins < RecoverCost {
			return nil, model.ErrInsufficientCoins
		}
		a.Coins -= RecoverCost
		a.UpdatedAt = now
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("game recovered",
		slog.String("account_id", string(id)),
		slog.Int("new_balance", account.Coins),
	)

	return account, nil
}
