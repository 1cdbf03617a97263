package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Wallet errors
	ErrInsufficientCoins = errors.New("not enough coins")

	// Shop errors
	ErrSkinNotFound     = errors.New("skin not in catalog")
	ErrSkinAlreadyOwned = errors.New("skin already owned")
	ErrSkinNotOwned     = errors.New("skin not owned")
	ErrPriceMismatch    = errors.New("cost does not match catalog price")

	// Title errors
	ErrTitleNotUnlocked = errors.New("title not unlocked")
)
