package domain

import "errors"

// Rejected operations and bad references. Rejections are ordinary outcomes
// (the HTTP layer turns them into 4xx responses); anything else that comes
// out of the engine is a server fault.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoEnergy          = errors.New("no energy")
	ErrAlreadyOwned      = errors.New("already owned")
	ErrNotOwned          = errors.New("not owned")
	ErrMaxLevel          = errors.New("max level reached")
	ErrLocked            = errors.New("locked")
)
