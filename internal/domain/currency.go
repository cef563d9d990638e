package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyID identifies a currency in the catalog. Resolved once at the API
// boundary; business logic never guesses between numeric ids and codes.
type CurrencyID string

// MainCurrency is the global, uncapped currency every player holds.
const MainCurrency CurrencyID = "main"

// CurrencyBalance is a per-(player, currency) ledger row.
type CurrencyBalance struct {
	UserID     string          `db:"user_id" json:"user_id"`
	CurrencyID CurrencyID      `db:"currency_id" json:"currency_id"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
}

// PendingIncome is idle income accrued but not yet merged into the ledger,
// held separately so storage caps can be enforced at collection time.
type PendingIncome struct {
	UserID     string          `db:"user_id" json:"user_id"`
	CurrencyID CurrencyID      `db:"currency_id" json:"currency_id"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

// StorageLimit caps how much of a location-scoped currency a player may hold.
type StorageLimit struct {
	UserID     string          `db:"user_id" json:"user_id"`
	LocationID string          `db:"location_id" json:"location_id"`
	CurrencyID CurrencyID      `db:"currency_id" json:"currency_id"`
	Level      int             `db:"level" json:"level"`
	Capacity   decimal.Decimal `db:"capacity" json:"capacity"`
}
