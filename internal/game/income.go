package game

import (
	"time"

	"github.com/shopspring/decimal"
)

// minAccrual gates idle-income accrual: anything under a minute is ignored,
// which both prevents sub-minute thrash and makes a repeated call within the
// same minute a no-op.
const minAccrual = time.Minute

// ShouldAccrue reports whether enough wall-clock time has passed since the
// last reconciliation for accrual to run at all.
func ShouldAccrue(elapsed time.Duration) bool {
	return elapsed >= minAccrual
}

// Accrued computes the income a single helper earned over elapsed time at
// the given hourly rate. Rounded to 2 decimal places, the ledger precision.
func Accrued(incomePerHour decimal.Decimal, elapsed time.Duration) decimal.Decimal {
	if elapsed <= 0 {
		return decimal.Zero
	}
	minutes := decimal.NewFromFloat(elapsed.Minutes())
	return incomePerHour.Div(decimal.NewFromInt(60)).Mul(minutes).Round(2)
}
