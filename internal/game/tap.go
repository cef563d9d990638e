package game

import "github.com/shopspring/decimal"

// TapStats are the effective tap parameters of an equipped tool.
type TapStats struct {
	Power              decimal.Decimal
	MainCoinsPower     decimal.Decimal
	LocationCoinsPower decimal.Decimal
}

// BaseTapStats are used when a player has no tool equipped for the
// location's character.
func BaseTapStats() TapStats {
	return TapStats{
		Power:              decimal.NewFromInt(1),
		MainCoinsPower:     decimal.NewFromFloat(0.5),
		LocationCoinsPower: decimal.NewFromInt(1),
	}
}

// TapGains computes the raw (uncapped) gains of a single tap. Gains are
// rounded to whole coins, half away from zero.
func TapGains(s TapStats) (locationGain, mainGain decimal.Decimal) {
	locationGain = s.Power.Mul(s.LocationCoinsPower).Round(0)
	mainGain = s.Power.Mul(s.MainCoinsPower).Round(0)
	return locationGain, mainGain
}

// ClampCredit returns how much of delta fits under capacity given the
// current balance. Never negative; gains are clamped, never rejected.
func ClampCredit(balance, delta, capacity decimal.Decimal) decimal.Decimal {
	space := capacity.Sub(balance)
	if space.IsNegative() {
		return decimal.Zero
	}
	if delta.GreaterThan(space) {
		return space
	}
	return delta
}
