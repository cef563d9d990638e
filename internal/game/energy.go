package game

import "time"

// RefillEnergy computes lazy energy regeneration. Only whole minutes are
// credited; consumed reports how much of elapsed was actually spent so the
// caller can advance the refill timestamp without losing the fractional
// remainder.
func RefillEnergy(energy, maxEnergy int, elapsed time.Duration, perMinute int) (newEnergy int, consumed time.Duration) {
	if energy >= maxEnergy || perMinute <= 0 || elapsed < time.Minute {
		return energy, 0
	}
	minutes := int(elapsed / time.Minute)
	gain := minutes * perMinute
	newEnergy = energy + gain
	if newEnergy >= maxEnergy {
		// at the cap the remainder is irrelevant, consume everything
		return maxEnergy, elapsed
	}
	return newEnergy, time.Duration(minutes) * time.Minute
}
