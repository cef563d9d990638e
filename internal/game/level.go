package game

// ExpTable resolves the experience needed to advance past a level. The
// second return is false when the level is the top of the ladder.
type ExpTable func(level int) (expToNext int64, ok bool)

// Advance applies an experience delta and walks the ladder. Leftover
// experience carries across every level-up, so a large delta can gain
// several levels in one call. Experience is never lost: the thresholds
// consumed plus the remainder always equal the input sum.
func Advance(level int, exp, delta int64, table ExpTable) (newLevel int, newExp int64, gained []int) {
	if delta < 0 {
		delta = 0
	}
	newLevel = level
	newExp = exp + delta
	for {
		need, ok := table(newLevel)
		if !ok || newExp < need {
			break
		}
		newExp -= need
		newLevel++
		gained = append(gained, newLevel)
	}
	return newLevel, newExp, gained
}
