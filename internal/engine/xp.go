package engine

// NextThreshold returns floor(threshold * 1.2), computed in integers so that
// multiples of 5 never lose a point to float rounding.
func NextThreshold(threshold int) int {
	return threshold * 12 / 10
}

// ApplyReward adds the difficulty payout to stats.
//
// At most one level is gained per call: leftover xp is carried into the new
// level even when it already exceeds the raised threshold.
func ApplyReward(stats UserStats, d Difficulty) (UserStats, bool, error) {
	r, err := RewardFor(d)
	if err != nil {
		return stats, false, err
	}

	next := stats
	next.XP = stats.XP + r.XP
	next.Gold = stats.Gold + r.Gold

	if next.XP >= stats.XPToNextLevel {
		next.Level = stats.Level + 1
		next.XP -= stats.XPToNextLevel
		next.XPToNextLevel = NextThreshold(stats.XPToNextLevel)
		return next, true, nil
	}
	return next, false, nil
}
