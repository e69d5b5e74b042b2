package service

import "math/rand/v2"

// jitter spreads value by a random percentage within
// [1-minPercent, 1+maxPercent]. For example minPercent=0.15, maxPercent=0.15
// gives the range [0.85*value, 1.15*value].
//
// minPercent and maxPercent must be >= 0 (0.1 = 10%); anything else resets
// both to 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}
