// README: Common money value object and rounding shared across modules.
package types

import "math"

// ID identifies a quote produced during a session.
type ID string

type Money struct {
	Amount   float64
	Currency string
}

// roundingBias nudges values sitting just under a .xx5 boundary because of
// binary representation error.
const roundingBias = 1e-9

// exactAbove is the magnitude from which float64 holds no fractional part.
const exactAbove = 1 << 52

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	if v < 0 {
		return -Round2(-v)
	}
	if v >= exactAbove {
		return v
	}
	return math.Floor(v*100+0.5+roundingBias) / 100
}
