package combat

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateInverse is returned when undoing a stacked increment would divide by zero.
	ErrDegenerateInverse = errors.New("stacking inverse is undefined")

	// ErrDiminishingCeiling is returned when a diminishing-return stat or
	// increment is at or above its denominator.
	ErrDiminishingCeiling = errors.New("diminishing return ceiling reached")
)

// Additive: new = old + delta.
func Additive(old, delta float64) float64 {
	return old + delta
}

// Multiplicative compounds percentages: ((1+old/100)(1+delta/100) - 1) × 100.
func Multiplicative(old, delta float64) float64 {
	return ((1+old/100)*(1+delta/100) - 1) * 100
}

// RemoveMultiplicative undoes Multiplicative(old, delta).
// delta = -100 wiped the stat out and cannot be undone.
func RemoveMultiplicative(cur, delta float64) (float64, error) {
	f := 1 + delta/100
	if f == 0 {
		return 0, fmt.Errorf("%w: multiplicative delta %v", ErrDegenerateInverse, delta)
	}
	return ((1+cur/100)/f - 1) * 100, nil
}

// DiminishingReturn stacks against a ceiling d: (1 - (1-old/d)(1-delta/d)) × d.
// old and delta must both be below d; the result then stays below d.
func DiminishingReturn(old, delta, d float64) (float64, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%w: denominator %v", ErrDegenerateInverse, d)
	}
	if old >= d || delta >= d {
		return 0, fmt.Errorf("%w: %v stacked with %v against %v", ErrDiminishingCeiling, old, delta, d)
	}
	return belowCeiling((1-(1-old/d)*(1-delta/d))*d, d), nil
}

// RemoveDiminishingReturn undoes DiminishingReturn(old, delta, d).
func RemoveDiminishingReturn(cur, delta, d float64) (float64, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%w: denominator %v", ErrDegenerateInverse, d)
	}
	if cur >= d {
		return 0, fmt.Errorf("%w: %v against %v", ErrDiminishingCeiling, cur, d)
	}
	f := 1 - delta/d
	if f <= 0 {
		return 0, fmt.Errorf("%w: diminishing delta %v not below denominator %v", ErrDegenerateInverse, delta, d)
	}
	return belowCeiling((1-(1-cur/d)/f)*d, d), nil
}

// belowCeiling keeps v strictly under d. Rounding can land on d when the
// remaining headroom is smaller than float64 precision.
func belowCeiling(v, d float64) float64 {
	if v >= d {
		return math.Nextafter(d, math.Inf(-1))
	}
	return v
}
