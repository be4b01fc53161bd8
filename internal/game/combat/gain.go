package combat

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDPS is returned when a DPS ratio would divide by a zero, negative or non-finite baseline.
var ErrInvalidDPS = errors.New("computed DPS is invalid")

// DPSGain returns the percentage change from baseline to dps.
func DPSGain(baseline, dps float64) (float64, error) {
	if baseline <= 0 || math.IsNaN(baseline) || math.IsInf(baseline, 0) {
		return 0, fmt.Errorf("%w: baseline %v", ErrInvalidDPS, baseline)
	}
	if math.IsNaN(dps) || math.IsInf(dps, 0) {
		return 0, fmt.Errorf("%w: dps %v", ErrInvalidDPS, dps)
	}
	return (dps - baseline) / baseline * 100, nil
}
