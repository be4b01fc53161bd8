package stats

import "github.com/udisondev/dpscalc/internal/model"

// Probe applies delta to id on a clone of c and returns the clone together
// with its DPS gain over c's baseline for the category id is judged on
// (model.CategoryFor). c itself is untouched.
//
// The equivalency solver and the prediction table both evaluate through
// Probe, so they cannot disagree for the same input.
func (c *Calculator) Probe(id model.StatID, delta float64) (*Calculator, float64, error) {
	category := model.CategoryFor(id)
	baseline, err := c.BaselineDPS(category)
	if err != nil {
		return nil, 0, err
	}
	probe := c.Clone().Apply(id, delta)
	gain, err := probe.ComputeDPSGain(baseline, category)
	if err != nil {
		return probe, 0, err
	}
	return probe, gain, nil
}
