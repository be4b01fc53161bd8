package data

import "github.com/udisondev/dpscalc/internal/model"

// Increment menus for the prediction table.
var (
	FlatAttackIncrements = []float64{500, 1000, 2500, 5000, 10000, 15000}
	MainStatIncrements   = []float64{100, 500, 1000, 2500, 5000, 10000}
	PercentIncrements    = []float64{1, 5, 10, 25, 50, 75}
)

// Increments returns the default increment menu for id.
func Increments(id model.StatID) []float64 {
	if !id.Valid() {
		return nil
	}
	switch StatRules[id].Kind {
	case RuleAttack:
		return FlatAttackIncrements
	case RuleMainStat:
		return MainStatIncrements
	default:
		return PercentIncrements
	}
}
