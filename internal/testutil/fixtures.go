package testutil

import (
	"github.com/udisondev/dpscalc/internal/data"
	"github.com/udisondev/dpscalc/internal/model"
)

// ReferenceStats is a simple build whose numbers are easy to follow by hand:
//
//	boss:   hit 10000 × 1.3 (damage) × 1.2 (boss) = 15600, range 80..100% → avg 14040,
//	        crit ×2 at 50% → expected 21060 = DPS
//	normal: 10000 × 1.3 × 1.1 = 14300 → avg 12870 → DPS 19305
func ReferenceStats() model.Snapshot {
	var s model.Snapshot
	s[model.StatAttack] = 10000
	s[model.StatSkillCoeff] = 100
	s[model.StatCritRate] = 50
	s[model.StatCritDamage] = 100
	s[model.StatMinDamage] = 80
	s[model.StatMaxDamage] = 100
	s[model.StatDamage] = 30
	s[model.StatBossDamage] = 20
	s[model.StatNormalDamage] = 10
	return s
}

// Reference DPS values of ReferenceStats.
const (
	ReferenceBossDPS   = 21060.0
	ReferenceNormalDPS = 19305.0
)

// ReferenceBuild wraps ReferenceStats in a build for a class without passives.
func ReferenceBuild() model.Build {
	return model.Build{
		Name:      "reference",
		Character: model.Character{ClassID: "night-lord", Level: 100},
		Stats:     ReferenceStats(),
	}
}

// MainStatBuild has 10000 total main stat at +100% main stat, i.e. 5000 base.
func MainStatBuild(classID string, defense float64) model.Build {
	s := ReferenceStats()
	s[model.StatMainStatPct] = 100
	s[model.StatDefense] = defense
	s[model.StatMainStat] = 10000 + defense*data.DefenseConversionRate(classID)
	s[model.StatStatDamage] = s[model.StatMainStat] / 100
	return model.Build{
		Name:      "main-stat-" + classID,
		Character: model.Character{ClassID: classID, Level: 100},
		Stats:     s,
	}
}
