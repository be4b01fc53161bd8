package combat

import (
	"math"

	"github.com/udisondev/dpscalc/internal/model"
)

// Placeholder multipliers kept as explicit slots for a future stage-defense model.
const (
	defPenMultiplier          = 1.0
	damageReductionMultiplier = 1.0
)

// Breakdown is the full result of one damage evaluation.
type Breakdown struct {
	Category model.TargetCategory

	TotalSkillMastery float64
	BaseDamage        float64
	BaseHitDamage     float64

	NonCritMin float64
	NonCritMax float64
	NonCritAvg float64

	CritMin float64
	CritMax float64
	CritAvg float64

	ExpectedDamage float64
	DPS            float64

	// Multipliers applied on the way, for display.
	StatDamageMultiplier      float64
	DamageMultiplier          float64
	MonsterDamageMultiplier   float64
	DamageAmpMultiplier       float64
	FinalDamageMultiplier     float64
	DefPenMultiplier          float64
	DamageReductionMultiplier float64
	CritMultiplier            float64
	CritRate                  float64 // clamped, 0..1
	AttackSpeedMultiplier     float64
}

// Compute evaluates expected damage per hit and DPS for stats against a target category.
// Formula: attack × skillCoeff × mastery × Π(1+bonus) × avg(min..max) × crit blend × (1+attackSpeed).
//
// Crit rate above 100 is treated as 100. Any category other than Normal is
// handled as Boss; callers validate categories where it matters.
func Compute(s model.Snapshot, category model.TargetCategory) Breakdown {
	b := Breakdown{Category: category}

	// 1-2. Base damage
	b.TotalSkillMastery = s[model.StatSkillMastery]
	if category != model.CategoryNormal {
		b.TotalSkillMastery += s[model.StatSkillMasteryBoss]
	}
	b.BaseDamage = s[model.StatAttack] * (s[model.StatSkillCoeff] / 100) * (1 + b.TotalSkillMastery/100)

	// 3. Monster-type bonus
	monsterDamage := s[model.StatBossDamage]
	if category == model.CategoryNormal {
		monsterDamage = s[model.StatNormalDamage]
	}

	// 4. Per-hit multipliers
	b.StatDamageMultiplier = 1 + s[model.StatStatDamage]/100
	b.DamageMultiplier = 1 + s[model.StatDamage]/100
	b.MonsterDamageMultiplier = 1 + monsterDamage/100
	b.DamageAmpMultiplier = 1 + s[model.StatDamageAmp]/100
	b.FinalDamageMultiplier = 1 + s[model.StatFinalDamage]/100
	b.DefPenMultiplier = defPenMultiplier
	b.DamageReductionMultiplier = damageReductionMultiplier

	b.BaseHitDamage = b.BaseDamage *
		b.StatDamageMultiplier *
		b.DamageMultiplier *
		b.MonsterDamageMultiplier *
		b.DamageAmpMultiplier *
		b.FinalDamageMultiplier *
		b.DefPenMultiplier *
		b.DamageReductionMultiplier

	// 5. Damage range
	minPct := math.Min(s[model.StatMinDamage], s[model.StatMaxDamage])
	b.NonCritMin = b.BaseHitDamage * minPct / 100
	b.NonCritMax = b.BaseHitDamage * s[model.StatMaxDamage] / 100
	b.NonCritAvg = (b.NonCritMin + b.NonCritMax) / 2

	// 6. Crits
	b.CritMultiplier = 1 + s[model.StatCritDamage]/100
	b.CritMin = b.NonCritMin * b.CritMultiplier
	b.CritMax = b.NonCritMax * b.CritMultiplier
	b.CritAvg = b.NonCritAvg * b.CritMultiplier

	// 7. Expected hit
	b.CritRate = math.Min(s[model.StatCritRate], 100) / 100
	b.ExpectedDamage = b.NonCritAvg*(1-b.CritRate) + b.CritAvg*b.CritRate

	// 8. Hits per second
	b.AttackSpeedMultiplier = 1 + s[model.StatAttackSpeed]/100
	b.DPS = b.ExpectedDamage * b.AttackSpeedMultiplier

	return b
}

// DPS is shorthand for Compute(s, category).DPS.
func DPS(s model.Snapshot, category model.TargetCategory) float64 {
	return Compute(s, category).DPS
}
