package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/dpscalc/internal/model"
	"github.com/udisondev/dpscalc/internal/testutil"
)

func snapshot(m map[model.StatID]float64) model.Snapshot {
	var s model.Snapshot
	for id, v := range m {
		s[id] = v
	}
	return s
}

func TestCompute_ZeroSkillCoeff(t *testing.T) {
	s := snapshot(map[model.StatID]float64{
		model.StatAttack:     500,
		model.StatCritRate:   15,
		model.StatCritDamage: 15,
		model.StatDamage:     10,
		model.StatBossDamage: 10,
		model.StatMinDamage:  50,
		model.StatMaxDamage:  100,
	})

	b := Compute(s, model.CategoryBoss)
	assert.Zero(t, b.BaseDamage)
	assert.Zero(t, b.DPS)
}

func TestCompute_PlainHit(t *testing.T) {
	s := snapshot(map[model.StatID]float64{
		model.StatAttack:     1000,
		model.StatSkillCoeff: 100,
		model.StatMinDamage:  100,
		model.StatMaxDamage:  100,
	})

	b := Compute(s, model.CategoryBoss)
	assert.InDelta(t, 1000, b.BaseDamage, 1e-9)
	assert.InDelta(t, 1000, b.BaseHitDamage, 1e-9)
	assert.InDelta(t, 1000, b.NonCritMin, 1e-9)
	assert.InDelta(t, 1000, b.NonCritMax, 1e-9)
	assert.InDelta(t, 1000, b.NonCritAvg, 1e-9)
	assert.InDelta(t, 1000, b.ExpectedDamage, 1e-9)
	assert.InDelta(t, 1000, b.DPS, 1e-9)
	assert.Equal(t, 1.0, b.DefPenMultiplier)
	assert.Equal(t, 1.0, b.DamageReductionMultiplier)
}

func TestCompute_Reference(t *testing.T) {
	s := testutil.ReferenceStats()

	boss := Compute(s, model.CategoryBoss)
	assert.InDelta(t, 10000, boss.BaseDamage, 1e-9)
	assert.InDelta(t, 15600, boss.BaseHitDamage, 1e-6)
	assert.InDelta(t, 12480, boss.NonCritMin, 1e-6)
	assert.InDelta(t, 15600, boss.NonCritMax, 1e-6)
	assert.InDelta(t, 14040, boss.NonCritAvg, 1e-6)
	assert.InDelta(t, 28080, boss.CritAvg, 1e-6)
	assert.InDelta(t, testutil.ReferenceBossDPS, boss.DPS, 1e-6)

	normal := Compute(s, model.CategoryNormal)
	assert.InDelta(t, testutil.ReferenceNormalDPS, normal.DPS, 1e-6)
}

func TestCompute_CritRateClamped(t *testing.T) {
	s := testutil.ReferenceStats()
	at100 := DPS(s.With(model.StatCritRate, 100), model.CategoryBoss)
	at150 := DPS(s.With(model.StatCritRate, 150), model.CategoryBoss)

	assert.Equal(t, at100, at150)
	assert.Equal(t, 1.0, Compute(s.With(model.StatCritRate, 150), model.CategoryBoss).CritRate)
}

func TestCompute_MinAboveMax(t *testing.T) {
	s := testutil.ReferenceStats().With(model.StatMinDamage, 120)

	b := Compute(s, model.CategoryBoss)
	assert.Equal(t, b.NonCritMin, b.NonCritMax, "min damage above max is capped at max")
}

func TestCompute_CategorySelectsModifiers(t *testing.T) {
	s := testutil.ReferenceStats().With(model.StatSkillMasteryBoss, 50)

	boss := Compute(s, model.CategoryBoss)
	normal := Compute(s, model.CategoryNormal)

	assert.Equal(t, 50.0, boss.TotalSkillMastery)
	assert.Equal(t, 0.0, normal.TotalSkillMastery)
	assert.InDelta(t, 1.2, boss.MonsterDamageMultiplier, 1e-12)
	assert.InDelta(t, 1.1, normal.MonsterDamageMultiplier, 1e-12)
}

func TestCompute_AttackSpeed(t *testing.T) {
	s := testutil.ReferenceStats().With(model.StatAttackSpeed, 50)
	assert.InDelta(t, testutil.ReferenceBossDPS*1.5, DPS(s, model.CategoryBoss), 1e-6)
}

// DPS never decreases for positive increments of additive and multiplicative stats.
func TestCompute_MonotonicInAdditiveStats(t *testing.T) {
	stats := []model.StatID{
		model.StatAttack, model.StatCritRate, model.StatCritDamage, model.StatStatDamage,
		model.StatDamage, model.StatFinalDamage, model.StatDamageAmp, model.StatAttackSpeed,
		model.StatBossDamage, model.StatNormalDamage, model.StatSkillCoeff, model.StatSkillMastery,
		model.StatSkillMasteryBoss, model.StatMinDamage, model.StatMaxDamage,
	}
	base := testutil.ReferenceStats()

	for _, id := range stats {
		for _, category := range []model.TargetCategory{model.CategoryBoss, model.CategoryNormal} {
			prev := DPS(base, category)
			s := base
			for _, delta := range []float64{1, 5, 10, 25, 50} {
				s[id] += delta
				cur := DPS(s, category)
				assert.GreaterOrEqual(t, cur, prev, "%s +%v vs %s", id, delta, category)
				prev = cur
			}
		}
	}
}
