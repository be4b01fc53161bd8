package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dpscalc/internal/model"
)

func TestStatRules_EveryStatBound(t *testing.T) {
	for _, id := range model.AllStats() {
		r, err := RuleFor(id)
		require.NoError(t, err)
		assert.NotEqual(t, RuleUnset, r.Kind, "%s has no rule", id)
		assert.NotEmpty(t, r.Label, "%s has no label", id)
	}
}

func TestRuleFor_Invalid(t *testing.T) {
	_, err := RuleFor(model.StatCount)
	assert.ErrorIs(t, err, model.ErrInvalidStatKey)
}

func TestStatRules_Kinds(t *testing.T) {
	tests := []struct {
		stat model.StatID
		kind RuleKind
		den  float64
	}{
		{model.StatAttack, RuleAttack, 0},
		{model.StatMainStat, RuleMainStat, 0},
		{model.StatMainStatPct, RuleMainStatPct, 0},
		{model.StatFinalDamage, RuleMultiplicative, 0},
		{model.StatAttackSpeed, RuleDiminishing, 150},
		{model.StatDefPen, RuleDiminishing, 100},
		{model.StatCritRate, RuleAdditive, 0},
		{model.StatBossDamage, RuleAdditive, 0},
		{model.StatSkillCoeff, RuleAdditive, 0},
	}

	for _, tt := range tests {
		r := StatRules[tt.stat]
		assert.Equal(t, tt.kind, r.Kind, "%s kind", tt.stat)
		assert.Equal(t, tt.den, r.Denominator, "%s denominator", tt.stat)
	}
}

func TestStatRules_Caps(t *testing.T) {
	caps := map[model.StatID]float64{
		model.StatCritRate:     100,
		model.StatCritDamage:   500,
		model.StatAttackSpeed:  130,
		model.StatMinDamage:    100,
		model.StatMaxDamage:    100,
		model.StatSkillCoeff:   1000,
		model.StatSkillMastery: 100,
		model.StatAttack:       100000,
		model.StatMainStat:     500000,
		model.StatMainStatPct:  1000,
		model.StatDefPen:       100,

		model.StatBossDamage:   NoCap,
		model.StatNormalDamage: NoCap,
		model.StatDamage:       NoCap,
		model.StatFinalDamage:  NoCap,
		model.StatStatDamage:   NoCap,
		model.StatDamageAmp:    NoCap,
	}
	for id, want := range caps {
		assert.Equal(t, want, StatRules[id].Cap, "%s cap", id)
	}

	// The solver ceiling and the in-game attack speed cap are distinct values.
	assert.Equal(t, 150.0, StatRules[model.StatAttackSpeed].HardCap)
}

func TestTrackedStats(t *testing.T) {
	tracked := TrackedStats()
	assert.NotContains(t, tracked, model.StatDefense)
	assert.Contains(t, tracked, model.StatBossDamage)
	assert.Contains(t, tracked, model.StatNormalDamage)
	assert.Contains(t, tracked, model.StatFinalDamage)
	assert.Len(t, tracked, int(model.StatCount)-1)
}

func TestIncrements(t *testing.T) {
	assert.Equal(t, FlatAttackIncrements, Increments(model.StatAttack))
	assert.Equal(t, MainStatIncrements, Increments(model.StatMainStat))
	assert.Equal(t, PercentIncrements, Increments(model.StatCritDamage))
	assert.Equal(t, PercentIncrements, Increments(model.StatMainStatPct))
	assert.Nil(t, Increments(model.StatCount))
}
