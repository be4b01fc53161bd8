package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseStatID_RoundTrip(t *testing.T) {
	for _, id := range AllStats() {
		got, err := ParseStatID(id.String())
		require.NoError(t, err, "ParseStatID(%q)", id.String())
		assert.Equal(t, id, got)
	}
}

func TestParseStatID_CaseInsensitive(t *testing.T) {
	id, err := ParseStatID("  CRITRATE ")
	require.NoError(t, err)
	assert.Equal(t, StatCritRate, id)
}

func TestParseStatID_Unknown(t *testing.T) {
	_, err := ParseStatID("luck")
	assert.ErrorIs(t, err, ErrInvalidStatKey)
}

func TestStatID_Valid(t *testing.T) {
	assert.True(t, StatMaxDamage.Valid())
	assert.False(t, StatCount.Valid())
	assert.Equal(t, "StatID(200)", StatID(200).String())
}

func TestSnapshot_GetWith(t *testing.T) {
	var s Snapshot
	s2 := s.With(StatAttack, 100)

	assert.Equal(t, 0.0, s.Get(StatAttack), "With must not touch the receiver")
	assert.Equal(t, 100.0, s2.Get(StatAttack))
	assert.Equal(t, 0.0, s2.Get(StatID(99)))
	assert.Equal(t, s2, s2.With(StatID(99), 5), "invalid id is ignored")
}

func TestSnapshotFromMap(t *testing.T) {
	s, err := SnapshotFromMap(map[string]float64{"attack": 500, "finalDamage": 12})
	require.NoError(t, err)
	assert.Equal(t, 500.0, s[StatAttack])
	assert.Equal(t, 12.0, s[StatFinalDamage])

	_, err = SnapshotFromMap(map[string]float64{"nope": 1})
	assert.ErrorIs(t, err, ErrInvalidStatKey)
}

func TestSnapshot_YAML(t *testing.T) {
	src := `
name: hero-main
character:
  class: hero
  level: 85
  weapon_attack_bonus: 40
  skill_levels:
    combat-mastery: 12
stats:
  attack: 25000
  critRate: 70
  attackSpeed: 35
`
	var b Build
	require.NoError(t, yaml.Unmarshal([]byte(src), &b))

	assert.Equal(t, "hero-main", b.Name)
	assert.Equal(t, "hero", b.Character.ClassID)
	assert.Equal(t, 85, b.Character.Level)
	assert.Equal(t, 40.0, b.Character.WeaponAttackBonus)
	assert.Equal(t, 12, b.Character.SkillLevels["combat-mastery"])
	assert.Equal(t, 25000.0, b.Stats[StatAttack])
	assert.Equal(t, 70.0, b.Stats[StatCritRate])
	assert.Equal(t, 35.0, b.Stats[StatAttackSpeed])

	out, err := yaml.Marshal(b)
	require.NoError(t, err)

	var back Build
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, b, back)
}

func TestSnapshot_YAMLUnknownStat(t *testing.T) {
	var b Build
	err := yaml.Unmarshal([]byte("stats:\n  luck: 5\n"), &b)
	assert.ErrorIs(t, err, ErrInvalidStatKey)
}

func TestCategory(t *testing.T) {
	c, err := ParseCategory("Boss")
	require.NoError(t, err)
	assert.Equal(t, CategoryBoss, c)

	c, err = ParseCategory("normal")
	require.NoError(t, err)
	assert.Equal(t, CategoryNormal, c)

	_, err = ParseCategory("elite")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	assert.False(t, TargetCategory(5).Valid())
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, CategoryNormal, CategoryFor(StatNormalDamage))
	for _, id := range AllStats() {
		if id == StatNormalDamage {
			continue
		}
		assert.Equal(t, CategoryBoss, CategoryFor(id), "%s", id)
	}
}
