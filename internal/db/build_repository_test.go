package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dpscalc/internal/model"
)

func sampleBuild(name string) model.Build {
	var s model.Snapshot
	s[model.StatAttack] = 10000
	s[model.StatSkillCoeff] = 100
	s[model.StatCritRate] = 50
	s[model.StatCritDamage] = 100
	s[model.StatDamage] = 30
	return model.Build{
		Name:      name,
		Character: model.Character{ClassID: "hero", Level: 100, WeaponAttackBonus: 35},
		Stats:     s,
	}
}

func TestBuildRepository_SaveLoad(t *testing.T) {
	repo := NewBuildRepository(setupTestDB(t))
	ctx := context.Background()

	b := sampleBuild("main")
	b.Character.SkillLevels = map[string]int{"combat-mastery": 12}

	changed, err := repo.Save(ctx, b)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := repo.Load(ctx, "main")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b, *got)
	assert.Equal(t, b.Fingerprint(), got.Fingerprint())
}

func TestBuildRepository_SaveUnchanged(t *testing.T) {
	repo := NewBuildRepository(setupTestDB(t))
	ctx := context.Background()

	b := sampleBuild("main")

	_, err := repo.Save(ctx, b)
	require.NoError(t, err)

	changed, err := repo.Save(ctx, b)
	require.NoError(t, err)
	assert.False(t, changed, "same fingerprint must not rewrite")

	b.Stats[model.StatCritRate] = 70
	changed, err = repo.Save(ctx, b)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := repo.Load(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, 70.0, got.Stats[model.StatCritRate])
}

func TestBuildRepository_LoadMissing(t *testing.T) {
	repo := NewBuildRepository(setupTestDB(t))

	got, err := repo.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBuildRepository_ListDelete(t *testing.T) {
	repo := NewBuildRepository(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha"} {
		_, err := repo.Save(ctx, sampleBuild(name))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "zeta", list[1].Name)
	assert.Equal(t, sampleBuild("alpha").Fingerprint(), list[0].Fingerprint)
	assert.False(t, list[0].UpdatedAt.IsZero())

	require.NoError(t, repo.Delete(ctx, "alpha"))
	require.NoError(t, repo.Delete(ctx, "alpha"))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "zeta", list[0].Name)
}

func TestBuildRepository_SaveEmptyName(t *testing.T) {
	repo := NewBuildRepository(setupTestDB(t))
	_, err := repo.Save(context.Background(), model.Build{})
	assert.Error(t, err)
}
