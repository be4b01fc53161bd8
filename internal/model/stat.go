package model

import (
	"fmt"
	"strings"
)

// StatID identifies a single character stat tracked by the damage engine.
// The set is closed: every value below StatCount must have a rule binding in
// data.StatRules.
type StatID uint8

const (
	StatAttack StatID = iota
	StatMainStat
	StatMainStatPct
	StatDefense
	StatCritRate
	StatCritDamage
	StatStatDamage
	StatDamage
	StatFinalDamage
	StatDamageAmp
	StatAttackSpeed
	StatDefPen
	StatBossDamage
	StatNormalDamage
	StatSkillCoeff
	StatSkillMastery
	StatSkillMasteryBoss
	StatMinDamage
	StatMaxDamage

	StatCount
)

// statKeys holds the canonical camelCase key of each stat, indexed by StatID.
var statKeys = [StatCount]string{
	StatAttack:           "attack",
	StatMainStat:         "primaryMainStat",
	StatMainStatPct:      "mainStatPct",
	StatDefense:          "defense",
	StatCritRate:         "critRate",
	StatCritDamage:       "critDamage",
	StatStatDamage:       "statDamage",
	StatDamage:           "damage",
	StatFinalDamage:      "finalDamage",
	StatDamageAmp:        "damageAmp",
	StatAttackSpeed:      "attackSpeed",
	StatDefPen:           "defPen",
	StatBossDamage:       "bossDamage",
	StatNormalDamage:     "normalDamage",
	StatSkillCoeff:       "skillCoeff",
	StatSkillMastery:     "skillMastery",
	StatSkillMasteryBoss: "skillMasteryBoss",
	StatMinDamage:        "minDamage",
	StatMaxDamage:        "maxDamage",
}

// statByKey is the lowercase reverse index of statKeys.
var statByKey map[string]StatID

func init() {
	statByKey = make(map[string]StatID, StatCount)
	for id, key := range statKeys {
		if key == "" {
			panic(fmt.Sprintf("model: stat %d has no key", id))
		}
		statByKey[strings.ToLower(key)] = StatID(id)
	}
}

// Valid reports whether id belongs to the closed stat set.
func (id StatID) Valid() bool {
	return id < StatCount
}

// String returns the canonical key, e.g. "critRate".
func (id StatID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("StatID(%d)", uint8(id))
	}
	return statKeys[id]
}

// ParseStatID resolves a stat key (case-insensitive) to its StatID.
func ParseStatID(key string) (StatID, error) {
	id, ok := statByKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatKey, key)
	}
	return id, nil
}

// AllStats returns every StatID in declaration order.
func AllStats() []StatID {
	ids := make([]StatID, StatCount)
	for i := range ids {
		ids[i] = StatID(i)
	}
	return ids
}
