// Package stats applies stat increments to a snapshot and evaluates the result.
//
// Transformations are pure Steps over a State value; Calculator is the
// chainable stateful wrapper the rest of the engine uses.
package stats

import (
	"github.com/udisondev/dpscalc/internal/data"
	"github.com/udisondev/dpscalc/internal/model"
)

// Context is the derived data that does not live in the snapshot itself or
// has to be tracked alongside it. MainStatPct, PrimaryMainStat and Defense
// mirror their snapshot entries and are kept in lock-step by every Step.
type Context struct {
	ClassID           string
	WeaponAttackBonus float64 // percent
	FinalAttack       float64 // percent, from class passives
	DefenseConversion float64 // defense → main stat rate for the class

	MainStatPct     float64
	PrimaryMainStat float64
	Defense         float64
}

// DefenseMainStat is the part of the primary main stat that comes from defense conversion.
func (c Context) DefenseMainStat() float64 {
	return c.Defense * c.DefenseConversion
}

// State is a snapshot together with its context.
type State struct {
	Stats model.Snapshot
	Ctx   Context
}

// NewState builds a State from a snapshot and character metadata, resolving
// class passives with passives (nil means data.PassiveBonuses).
func NewState(s model.Snapshot, ch model.Character, passives data.PassiveFunc) State {
	if passives == nil {
		passives = data.PassiveBonuses
	}
	bonus := passives(ch.ClassID, ch.Level, ch.SkillLevels)

	return State{
		Stats: s,
		Ctx: Context{
			ClassID:           ch.ClassID,
			WeaponAttackBonus: ch.WeaponAttackBonus,
			FinalAttack:       bonus.FinalAttack,
			DefenseConversion: data.DefenseConversionRate(ch.ClassID),
			MainStatPct:       s[model.StatMainStatPct],
			PrimaryMainStat:   s[model.StatMainStat],
			Defense:           s[model.StatDefense],
		},
	}
}

// put writes a stat and mirrors it into the context when tracked there.
func (st *State) put(id model.StatID, v float64) {
	st.Stats[id] = v
	switch id {
	case model.StatMainStatPct:
		st.Ctx.MainStatPct = v
	case model.StatMainStat:
		st.Ctx.PrimaryMainStat = v
	case model.StatDefense:
		st.Ctx.Defense = v
	}
}
