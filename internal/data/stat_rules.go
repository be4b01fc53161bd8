package data

import (
	"fmt"

	"github.com/udisondev/dpscalc/internal/model"
)

// RuleKind selects how an increment combines with a stat's current value.
type RuleKind uint8

const (
	RuleUnset          RuleKind = iota // zero value, never valid in StatRules
	RuleAdditive                       // new = old + delta
	RuleMultiplicative                 // new = ((1+old/100)(1+delta/100) - 1) × 100
	RuleDiminishing                    // new = (1 - (1-old/D)(1-delta/D)) × D
	RuleAttack                         // flat attack, scaled by weapon bonus and final attack passive
	RuleMainStat                       // flat main stat → attack 1:1 and statDamage 100:1
	RuleMainStatPct                    // compounding main stat percentage
)

func (k RuleKind) String() string {
	switch k {
	case RuleAdditive:
		return "additive"
	case RuleMultiplicative:
		return "multiplicative"
	case RuleDiminishing:
		return "diminishing"
	case RuleAttack:
		return "attack"
	case RuleMainStat:
		return "main_stat"
	case RuleMainStatPct:
		return "main_stat_pct"
	default:
		return "unset"
	}
}

// Stacking and conversion constants.
const (
	AttackSpeedDenominator = 150.0 // DR ceiling for attackSpeed
	DefPenDenominator      = 100.0 // DR ceiling for defPen

	MainStatPerStatDamage = 100.0 // 100 main stat = 1% stat damage

	// NoCap marks a stat without a natural search ceiling; the solver substitutes
	// its configured unbounded ceiling.
	NoCap = 0.0
)

// StatRule binds a stat to its stacking rule and limits.
type StatRule struct {
	Kind        RuleKind
	Denominator float64 // RuleDiminishing only
	Cap         float64 // equivalency search ceiling for the increment, NoCap = unbounded
	HardCap     float64 // value shown as the in-game cap, 0 = none
	Label       string
	Tracked     bool // participates in equivalency and prediction tables
}

// StatRules is indexed by model.StatID. The array length is StatCount, so a
// stat added past the end without an entry fails to compile and a stat left
// out in the middle trips the init check below.
var StatRules = [model.StatCount]StatRule{
	model.StatAttack:           {Kind: RuleAttack, Cap: 100000, Label: "Attack", Tracked: true},
	model.StatMainStat:         {Kind: RuleMainStat, Cap: 500000, Label: "Main Stat", Tracked: true},
	model.StatMainStatPct:      {Kind: RuleMainStatPct, Cap: 1000, Label: "Main Stat %", Tracked: true},
	model.StatDefense:          {Kind: RuleAdditive, Label: "Defense"},
	model.StatCritRate:         {Kind: RuleAdditive, Cap: 100, HardCap: 100, Label: "Critical Rate", Tracked: true},
	model.StatCritDamage:       {Kind: RuleAdditive, Cap: 500, Label: "Critical Damage", Tracked: true},
	model.StatStatDamage:       {Kind: RuleAdditive, Cap: NoCap, Label: "Stat Damage", Tracked: true},
	model.StatDamage:           {Kind: RuleAdditive, Cap: NoCap, Label: "Damage", Tracked: true},
	model.StatFinalDamage:      {Kind: RuleMultiplicative, Cap: NoCap, Label: "Final Damage", Tracked: true},
	model.StatDamageAmp:        {Kind: RuleAdditive, Cap: NoCap, Label: "Damage Amplification", Tracked: true},
	model.StatAttackSpeed:      {Kind: RuleDiminishing, Denominator: AttackSpeedDenominator, Cap: 130, HardCap: 150, Label: "Attack Speed", Tracked: true},
	model.StatDefPen:           {Kind: RuleDiminishing, Denominator: DefPenDenominator, Cap: 100, HardCap: 100, Label: "Defense Penetration", Tracked: true},
	model.StatBossDamage:       {Kind: RuleAdditive, Cap: NoCap, Label: "Boss Monster Damage", Tracked: true},
	model.StatNormalDamage:     {Kind: RuleAdditive, Cap: NoCap, Label: "Normal Monster Damage", Tracked: true},
	model.StatSkillCoeff:       {Kind: RuleAdditive, Cap: 1000, Label: "Skill Coefficient", Tracked: true},
	model.StatSkillMastery:     {Kind: RuleAdditive, Cap: 100, Label: "Skill Mastery", Tracked: true},
	model.StatSkillMasteryBoss: {Kind: RuleAdditive, Cap: 100, Label: "Skill Mastery (Boss)", Tracked: true},
	model.StatMinDamage:        {Kind: RuleAdditive, Cap: 100, Label: "Min Damage Multiplier", Tracked: true},
	model.StatMaxDamage:        {Kind: RuleAdditive, Cap: 100, Label: "Max Damage Multiplier", Tracked: true},
}

func init() {
	for id, r := range StatRules {
		if r.Kind == RuleUnset {
			panic(fmt.Sprintf("data: stat %s has no rule binding", model.StatID(id)))
		}
		if r.Kind == RuleDiminishing && r.Denominator <= 0 {
			panic(fmt.Sprintf("data: stat %s has diminishing rule without denominator", model.StatID(id)))
		}
	}
}

// RuleFor returns the binding for id.
func RuleFor(id model.StatID) (StatRule, error) {
	if !id.Valid() {
		return StatRule{}, fmt.Errorf("%w: %s", model.ErrInvalidStatKey, id)
	}
	return StatRules[id], nil
}

// TrackedStats returns the stats that appear in equivalency and prediction tables.
func TrackedStats() []model.StatID {
	ids := make([]model.StatID, 0, model.StatCount)
	for id, r := range StatRules {
		if r.Tracked {
			ids = append(ids, model.StatID(id))
		}
	}
	return ids
}
