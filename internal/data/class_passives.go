package data

// ComplexStatChanges is the set of passive contributions that do not map onto a
// plain snapshot stat and have to be folded in by the calculation service.
type ComplexStatChanges struct {
	FinalAttack float64 // percent, scales flat attack increases
}

// PassiveFunc resolves class passive contributions for a character.
type PassiveFunc func(classID string, level int, skillLevels map[string]int) ComplexStatChanges

// passiveSkill describes a "final attack" passive progression.
type passiveSkill struct {
	perLevel      float64 // percent per skill level
	maxLevel      int
	requiredLevel int // minimum character level
}

var passiveSkills = map[string]passiveSkill{
	"combat-mastery": {perLevel: 0.5, maxLevel: 20, requiredLevel: 30},
	"marksmanship":   {perLevel: 0.4, maxLevel: 25, requiredLevel: 30},
}

// PassiveBonuses is the default PassiveFunc backed by the class table.
// Skill levels above the skill maximum are clamped; characters below the
// unlock level get nothing.
func PassiveBonuses(classID string, level int, skillLevels map[string]int) ComplexStatChanges {
	ci := GetClassInfo(classID)
	if ci == nil || ci.FinalAttackSkill == "" {
		return ComplexStatChanges{}
	}
	skill, ok := passiveSkills[ci.FinalAttackSkill]
	if !ok || level < skill.requiredLevel {
		return ComplexStatChanges{}
	}

	lvl := skillLevels[ci.FinalAttackSkill]
	if lvl > skill.maxLevel {
		lvl = skill.maxLevel
	}
	if lvl < 0 {
		lvl = 0
	}
	return ComplexStatChanges{FinalAttack: float64(lvl) * skill.perLevel}
}
