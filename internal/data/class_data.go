package data

import "slices"

// Job branches.
const (
	BranchWarrior = "warrior"
	BranchMage    = "mage"
	BranchArcher  = "archer"
	BranchThief   = "thief"
)

// DarkKnightDefenseConversion is the share of defense the Dark Knight gains as main stat.
const DarkKnightDefenseConversion = 0.127

// ClassInfo holds metadata for a single job.
type ClassInfo struct {
	ID     string
	Name   string
	Branch string

	// DefenseToMainStat is the fraction of total defense converted into the
	// primary main stat. Zero for every job except Dark Knight.
	DefenseToMainStat float64

	// FinalAttackSkill names the passive granting "final attack" percent, empty if none.
	FinalAttackSkill string
}

var classTable map[string]*ClassInfo

func init() {
	classTable = map[string]*ClassInfo{
		// --- Warrior ---
		"hero":        {ID: "hero", Name: "Hero", Branch: BranchWarrior, FinalAttackSkill: "combat-mastery"},
		"paladin":     {ID: "paladin", Name: "Paladin", Branch: BranchWarrior, FinalAttackSkill: "combat-mastery"},
		"dark-knight": {ID: "dark-knight", Name: "Dark Knight", Branch: BranchWarrior, DefenseToMainStat: DarkKnightDefenseConversion, FinalAttackSkill: "combat-mastery"},

		// --- Mage ---
		"arch-mage-fp": {ID: "arch-mage-fp", Name: "Arch Mage (F/P)", Branch: BranchMage},
		"arch-mage-il": {ID: "arch-mage-il", Name: "Arch Mage (I/L)", Branch: BranchMage},
		"bishop":       {ID: "bishop", Name: "Bishop", Branch: BranchMage},

		// --- Archer ---
		"bowmaster": {ID: "bowmaster", Name: "Bowmaster", Branch: BranchArcher, FinalAttackSkill: "marksmanship"},
		"marksman":  {ID: "marksman", Name: "Marksman", Branch: BranchArcher, FinalAttackSkill: "marksmanship"},

		// --- Thief ---
		"night-lord": {ID: "night-lord", Name: "Night Lord", Branch: BranchThief},
		"shadower":   {ID: "shadower", Name: "Shadower", Branch: BranchThief},
	}
}

// GetClassInfo returns class metadata by id, or nil if unknown.
func GetClassInfo(classID string) *ClassInfo {
	return classTable[classID]
}

// ClassIDs returns all known class ids in sorted order.
func ClassIDs() []string {
	ids := make([]string, 0, len(classTable))
	for id := range classTable {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// DefenseConversionRate returns the defense→main stat rate for classID (0 for unknown).
func DefenseConversionRate(classID string) float64 {
	if ci := classTable[classID]; ci != nil {
		return ci.DefenseToMainStat
	}
	return 0
}
