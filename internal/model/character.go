package model

// Character carries the metadata the engine needs besides raw stats.
// It is supplied by whoever owns the build (a build file, the build store).
type Character struct {
	ClassID           string         `yaml:"class"`
	Level             int            `yaml:"level"`
	WeaponAttackBonus float64        `yaml:"weapon_attack_bonus"` // percent
	SkillLevels       map[string]int `yaml:"skill_levels,omitempty"`
}

// Build is a named character with its current stat snapshot.
type Build struct {
	Name      string    `yaml:"name"`
	Character Character `yaml:"character"`
	Stats     Snapshot  `yaml:"stats"`
}
