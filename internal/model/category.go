package model

import (
	"fmt"
	"strings"
)

// TargetCategory selects which parallel modifier pair applies:
// bossDamage/skillMasteryBoss for bosses, normalDamage for normal monsters.
type TargetCategory uint8

const (
	CategoryBoss TargetCategory = iota
	CategoryNormal
)

// Valid reports whether c is Boss or Normal.
func (c TargetCategory) Valid() bool {
	return c == CategoryBoss || c == CategoryNormal
}

func (c TargetCategory) String() string {
	switch c {
	case CategoryBoss:
		return "boss"
	case CategoryNormal:
		return "normal"
	default:
		return fmt.Sprintf("TargetCategory(%d)", uint8(c))
	}
}

// ParseCategory parses "boss" or "normal".
func ParseCategory(s string) (TargetCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boss":
		return CategoryBoss, nil
	case "normal":
		return CategoryNormal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// CategoryFor returns the category a stat is evaluated against.
// normalDamage only matters against normal monsters; everything else,
// bossDamage included, is judged on boss DPS.
func CategoryFor(id StatID) TargetCategory {
	if id == StatNormalDamage {
		return CategoryNormal
	}
	return CategoryBoss
}
