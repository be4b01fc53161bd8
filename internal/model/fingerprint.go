package model

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies the full engine input of a build: character metadata
// and every stat value. Two builds with equal fingerprints evaluate identically.
type Fingerprint [blake2b.Size256]byte

// String returns the hex encoding.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first 12 hex characters, for logs and listings.
func (f Fingerprint) Short() string {
	return f.String()[:12]
}

// Fingerprint hashes the build's class, level, weapon bonus, skill levels (by
// sorted name) and stats (by StatID). The build name is not part of it.
func (b Build) Fingerprint() Fingerprint {
	buf := make([]byte, 0, 256)
	buf = appendString(buf, b.Character.ClassID)
	buf = binary.BigEndian.AppendUint64(buf, uint64(int64(b.Character.Level)))
	buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(b.Character.WeaponAttackBonus))

	names := make([]string, 0, len(b.Character.SkillLevels))
	for name := range b.Character.SkillLevels {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		buf = appendString(buf, name)
		buf = binary.BigEndian.AppendUint64(buf, uint64(int64(b.Character.SkillLevels[name])))
	}

	for _, v := range b.Stats {
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return blake2b.Sum256(buf)
}

func appendString(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
