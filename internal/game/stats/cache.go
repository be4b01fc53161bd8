package stats

import (
	"log/slog"
	"math"
	"sync"

	"github.com/udisondev/dpscalc/internal/game/combat"
	"github.com/udisondev/dpscalc/internal/model"
)

// DefaultBaselineCacheSize bounds the number of remembered snapshots.
const DefaultBaselineCacheSize = 256

type baselines struct {
	boss   float64
	normal float64
}

// BaselineCache memoizes boss and normal DPS per snapshot. Baseline DPS
// depends on the snapshot alone, and Snapshot is a comparable array, so the
// snapshot value itself is the key: any stat change is a different key.
//
// Safe for concurrent use.
type BaselineCache struct {
	mu      sync.Mutex
	entries map[model.Snapshot]baselines
	max     int
}

// NewBaselineCache creates a cache holding up to size snapshots (<=0 → default).
func NewBaselineCache(size int) *BaselineCache {
	if size <= 0 {
		size = DefaultBaselineCacheSize
	}
	return &BaselineCache{
		entries: make(map[model.Snapshot]baselines, size),
		max:     size,
	}
}

// Baselines returns boss and normal DPS for s, computing them on a miss.
// Snapshots holding NaN never equal themselves as map keys, so they are
// computed every time and never stored.
func (c *BaselineCache) Baselines(s model.Snapshot) (boss, normal float64) {
	if hasNaN(s) {
		return combat.DPS(s, model.CategoryBoss), combat.DPS(s, model.CategoryNormal)
	}

	c.mu.Lock()
	if b, ok := c.entries[s]; ok {
		c.mu.Unlock()
		return b.boss, b.normal
	}
	c.mu.Unlock()

	b := baselines{
		boss:   combat.DPS(s, model.CategoryBoss),
		normal: combat.DPS(s, model.CategoryNormal),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		slog.Debug("baseline cache full, resetting", "size", len(c.entries))
		clear(c.entries)
	}
	c.entries[s] = b
	return b.boss, b.normal
}

// Len returns the number of cached snapshots.
func (c *BaselineCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func hasNaN(s model.Snapshot) bool {
	for _, v := range s {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
