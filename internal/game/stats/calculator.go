package stats

import (
	"fmt"

	"github.com/udisondev/dpscalc/internal/data"
	"github.com/udisondev/dpscalc/internal/game/combat"
	"github.com/udisondev/dpscalc/internal/model"
)

// Calculator is a chainable wrapper around a private copy of a stat snapshot.
// Mutators return the receiver. The first structural error (bad stat id,
// undefined inverse) sticks: later mutations are ignored and every Compute
// call returns it.
//
// A Calculator is not safe for concurrent use; Clone it per goroutine.
type Calculator struct {
	state   State
	initial State

	baseBossDPS   float64
	baseNormalDPS float64

	err error
}

type options struct {
	character  model.Character
	weaponOver *float64
	passives   data.PassiveFunc
	cache      *BaselineCache
}

// Option configures a Calculator.
type Option func(*options)

// WithCharacter supplies class, level, skill levels and weapon attack bonus.
func WithCharacter(ch model.Character) Option {
	return func(o *options) { o.character = ch }
}

// WithWeaponAttackBonus overrides the character's weapon attack bonus (percent).
func WithWeaponAttackBonus(pct float64) Option {
	return func(o *options) { o.weaponOver = &pct }
}

// WithPassives replaces the class passive provider.
func WithPassives(fn data.PassiveFunc) Option {
	return func(o *options) { o.passives = fn }
}

// WithBaselineCache shares baseline DPS evaluation across calculators.
func WithBaselineCache(c *BaselineCache) Option {
	return func(o *options) { o.cache = c }
}

// NewCalculator copies s and computes boss and normal baseline DPS.
func NewCalculator(s model.Snapshot, opts ...Option) *Calculator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	st := NewState(s, o.character, o.passives)
	if o.weaponOver != nil {
		st.Ctx.WeaponAttackBonus = *o.weaponOver
	}

	c := &Calculator{state: st, initial: st}
	if o.cache != nil {
		c.baseBossDPS, c.baseNormalDPS = o.cache.Baselines(s)
	} else {
		c.baseBossDPS = combat.DPS(s, model.CategoryBoss)
		c.baseNormalDPS = combat.DPS(s, model.CategoryNormal)
	}
	return c
}

// NewCalculatorForBuild is NewCalculator over a build's stats and character.
func NewCalculatorForBuild(b model.Build, opts ...Option) *Calculator {
	return NewCalculator(b.Stats, append([]Option{WithCharacter(b.Character)}, opts...)...)
}

// Clone returns an independent calculator with the same current state,
// initial state and baselines.
func (c *Calculator) Clone() *Calculator {
	cp := *c
	return &cp
}

// Err returns the sticky error, if any.
func (c *Calculator) Err() error {
	return c.err
}

// Run applies steps in order.
func (c *Calculator) Run(steps ...Step) *Calculator {
	if c.err != nil {
		return c
	}
	next, err := Pipeline(steps).Run(c.state)
	if err != nil {
		c.err = err
		return c
	}
	c.state = next
	return c
}

func (c *Calculator) AddAttack(delta float64) *Calculator { return c.Run(AddAttack(delta)) }
func (c *Calculator) SubtractAttack(delta float64) *Calculator { return c.Run(SubtractAttack(delta)) }

func (c *Calculator) AddMainStat(delta float64) *Calculator { return c.Run(AddMainStat(delta)) }
func (c *Calculator) SubtractMainStat(delta float64) *Calculator {
	return c.Run(SubtractMainStat(delta))
}

func (c *Calculator) AddMainStatPct(delta float64) *Calculator { return c.Run(AddMainStatPct(delta)) }
func (c *Calculator) SubtractMainStatPct(delta float64) *Calculator {
	return c.Run(SubtractMainStatPct(delta))
}

func (c *Calculator) AddPercentageStat(id model.StatID, delta float64) *Calculator {
	return c.Run(AddPercentageStat(id, delta))
}

func (c *Calculator) SubtractPercentageStat(id model.StatID, delta float64) *Calculator {
	return c.Run(SubtractPercentageStat(id, delta))
}

func (c *Calculator) AddMultiplicativeStat(id model.StatID, delta float64) *Calculator {
	return c.Run(AddMultiplicativeStat(id, delta))
}

func (c *Calculator) SubtractMultiplicativeStat(id model.StatID, delta float64) *Calculator {
	return c.Run(SubtractMultiplicativeStat(id, delta))
}

func (c *Calculator) AddDiminishingReturnStat(id model.StatID, delta, denominator float64) *Calculator {
	return c.Run(AddDiminishingReturnStat(id, delta, denominator))
}

func (c *Calculator) SubtractDiminishingReturnStat(id model.StatID, delta, denominator float64) *Calculator {
	return c.Run(SubtractDiminishingReturnStat(id, delta, denominator))
}

// Apply adds delta to id using its bound rule.
func (c *Calculator) Apply(id model.StatID, delta float64) *Calculator { return c.Run(Apply(id, delta)) }

// Remove undoes Apply(id, delta).
func (c *Calculator) Remove(id model.StatID, delta float64) *Calculator { return c.Run(Remove(id, delta)) }

func (c *Calculator) SetStat(id model.StatID, v float64) *Calculator { return c.Run(SetStat(id, v)) }

// Reset restores the snapshot captured at construction and clears the sticky error.
func (c *Calculator) Reset() *Calculator {
	c.state = c.initial
	c.err = nil
	return c
}

// Stats returns a copy of the current snapshot.
func (c *Calculator) Stats() model.Snapshot {
	return c.state.Stats
}

// Context returns the current derived context.
func (c *Calculator) Context() Context {
	return c.state.Ctx
}

// BaseBossDPS is the boss DPS of the snapshot at construction.
func (c *Calculator) BaseBossDPS() float64 { return c.baseBossDPS }

// BaseNormalDPS is the normal-monster DPS of the snapshot at construction.
func (c *Calculator) BaseNormalDPS() float64 { return c.baseNormalDPS }

// BaselineDPS returns the construction-time DPS for category.
func (c *Calculator) BaselineDPS(category model.TargetCategory) (float64, error) {
	switch category {
	case model.CategoryBoss:
		return c.baseBossDPS, nil
	case model.CategoryNormal:
		return c.baseNormalDPS, nil
	default:
		return 0, fmt.Errorf("%w: %s", model.ErrInvalidCategory, category)
	}
}

// Compute evaluates the current snapshot.
func (c *Calculator) Compute(category model.TargetCategory) (combat.Breakdown, error) {
	if c.err != nil {
		return combat.Breakdown{}, c.err
	}
	if !category.Valid() {
		return combat.Breakdown{}, fmt.Errorf("%w: %s", model.ErrInvalidCategory, category)
	}
	return combat.Compute(c.state.Stats, category), nil
}

// ComputeDPS returns the current DPS for category.
func (c *Calculator) ComputeDPS(category model.TargetCategory) (float64, error) {
	b, err := c.Compute(category)
	if err != nil {
		return 0, err
	}
	return b.DPS, nil
}

// ComputeDPSGain returns the percentage gain of the current DPS over baseline.
// A zero or invalid baseline fails with combat.ErrInvalidDPS.
func (c *Calculator) ComputeDPSGain(baseline float64, category model.TargetCategory) (float64, error) {
	dps, err := c.ComputeDPS(category)
	if err != nil {
		return 0, err
	}
	return combat.DPSGain(baseline, dps)
}
