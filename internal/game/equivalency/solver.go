// Package equivalency finds, for a hypothetical increase of one stat, how much
// of every other stat yields the same DPS gain.
package equivalency

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/dpscalc/internal/data"
	"github.com/udisondev/dpscalc/internal/game/combat"
	"github.com/udisondev/dpscalc/internal/game/stats"
	"github.com/udisondev/dpscalc/internal/model"
)

// Search defaults.
const (
	DefaultMaxIterations    = 50
	DefaultTolerance        = 0.01 // percentage points
	DefaultUnboundedCeiling = 1e9
)

// Outcome classifies a single equivalency entry.
type Outcome uint8

const (
	OutcomeMatched       Outcome = iota // Value reproduces the target gain
	OutcomeIneffective                  // pair can never substitute (boss vs normal damage)
	OutcomeUnableToMatch                // cap reached or search budget exhausted before the target gain
	OutcomeInvalidDPS                   // baseline DPS is zero or not finite
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeIneffective:
		return "ineffective"
	case OutcomeUnableToMatch:
		return "unable to match"
	case OutcomeInvalidDPS:
		return "invalid dps"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Entry is the equivalent increase of one target stat.
type Entry struct {
	Stat       model.StatID
	Category   model.TargetCategory
	Outcome    Outcome
	Value      float64 // increment of Stat, valid for OutcomeMatched
	Gain       float64 // DPS gain verified at Value, or at the cap when the cap falls short
	Iterations int
	Reason     string
}

// Result is a full equivalency table for one source increase.
type Result struct {
	SourceStat  model.StatID
	SourceValue float64
	Category    model.TargetCategory
	TargetGain  float64 // percent
	Entries     []Entry
}

// Entry returns the entry for id.
func (r *Result) Entry(id model.StatID) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Stat == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Config bounds the per-stat search.
type Config struct {
	MaxIterations    int
	Tolerance        float64
	UnboundedCeiling float64 // search ceiling for stats without a cap
}

// DefaultConfig returns the standard search settings.
func DefaultConfig() Config {
	return Config{
		MaxIterations:    DefaultMaxIterations,
		Tolerance:        DefaultTolerance,
		UnboundedCeiling: DefaultUnboundedCeiling,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MaxIterations <= 0 {
		c.MaxIterations = d.MaxIterations
	}
	if c.Tolerance <= 0 {
		c.Tolerance = d.Tolerance
	}
	if c.UnboundedCeiling <= 0 {
		c.UnboundedCeiling = d.UnboundedCeiling
	}
	return c
}

// Solver computes equivalency tables. It holds no per-call state and is safe
// for concurrent use.
type Solver struct {
	cfg      Config
	calcOpts []stats.Option
	targets  []model.StatID
}

// Option configures a Solver.
type Option func(*Solver)

// WithCalculatorOptions forwards options to every Calculator the solver builds.
func WithCalculatorOptions(opts ...stats.Option) Option {
	return func(s *Solver) { s.calcOpts = append(s.calcOpts, opts...) }
}

// WithTargets restricts the table to the given stats.
func WithTargets(ids ...model.StatID) Option {
	return func(s *Solver) { s.targets = ids }
}

// NewSolver creates a Solver. Zero config fields fall back to defaults.
func NewSolver(cfg Config, opts ...Option) *Solver {
	s := &Solver{cfg: cfg.normalized(), targets: data.TrackedStats()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// isCrossCategory reports the boss/normal damage pair, which never substitutes.
func isCrossCategory(a, b model.StatID) bool {
	return (a == model.StatBossDamage && b == model.StatNormalDamage) ||
		(a == model.StatNormalDamage && b == model.StatBossDamage)
}

// Solve computes the equivalency table for adding value to source on build b.
// Returns nil, nil when value is 0.
//
// Structural problems (unknown stat, invalid target list, a source increase
// past a diminishing-return ceiling) are errors. Numeric edge cases such as a
// zero baseline or a stat at its cap are reported per entry.
func (s *Solver) Solve(b model.Build, source model.StatID, value float64) (*Result, error) {
	if !source.Valid() {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidStatKey, source)
	}
	for _, t := range s.targets {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: target %s", model.ErrInvalidStatKey, t)
		}
	}
	if value == 0 {
		return nil, nil
	}

	base := stats.NewCalculatorForBuild(b, s.calcOpts...)
	res := &Result{
		SourceStat:  source,
		SourceValue: value,
		Category:    model.CategoryFor(source),
	}

	_, gain, err := base.Probe(source, value)
	if err != nil {
		if isStructural(err) || errors.Is(err, combat.ErrDiminishingCeiling) {
			return nil, fmt.Errorf("evaluating %s %+g: %w", source, value, err)
		}
		s.fillAll(res, source, OutcomeInvalidDPS, err.Error())
		return res, nil
	}
	res.TargetGain = gain

	switch {
	case gain < 0:
		s.fillAll(res, source, OutcomeUnableToMatch,
			fmt.Sprintf("%s %+g lowers DPS by %.2f%%, only gains are matched", source, value, -gain))
		return res, nil
	case gain == 0:
		s.fillAll(res, source, OutcomeIneffective,
			fmt.Sprintf("%s %+g does not change DPS", source, value))
		return res, nil
	}

	for _, target := range s.targets {
		if target == source {
			continue
		}
		if isCrossCategory(source, target) {
			res.Entries = append(res.Entries, Entry{
				Stat:     target,
				Category: model.CategoryFor(target),
				Outcome:  OutcomeIneffective,
				Reason:   fmt.Sprintf("%s only applies to %s targets", target, model.CategoryFor(target)),
			})
			continue
		}

		e, err := s.search(base, target, gain)
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", target, err)
		}
		res.Entries = append(res.Entries, e)
	}
	return res, nil
}

func (s *Solver) fillAll(res *Result, source model.StatID, outcome Outcome, reason string) {
	for _, target := range s.targets {
		if target == source {
			continue
		}
		res.Entries = append(res.Entries, Entry{
			Stat:     target,
			Category: model.CategoryFor(target),
			Outcome:  outcome,
			Reason:   reason,
		})
	}
}

// search bisects the increment of target over [0, cap] until its gain is
// within tolerance of want. Only a converged value is reported as matched;
// a cap that falls short or an exhausted budget is OutcomeUnableToMatch.
func (s *Solver) search(base *stats.Calculator, target model.StatID, want float64) (Entry, error) {
	rule, err := data.RuleFor(target)
	if err != nil {
		return Entry{}, err
	}
	ceiling := rule.Cap
	if ceiling == data.NoCap {
		ceiling = s.cfg.UnboundedCeiling
	}
	if rule.Kind == data.RuleDiminishing && ceiling >= rule.Denominator {
		ceiling = math.Nextafter(rule.Denominator, math.Inf(-1))
	}

	e := Entry{Stat: target, Category: model.CategoryFor(target)}
	low, high := 0.0, ceiling

	for i := 0; i < s.cfg.MaxIterations; i++ {
		mid := (low + high) / 2
		_, gain, err := base.Probe(target, mid)
		if err != nil {
			return s.probeFailure(e, err)
		}
		e.Iterations = i + 1

		if math.Abs(gain-want) < s.cfg.Tolerance {
			e.Outcome = OutcomeMatched
			e.Value = mid
			e.Gain = gain
			return e, nil
		}
		if gain < want {
			low = mid
		} else {
			high = mid
		}
	}

	e.Outcome = OutcomeUnableToMatch
	if high == ceiling {
		_, capGain, err := base.Probe(target, ceiling)
		if err != nil {
			return s.probeFailure(e, err)
		}
		switch {
		case capGain <= 0:
			e.Gain = capGain
			e.Reason = fmt.Sprintf("%s has no effect on DPS", target)
		case capGain < want:
			e.Gain = capGain
			e.Reason = fmt.Sprintf("%s +%g (cap) gives only %.2f%%, need %.2f%%", target, ceiling, capGain, want)
		}
		if e.Reason != "" {
			slog.Debug("equivalency unable to match",
				"stat", target.String(),
				"cap", ceiling,
				"cap_gain", capGain,
				"want", want)
			return e, nil
		}
	}

	e.Reason = fmt.Sprintf("%s did not converge within %.2f%% in %d iterations", target, s.cfg.Tolerance, e.Iterations)
	slog.Debug("equivalency search exhausted",
		"stat", target.String(),
		"iterations", e.Iterations,
		"low", low,
		"high", high,
		"want", want)
	return e, nil
}

func (s *Solver) probeFailure(e Entry, err error) (Entry, error) {
	if isStructural(err) {
		return Entry{}, err
	}
	if errors.Is(err, combat.ErrDiminishingCeiling) {
		e.Outcome = OutcomeUnableToMatch
		e.Reason = fmt.Sprintf("%s is at its diminishing-return ceiling", e.Stat)
		return e, nil
	}
	e.Outcome = OutcomeInvalidDPS
	e.Reason = err.Error()
	return e, nil
}

func isStructural(err error) bool {
	return errors.Is(err, model.ErrInvalidStatKey) || errors.Is(err, model.ErrInvalidCategory)
}
