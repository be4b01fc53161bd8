package stats

import (
	"fmt"

	"github.com/udisondev/dpscalc/internal/data"
	"github.com/udisondev/dpscalc/internal/game/combat"
	"github.com/udisondev/dpscalc/internal/model"
)

// Step is a pure transformation of a State.
type Step func(State) (State, error)

// Pipeline applies steps in order. Order matters: main stat percentage
// normalizes against the main stat as left by the preceding steps.
type Pipeline []Step

// Then returns a new pipeline with steps appended.
func (p Pipeline) Then(steps ...Step) Pipeline {
	out := make(Pipeline, 0, len(p)+len(steps))
	out = append(out, p...)
	return append(out, steps...)
}

// Run applies the pipeline to st. On error the input state is returned unchanged.
func (p Pipeline) Run(st State) (State, error) {
	cur := st
	for i, step := range p {
		next, err := step(cur)
		if err != nil {
			return st, fmt.Errorf("pipeline step %d: %w", i, err)
		}
		cur = next
	}
	return cur, nil
}

func checkStat(id model.StatID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %s", model.ErrInvalidStatKey, id)
	}
	return nil
}

// scaledAttack converts a flat attack delta into effective attack:
// delta × (1 + weapon bonus) × (1 + final attack).
func scaledAttack(ctx Context, delta float64) float64 {
	return delta * (1 + ctx.WeaponAttackBonus/100) * (1 + ctx.FinalAttack/100)
}

// AddAttack adds flat attack, scaled by weapon attack bonus and final attack passive.
func AddAttack(delta float64) Step {
	return func(st State) (State, error) {
		st.put(model.StatAttack, st.Stats[model.StatAttack]+scaledAttack(st.Ctx, delta))
		return st, nil
	}
}

// SubtractAttack undoes AddAttack(delta).
func SubtractAttack(delta float64) Step {
	return AddAttack(-delta)
}

// addMainStatGain folds a main stat change into attack (1:1) and statDamage (100:1).
func addMainStatGain(st *State, gain float64) {
	st.put(model.StatMainStat, st.Stats[model.StatMainStat]+gain)
	st.put(model.StatAttack, st.Stats[model.StatAttack]+gain)
	st.put(model.StatStatDamage, st.Stats[model.StatStatDamage]+gain/data.MainStatPerStatDamage)
}

// AddMainStat adds flat primary main stat.
func AddMainStat(delta float64) Step {
	return func(st State) (State, error) {
		addMainStatGain(&st, delta)
		return st, nil
	}
}

// SubtractMainStat undoes AddMainStat(delta).
func SubtractMainStat(delta float64) Step {
	return AddMainStat(-delta)
}

// AddMainStatPct raises main stat percentage by delta points.
//
// Main stat % compounds on the base main stat, so the current total is first
// normalized back to base (excluding defense conversion, which % does not
// scale), then re-scaled with the new percentage:
//
//	base  = (total - defConv) / (1 + pct/100)
//	total'= base × (1 + (pct+delta)/100) + defConv
func AddMainStatPct(delta float64) Step {
	return func(st State) (State, error) {
		cur := st.Ctx.MainStatPct
		denom := 1 + cur/100
		if denom == 0 {
			return st, fmt.Errorf("%w: main stat %% of %v", combat.ErrDegenerateInverse, cur)
		}

		defConv := st.Ctx.DefenseMainStat()
		base := (st.Ctx.PrimaryMainStat - defConv) / denom
		newTotal := base*(1+(cur+delta)/100) + defConv

		addMainStatGain(&st, newTotal-st.Ctx.PrimaryMainStat)
		st.put(model.StatMainStatPct, cur+delta)
		return st, nil
	}
}

// SubtractMainStatPct undoes AddMainStatPct(delta).
func SubtractMainStatPct(delta float64) Step {
	return AddMainStatPct(-delta)
}

// AddPercentageStat adds delta to id.
func AddPercentageStat(id model.StatID, delta float64) Step {
	return func(st State) (State, error) {
		if err := checkStat(id); err != nil {
			return st, err
		}
		st.put(id, combat.Additive(st.Stats[id], delta))
		return st, nil
	}
}

// SubtractPercentageStat undoes AddPercentageStat(id, delta).
func SubtractPercentageStat(id model.StatID, delta float64) Step {
	return AddPercentageStat(id, -delta)
}

// AddMultiplicativeStat compounds delta into id.
func AddMultiplicativeStat(id model.StatID, delta float64) Step {
	return func(st State) (State, error) {
		if err := checkStat(id); err != nil {
			return st, err
		}
		st.put(id, combat.Multiplicative(st.Stats[id], delta))
		return st, nil
	}
}

// SubtractMultiplicativeStat undoes AddMultiplicativeStat(id, delta).
func SubtractMultiplicativeStat(id model.StatID, delta float64) Step {
	return func(st State) (State, error) {
		if err := checkStat(id); err != nil {
			return st, err
		}
		v, err := combat.RemoveMultiplicative(st.Stats[id], delta)
		if err != nil {
			return st, fmt.Errorf("subtracting %s: %w", id, err)
		}
		st.put(id, v)
		return st, nil
	}
}

// AddDiminishingReturnStat stacks delta into id against the ceiling denominator.
func AddDiminishingReturnStat(id model.StatID, delta, denominator float64) Step {
	return func(st State) (State, error) {
		if err := checkStat(id); err != nil {
			return st, err
		}
		v, err := combat.DiminishingReturn(st.Stats[id], delta, denominator)
		if err != nil {
			return st, fmt.Errorf("adding %s: %w", id, err)
		}
		st.put(id, v)
		return st, nil
	}
}

// SubtractDiminishingReturnStat undoes AddDiminishingReturnStat(id, delta, denominator).
func SubtractDiminishingReturnStat(id model.StatID, delta, denominator float64) Step {
	return func(st State) (State, error) {
		if err := checkStat(id); err != nil {
			return st, err
		}
		v, err := combat.RemoveDiminishingReturn(st.Stats[id], delta, denominator)
		if err != nil {
			return st, fmt.Errorf("subtracting %s: %w", id, err)
		}
		st.put(id, v)
		return st, nil
	}
}

// SetStat overwrites id with v.
func SetStat(id model.StatID, v float64) Step {
	return func(st State) (State, error) {
		if err := checkStat(id); err != nil {
			return st, err
		}
		st.put(id, v)
		return st, nil
	}
}

// Apply adds delta to id using the stat's bound rule from data.StatRules.
func Apply(id model.StatID, delta float64) Step {
	rule, err := data.RuleFor(id)
	if err != nil {
		return failed(err)
	}
	switch rule.Kind {
	case data.RuleAttack:
		return AddAttack(delta)
	case data.RuleMainStat:
		return AddMainStat(delta)
	case data.RuleMainStatPct:
		return AddMainStatPct(delta)
	case data.RuleMultiplicative:
		return AddMultiplicativeStat(id, delta)
	case data.RuleDiminishing:
		return AddDiminishingReturnStat(id, delta, rule.Denominator)
	default:
		return AddPercentageStat(id, delta)
	}
}

// Remove undoes Apply(id, delta).
func Remove(id model.StatID, delta float64) Step {
	rule, err := data.RuleFor(id)
	if err != nil {
		return failed(err)
	}
	switch rule.Kind {
	case data.RuleAttack:
		return SubtractAttack(delta)
	case data.RuleMainStat:
		return SubtractMainStat(delta)
	case data.RuleMainStatPct:
		return SubtractMainStatPct(delta)
	case data.RuleMultiplicative:
		return SubtractMultiplicativeStat(id, delta)
	case data.RuleDiminishing:
		return SubtractDiminishingReturnStat(id, delta, rule.Denominator)
	default:
		return SubtractPercentageStat(id, delta)
	}
}

func failed(err error) Step {
	return func(st State) (State, error) {
		return st, err
	}
}
