// Package prediction builds stat weight tables: the DPS gain of a fixed menu
// of increments for every tracked stat.
package prediction

import (
	"errors"
	"fmt"

	"github.com/udisondev/dpscalc/internal/data"
	"github.com/udisondev/dpscalc/internal/game/stats"
	"github.com/udisondev/dpscalc/internal/model"
)

// Entry is one increment of one stat.
type Entry struct {
	Increment float64
	Old       float64 // raw stat value before
	New       float64 // raw stat value after
	Gain      float64 // percent over the category baseline
	Valid     bool
	Reason    string // set when !Valid
}

// Row holds every increment of a single stat.
type Row struct {
	Stat     model.StatID
	Label    string
	Category model.TargetCategory
	Entries  []Entry
}

// Table is a complete prediction table for one build.
type Table struct {
	BaseBossDPS   float64
	BaseNormalDPS float64
	Rows          []Row
}

// Row returns the row for id.
func (t *Table) Row(id model.StatID) (Row, bool) {
	for _, r := range t.Rows {
		if r.Stat == id {
			return r, true
		}
	}
	return Row{}, false
}

// MenuFunc returns the increments evaluated for a stat.
type MenuFunc func(model.StatID) []float64

type options struct {
	calcOpts []stats.Option
	menu     MenuFunc
	stats    []model.StatID
}

// Option configures Predict.
type Option func(*options)

// WithCalculatorOptions forwards options to the Calculator.
func WithCalculatorOptions(opts ...stats.Option) Option {
	return func(o *options) { o.calcOpts = append(o.calcOpts, opts...) }
}

// WithMenu replaces the default increment menus (data.Increments).
func WithMenu(fn MenuFunc) Option {
	return func(o *options) { o.menu = fn }
}

// WithStats restricts the table to the given stats.
func WithStats(ids ...model.StatID) Option {
	return func(o *options) { o.stats = ids }
}

// Predict evaluates every increment of every stat against build b.
// A zero baseline marks entries invalid rather than failing.
func Predict(b model.Build, opts ...Option) (*Table, error) {
	o := options{menu: data.Increments, stats: data.TrackedStats()}
	for _, opt := range opts {
		opt(&o)
	}

	base := stats.NewCalculatorForBuild(b, o.calcOpts...)
	t := &Table{
		BaseBossDPS:   base.BaseBossDPS(),
		BaseNormalDPS: base.BaseNormalDPS(),
		Rows:          make([]Row, 0, len(o.stats)),
	}

	for _, id := range o.stats {
		rule, err := data.RuleFor(id)
		if err != nil {
			return nil, err
		}
		row := Row{Stat: id, Label: rule.Label, Category: model.CategoryFor(id)}

		old := base.Stats()[id]
		for _, inc := range o.menu(id) {
			e, err := evaluate(base, id, inc, old)
			if err != nil {
				return nil, fmt.Errorf("predicting %s +%v: %w", id, inc, err)
			}
			row.Entries = append(row.Entries, e)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func evaluate(base *stats.Calculator, id model.StatID, inc, old float64) (Entry, error) {
	e := Entry{Increment: inc, Old: old}

	probe, gain, err := base.Probe(id, inc)
	if err != nil {
		if errors.Is(err, model.ErrInvalidStatKey) || errors.Is(err, model.ErrInvalidCategory) {
			return Entry{}, err
		}
		e.Reason = err.Error()
		if probe != nil && probe.Err() == nil {
			e.New = probe.Stats()[id]
		}
		return e, nil
	}

	e.New = probe.Stats()[id]
	e.Gain = gain
	e.Valid = true
	return e, nil
}
