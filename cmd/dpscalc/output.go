package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/udisondev/dpscalc/internal/data"
	"github.com/udisondev/dpscalc/internal/db"
	"github.com/udisondev/dpscalc/internal/game/combat"
	"github.com/udisondev/dpscalc/internal/game/equivalency"
	"github.com/udisondev/dpscalc/internal/game/prediction"
	"github.com/udisondev/dpscalc/internal/model"
)

func newTab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func label(id model.StatID) string {
	if r, err := data.RuleFor(id); err == nil && r.Label != "" {
		return r.Label
	}
	return id.String()
}

func printBreakdown(w io.Writer, b model.Build, br combat.Breakdown) {
	fmt.Fprintf(w, "%s (%s) vs %s\n\n", b.Name, b.Character.ClassID, br.Category)
	tw := newTab(w)
	rows := []struct {
		name string
		v    float64
	}{
		{"base damage", br.BaseDamage},
		{"base hit damage", br.BaseHitDamage},
		{"non-crit min", br.NonCritMin},
		{"non-crit max", br.NonCritMax},
		{"non-crit avg", br.NonCritAvg},
		{"crit min", br.CritMin},
		{"crit max", br.CritMax},
		{"crit avg", br.CritAvg},
		{"expected damage", br.ExpectedDamage},
		{"damage amp ×", br.DamageAmpMultiplier},
		{"final damage ×", br.FinalDamageMultiplier},
		{"attack speed ×", br.AttackSpeedMultiplier},
		{"DPS", br.DPS},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\n", r.name, r.v)
	}
	tw.Flush()
}

func printEquivalency(w io.Writer, res *equivalency.Result) {
	fmt.Fprintf(w, "%s +%g → %+.2f%% %s DPS\n\n", label(res.SourceStat), res.SourceValue, res.TargetGain, res.Category)
	tw := newTab(w)
	fmt.Fprintln(tw, "STAT\tEQUIVALENT\tGAIN\tNOTE")
	for _, e := range res.Entries {
		switch e.Outcome {
		case equivalency.OutcomeMatched:
			fmt.Fprintf(tw, "%s\t+%.2f\t%+.2f%%\t\n", label(e.Stat), e.Value, e.Gain)
		default:
			fmt.Fprintf(tw, "%s\t-\t-\t%s: %s\n", label(e.Stat), e.Outcome, e.Reason)
		}
	}
	tw.Flush()
}

func printPrediction(w io.Writer, t *prediction.Table) {
	fmt.Fprintf(w, "baseline DPS: boss %.2f, normal %.2f\n\n", t.BaseBossDPS, t.BaseNormalDPS)
	tw := newTab(w)
	fmt.Fprintln(tw, "STAT\tINCREMENT\tOLD\tNEW\tGAIN")
	for _, row := range t.Rows {
		for _, e := range row.Entries {
			gain := "-"
			if e.Valid {
				gain = fmt.Sprintf("%+.2f%%", e.Gain)
			}
			fmt.Fprintf(tw, "%s\t+%g\t%.2f\t%.2f\t%s\n", row.Label, e.Increment, e.Old, e.New, gain)
		}
	}
	tw.Flush()
}

func printComparison(w io.Writer, rows []compareRow) {
	tw := newTab(w)
	fmt.Fprintln(tw, "BUILD\tBOSS DPS\tΔ\tNORMAL DPS\tΔ")
	ref := rows[0]
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%.2f\t%s\n",
			r.name, r.bossDPS, relative(ref.bossDPS, r.bossDPS), r.normalDPS, relative(ref.normalDPS, r.normalDPS))
	}
	tw.Flush()
}

func relative(baseline, v float64) string {
	gain, err := combat.DPSGain(baseline, v)
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", gain)
}

func printBuildList(w io.Writer, builds []db.BuildSummary) {
	tw := newTab(w)
	fmt.Fprintln(tw, "NAME\tCLASS\tLEVEL\tFINGERPRINT\tUPDATED")
	for _, b := range builds {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", b.Name, b.ClassID, b.Level, b.Fingerprint.Short(), b.UpdatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
