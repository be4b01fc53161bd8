package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/dpscalc/internal/data"
	"github.com/udisondev/dpscalc/internal/db"
	"github.com/udisondev/dpscalc/internal/game/equivalency"
	"github.com/udisondev/dpscalc/internal/game/prediction"
	"github.com/udisondev/dpscalc/internal/game/stats"
	"github.com/udisondev/dpscalc/internal/model"
)

// buildSource is the -build / -db flag pair.
type buildSource struct {
	file   string
	dbName string
}

func (s *buildSource) register(fs *flag.FlagSet) {
	fs.StringVar(&s.file, "build", "", "build YAML file")
	fs.StringVar(&s.dbName, "db", "", "name of a stored build")
}

func (s *buildSource) load(ctx context.Context, env *appEnv) (model.Build, error) {
	switch {
	case s.file != "" && s.dbName != "":
		return model.Build{}, errors.New("-build and -db are mutually exclusive")
	case s.file != "":
		return model.LoadBuildFile(s.file)
	case s.dbName != "":
		store, err := openStore(ctx, env)
		if err != nil {
			return model.Build{}, err
		}
		defer store.Close()

		b, err := store.Builds().Load(ctx, s.dbName)
		if err != nil {
			return model.Build{}, err
		}
		if b == nil {
			return model.Build{}, fmt.Errorf("build %q not found", s.dbName)
		}
		return *b, nil
	default:
		return model.Build{}, errors.New("one of -build or -db is required")
	}
}

func openStore(ctx context.Context, env *appEnv) (*db.DB, error) {
	dsn := env.cfg.Database.DSN()
	store, err := db.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, dsn); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func calcOptions(env *appEnv) []stats.Option {
	return []stats.Option{stats.WithBaselineCache(stats.NewBaselineCache(env.cfg.BaselineCacheSize))}
}

func newFlagSet(env *appEnv, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.out)
	return fs
}

func runDPS(ctx context.Context, env *appEnv, args []string) error {
	fs := newFlagSet(env, "dps")
	var src buildSource
	src.register(fs)
	categoryName := fs.String("category", "boss", "target category: boss or normal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	category, err := model.ParseCategory(*categoryName)
	if err != nil {
		return err
	}
	b, err := src.load(ctx, env)
	if err != nil {
		return err
	}

	calc := stats.NewCalculatorForBuild(b, calcOptions(env)...)
	breakdown, err := calc.Compute(category)
	if err != nil {
		return fmt.Errorf("computing %s DPS: %w", category, err)
	}
	printBreakdown(env.out, b, breakdown)
	return nil
}

func runEquiv(ctx context.Context, env *appEnv, args []string) error {
	fs := newFlagSet(env, "equiv")
	var src buildSource
	src.register(fs)
	statName := fs.String("stat", "", "source stat key, e.g. critRate")
	value := fs.Float64("value", 0, "hypothetical increase of the source stat")
	if err := fs.Parse(args); err != nil {
		return err
	}

	source, err := model.ParseStatID(*statName)
	if err != nil {
		return err
	}
	b, err := src.load(ctx, env)
	if err != nil {
		return err
	}

	solver := equivalency.NewSolver(equivalency.Config{
		MaxIterations:    env.cfg.Solver.MaxIterations,
		Tolerance:        env.cfg.Solver.Tolerance,
		UnboundedCeiling: env.cfg.Solver.UnboundedCeiling,
	}, equivalency.WithCalculatorOptions(calcOptions(env)...))

	res, err := solver.Solve(b, source, *value)
	if err != nil {
		return fmt.Errorf("solving equivalency: %w", err)
	}
	if res == nil {
		fmt.Fprintln(env.out, "no equivalency for a zero increase")
		return nil
	}
	printEquivalency(env.out, res)
	return nil
}

func runPredict(ctx context.Context, env *appEnv, args []string) error {
	fs := newFlagSet(env, "predict")
	var src buildSource
	src.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, err := src.load(ctx, env)
	if err != nil {
		return err
	}

	table, err := prediction.Predict(b,
		prediction.WithCalculatorOptions(calcOptions(env)...),
		prediction.WithMenu(menuFromConfig(env)),
	)
	if err != nil {
		return fmt.Errorf("predicting: %w", err)
	}
	printPrediction(env.out, table)
	return nil
}

// menuFromConfig uses configured increment menus where present.
func menuFromConfig(env *appEnv) prediction.MenuFunc {
	p := env.cfg.Prediction
	return func(id model.StatID) []float64 {
		var override []float64
		switch data.StatRules[id].Kind {
		case data.RuleAttack:
			override = p.FlatAttack
		case data.RuleMainStat:
			override = p.MainStat
		default:
			override = p.Percent
		}
		if len(override) > 0 {
			return override
		}
		return data.Increments(id)
	}
}

// compareRow is one build's result in `dpscalc compare`.
type compareRow struct {
	name      string
	bossDPS   float64
	normalDPS float64
}

func runCompare(ctx context.Context, env *appEnv, args []string) error {
	fs := newFlagSet(env, "compare")
	if err := fs.Parse(args); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) < 2 {
		return errors.New("compare needs at least two build files")
	}

	opts := calcOptions(env)
	rows := make([]compareRow, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := model.LoadBuildFile(path)
			if err != nil {
				return err
			}
			calc := stats.NewCalculatorForBuild(b, opts...)
			rows[i] = compareRow{name: b.Name, bossDPS: calc.BaseBossDPS(), normalDPS: calc.BaseNormalDPS()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("comparing builds: %w", err)
	}

	printComparison(env.out, rows)
	return nil
}

func runSave(ctx context.Context, env *appEnv, args []string) error {
	fs := newFlagSet(env, "save")
	file := fs.String("build", "", "build YAML file")
	name := fs.String("name", "", "store under this name instead of the file's")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-build is required")
	}

	b, err := model.LoadBuildFile(*file)
	if err != nil {
		return err
	}
	if *name != "" {
		b.Name = *name
	}

	store, err := openStore(ctx, env)
	if err != nil {
		return err
	}
	defer store.Close()

	changed, err := store.Builds().Save(ctx, b)
	if err != nil {
		return err
	}
	slog.Info("build stored", "name", b.Name, "fingerprint", b.Fingerprint().Short(), "changed", changed)
	return nil
}

func runList(ctx context.Context, env *appEnv, args []string) error {
	fs := newFlagSet(env, "list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(ctx, env)
	if err != nil {
		return err
	}
	defer store.Close()

	builds, err := store.Builds().List(ctx)
	if err != nil {
		return err
	}
	printBuildList(env.out, builds)
	return nil
}
