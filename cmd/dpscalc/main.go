// Command dpscalc evaluates character builds: DPS breakdown, stat
// equivalency tables, stat weight predictions, and a Postgres build store.
//
// Usage:
//
//	dpscalc dps     -build hero.yaml [-category boss|normal]
//	dpscalc equiv   -build hero.yaml -stat critRate -value 5
//	dpscalc predict -build hero.yaml
//	dpscalc compare a.yaml b.yaml c.yaml
//	dpscalc save    -build hero.yaml
//	dpscalc list
//
// Any command taking -build also accepts -db NAME to load a stored build.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/dpscalc/internal/config"
)

type command struct {
	name string
	desc string
	run  func(ctx context.Context, env *appEnv, args []string) error
}

var commands = []command{
	{"dps", "DPS breakdown of a build", runDPS},
	{"equiv", "equivalent increase of every stat for one stat increase", runEquiv},
	{"predict", "DPS gain per increment for every stat", runPredict},
	{"compare", "DPS of several build files side by side", runCompare},
	{"save", "store a build file in the database", runSave},
	{"list", "list stored builds", runList},
}

// appEnv is shared by all commands.
type appEnv struct {
	cfg config.App
	out io.Writer
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		printUsage(out)
		if len(args) == 0 {
			return fmt.Errorf("no command given")
		}
		return nil
	}

	paths, err := config.LoadPaths()
	if err != nil {
		return fmt.Errorf("resolving paths: %w", err)
	}
	cfg, err := config.LoadApp(paths.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", paths.Config, "log_level", cfg.LogLevel)

	env := &appEnv{cfg: cfg, out: out}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, env, args[1:])
		}
	}
	printUsage(out)
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: dpscalc <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.desc)
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
