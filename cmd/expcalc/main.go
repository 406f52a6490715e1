// expcalc evaluates creature progression (level, experience to next level,
// progress and nature) for a YAML roster of (name, curve, experience) records.
//
// Usage:
//
//	go run ./cmd/expcalc roster.yaml
//	go run ./cmd/expcalc -curves
//	go run ./cmd/expcalc -curves -levels 1,10,50,100
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/udisondev/expgrowth/internal/batch"
	"github.com/udisondev/expgrowth/internal/config"
	"github.com/udisondev/expgrowth/internal/data"
)

const ConfigPath = "config/expcalc.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("expcalc", flag.ContinueOnError)
	showCurves := fs.Bool("curves", false, "print growth curve thresholds instead of evaluating a roster")
	levelList := fs.String("levels", "1,2,10,25,50,75,99,100", "levels shown with -curves")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfgPath := ConfigPath
	if p := os.Getenv("EXPGROWTH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadCalculator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Debug("config loaded",
		"path", cfgPath,
		"workers", cfg.Workers,
		"strict", cfg.Strict,
		"locale", cfg.Locale)

	if err := data.ValidateGrowthCurves(); err != nil {
		return fmt.Errorf("validating growth curves: %w", err)
	}

	rep, err := batch.NewReporter(cfg.Locale)
	if err != nil {
		return err
	}

	if *showCurves {
		levels, err := parseLevels(*levelList)
		if err != nil {
			return err
		}
		return rep.WriteCurves(stdout, levels)
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one roster file, got %d", fs.NArg())
	}

	roster, err := batch.LoadRoster(fs.Arg(0))
	if err != nil {
		return err
	}
	slog.Info("roster loaded", "path", fs.Arg(0), "creatures", len(roster.Creatures))

	results, err := batch.Evaluate(ctx, roster, batch.Options{
		Workers: cfg.Workers,
		Strict:  cfg.Strict,
	})
	if err != nil {
		return fmt.Errorf("evaluating roster: %w", err)
	}

	return rep.WriteResults(stdout, results)
}

// parseLevels parses a comma-separated level list ("1,50,100").
func parseLevels(s string) ([]int32, error) {
	parts := strings.Split(s, ",")
	levels := make([]int32, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing level %q: %w", part, err)
		}
		if n < data.MinLevel || n > data.MaxLevel {
			return nil, fmt.Errorf("level %d out of range [%d, %d]", n, data.MinLevel, data.MaxLevel)
		}
		levels = append(levels, int32(n))
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels in %q", s)
	}
	return levels, nil
}
