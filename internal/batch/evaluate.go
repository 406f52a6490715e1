package batch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/expgrowth/internal/data"
	"github.com/udisondev/expgrowth/internal/game/progression"
)

// Options controls Evaluate.
type Options struct {
	Workers int
	Strict  bool // return the first record error instead of collecting it
}

// Result is the outcome for one roster record. Err is set when the record
// could not be evaluated; Progress is then zero or partially filled.
type Result struct {
	Name     string
	Curve    string
	Progress progression.Progress
	Err      error
}

// Evaluate computes progression for every creature, using up to
// opts.Workers goroutines. Results keep roster order.
func Evaluate(ctx context.Context, roster Roster, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(roster.Creatures))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range roster.Creatures {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := evaluateOne(c)
			results[i] = res
			if err == nil {
				return nil
			}
			if opts.Strict {
				return fmt.Errorf("creature %q: %w", c.Name, err)
			}
			slog.Warn("creature skipped",
				"name", c.Name,
				"curve", c.Curve.Raw,
				"error", err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("roster evaluated", "creatures", len(results), "workers", workers)
	return results, nil
}

func evaluateOne(c Creature) (Result, error) {
	res := Result{Name: c.Name, Curve: c.Curve.Raw}
	if !c.Curve.Valid() {
		res.Err = c.Curve.Reason()
		return res, res.Err
	}
	res.Curve = c.Curve.ID.String()

	p, err := progression.Compute(c.Experience, c.Curve.ID)
	res.Progress = p
	if err != nil {
		res.Err = err
		return res, err
	}
	return res, nil
}

// Summary counts evaluated creatures per curve and level-100 creatures.
type Summary struct {
	Total    int
	Failed   int
	MaxLevel int
	PerCurve map[data.GrowthCurveID]int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{
		Total:    len(results),
		PerCurve: make(map[data.GrowthCurveID]int, len(data.GrowthCurveIDs())),
	}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.PerCurve[r.Progress.CurveID]++
		if r.Progress.Level == data.MaxLevel {
			s.MaxLevel++
		}
	}
	return s
}
