package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/logging"
	"github.com/katalvlaran/railpath/route"
)

// Result is one timed strategy run.
// Elapsed is diagnostic only; nothing downstream depends on it.
type Result struct {
	Kind    Kind
	Outcome route.Outcome
	Elapsed time.Duration
}

// Timed runs fn, measures its wall-clock time and logs a strategy_run
// record on the context logger.
func Timed(ctx context.Context, kind Kind, fn func() (route.Outcome, error)) (Result, error) {
	logger := logging.FromContext(ctx)
	begin := time.Now()
	o, err := fn()
	elapsed := time.Since(begin)
	if err != nil {
		logging.LogError(logger, "strategy failed", err, slog.String("strategy", kind.String()))
		return Result{Kind: kind, Elapsed: elapsed}, err
	}
	logging.LogOperation(logger, "strategy_run",
		slog.String("strategy", kind.String()),
		slog.Bool("found", o.Found()),
		slog.Duration("duration", elapsed))

	return Result{Kind: kind, Outcome: o, Elapsed: elapsed}, nil
}

// Run looks up kind and runs it on g under Timed.
func Run(ctx context.Context, g *core.Graph, kind Kind, start, goal string) (Result, error) {
	fn, err := Lookup(kind)
	if err != nil {
		return Result{Kind: kind}, err
	}

	return Timed(ctx, kind, func() (route.Outcome, error) {
		return fn(ctx, g, start, goal)
	})
}

// RunAll runs each kind in turn (every strategy when kinds is empty) and
// returns the results in the same order. The first error stops the batch.
func RunAll(ctx context.Context, g *core.Graph, start, goal string, kinds ...Kind) ([]Result, error) {
	if len(kinds) == 0 {
		kinds = All()
	}
	results := make([]Result, 0, len(kinds))
	for _, k := range kinds {
		r, err := Run(ctx, g, k, start, goal)
		if err != nil {
			return results, fmt.Errorf("strategy %v: %w", k, err)
		}
		results = append(results, r)
	}

	return results, nil
}

// Outcomes projects results onto their outcomes, keeping order.
func Outcomes(results []Result) []route.Outcome {
	out := make([]route.Outcome, len(results))
	for i, r := range results {
		out[i] = r.Outcome
	}

	return out
}
