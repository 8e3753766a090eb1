// Command railroute loads a rail network, runs every route search between
// two stations and prints the route that best matches the rider's
// preference.
//
//	railroute -file shinkansen.csv -from Tokyo -to Akita -objective fastest
//	railroute -gtfs feed.zip -from Tokyo -to Sendai -policy weighted -weights 0,0.5,0.5,0
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/railpath/aggregate"
	"github.com/katalvlaran/railpath/chindex"
	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/dataset"
	"github.com/katalvlaran/railpath/dfs"
	"github.com/katalvlaran/railpath/geoexport"
	"github.com/katalvlaran/railpath/logging"
	"github.com/katalvlaran/railpath/render"
	"github.com/katalvlaran/railpath/route"
	"github.com/katalvlaran/railpath/strategy"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// config is the validated command line.
type config struct {
	csvPath    string
	gtfsPath   string
	from, to   string
	objective  aggregate.Objective
	kinds      []strategy.Kind
	lines      []string
	geojson    string
	verify     bool
	timings    bool
	logLevel   slog.Level
	farePerKm  float64
	shapeUnitK float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		logger := logging.NewStructuredLogger(stderr, slog.LevelInfo)
		logging.LogError(logger, "invalid arguments", err)
		return exitUsage
	}
	logger := logging.NewStructuredLogger(stderr, cfg.logLevel)
	ctx := logging.WithLogger(context.Background(), logger)

	g, positions, err := load(ctx, cfg)
	if err != nil {
		logging.LogError(logger, "can not load network", err)
		return exitUsage
	}
	for _, s := range []string{cfg.from, cfg.to} {
		if !g.HasStation(s) {
			logger.Warn("unknown station", slog.String("station", s))
		}
	}
	if reach, err := dfs.Reachable(g, cfg.from, dfs.WithContext(ctx)); err == nil {
		logger.Debug("component_size", slog.String("station", cfg.from), slog.Int("reachable", len(reach)))
	}

	if cfg.geojson != "" {
		if err := writeGeoJSON(cfg.geojson, g, positions); err != nil {
			logging.LogError(logger, "can not export network", err, slog.String("path", cfg.geojson))
			return exitFailure
		}
	}

	results, err := strategy.RunAll(ctx, g, cfg.from, cfg.to, cfg.kinds...)
	if err != nil {
		logging.LogError(logger, "search failed", err)
		return exitFailure
	}
	sel, err := aggregate.Select(strategy.Outcomes(results), cfg.objective)
	if err != nil {
		logging.LogError(logger, "can not rank routes", err)
		return exitUsage
	}

	if err := render.Selection(stdout, sel); err != nil {
		logging.LogError(logger, "can not print routes", err)
		return exitFailure
	}
	if cfg.timings {
		fmt.Fprintln(stdout)
		if err := render.Timings(stdout, results); err != nil {
			logging.LogError(logger, "can not print timings", err)
			return exitFailure
		}
	}
	if cfg.verify {
		if err := verify(ctx, g, cfg, results); err != nil {
			logging.LogError(logger, "verification failed", err)
			return exitFailure
		}
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("railroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		csvPath    = fs.String("file", "", "Edge table in CSV format (Source_Stations, Destination_Stations, Line, Distance_(Km), Cost_(Yen), Durations_(Min))")
		gtfsPath   = fs.String("gtfs", "", "Static GTFS zip archive (alternative to -file)")
		from       = fs.String("from", "", "Start station")
		to         = fs.String("to", "", "Goal station")
		objective  = fs.String("objective", "fastest", "Criterion for single/topk policies. Expected values: fastest / cheapest / least_transit / shortest")
		policy     = fs.String("policy", "topk", "Ranking policy. Expected values: single / topk / median / weighted")
		criteria   = fs.String("criteria", "fastest,cheapest,least_transit", "Criteria for the median policy (separated by commas)")
		weights    = fs.String("weights", "0.25,0.25,0.25,0.25", "Weights for the weighted policy: distance,cost,duration,transits")
		kinds      = fs.String("strategies", "", "Strategies to run (separated by commas). Expected values: hop / transfer / greedy / cumulative. Empty means all")
		lines      = fs.String("lines", "", "Only travel on these lines (separated by commas). Empty means every line")
		geojsonOut = fs.String("geojson", "", "Write the network as GeoJSON to this file")
		verify     = fs.Bool("verify", false, "Cross-check the cumulative search with a contraction-hierarchies index")
		timings    = fs.Bool("timings", false, "Print per-strategy timings")
		logLevel   = fs.String("log-level", "info", "Log level. Expected values: debug / info / warn / error")
		farePerKm  = fs.Float64("fare-per-km", 0, "GTFS only: fare per km used as edge cost")
		shapeUnit  = fs.Float64("shape-unit-km", 0, "GTFS only: km per shape_dist_traveled unit (0 uses great-circle distances)")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		csvPath:    *csvPath,
		gtfsPath:   *gtfsPath,
		from:       strings.TrimSpace(*from),
		to:         strings.TrimSpace(*to),
		geojson:    *geojsonOut,
		verify:     *verify,
		timings:    *timings,
		farePerKm:  *farePerKm,
		shapeUnitK: *shapeUnit,
		lines:      splitList(*lines),
	}
	if (cfg.csvPath == "") == (cfg.gtfsPath == "") {
		return config{}, errors.New("exactly one of -file and -gtfs is required")
	}
	if cfg.from == "" || cfg.to == "" {
		return config{}, errors.New("-from and -to are required")
	}

	var err error
	if cfg.logLevel, err = logging.ParseLevel(*logLevel); err != nil {
		return config{}, err
	}
	if cfg.objective, err = parseObjective(*policy, *objective, *criteria, *weights); err != nil {
		return config{}, err
	}
	if err = cfg.objective.Validate(); err != nil {
		return config{}, err
	}
	for _, name := range splitList(*kinds) {
		k, err := strategy.ParseKind(name)
		if err != nil {
			return config{}, err
		}
		cfg.kinds = append(cfg.kinds, k)
	}

	return cfg, nil
}

func parseObjective(policy, objective, criteria, weights string) (aggregate.Objective, error) {
	p, err := aggregate.ParsePolicy(policy)
	if err != nil {
		return aggregate.Objective{}, err
	}

	switch p {
	case aggregate.Median:
		var cs []aggregate.Criterion
		for _, name := range splitList(criteria) {
			c, err := aggregate.ParseCriterion(name)
			if err != nil {
				return aggregate.Objective{}, err
			}
			cs = append(cs, c)
		}
		return aggregate.MedianOf(cs...), nil
	case aggregate.WeightedSum:
		parts := splitList(weights)
		if len(parts) != 4 {
			return aggregate.Objective{}, errors.Errorf("-weights needs 4 values, got %d", len(parts))
		}
		var v [4]float64
		for i, s := range parts {
			if v[i], err = strconv.ParseFloat(s, 64); err != nil {
				return aggregate.Objective{}, errors.Wrapf(err, "bad weight %q", s)
			}
		}
		return aggregate.WeightedSumOf(aggregate.Weights{Distance: v[0], Cost: v[1], Duration: v[2], Transit: v[3]}), nil
	}

	c, err := aggregate.ParseCriterion(objective)
	if err != nil {
		return aggregate.Objective{}, err
	}
	if p == aggregate.TopK {
		return aggregate.TopKBy(c), nil
	}

	return aggregate.SingleCriterion(c), nil
}

func load(ctx context.Context, cfg config) (*core.Graph, map[string]dataset.Position, error) {
	logger := logging.FromContext(ctx)

	var (
		records   []dataset.Record
		positions map[string]dataset.Position
		err       error
		source    string
	)
	if cfg.csvPath != "" {
		source = cfg.csvPath
		records, err = dataset.LoadCSVFile(ctx, cfg.csvPath, dataset.DefaultColumns())
	} else {
		source = cfg.gtfsPath
		records, positions, err = dataset.LoadGTFSFile(cfg.gtfsPath, dataset.GTFSConfig{
			FarePerKm:           cfg.farePerKm,
			ShapeDistanceUnitKm: cfg.shapeUnitK,
		})
	}
	if err != nil {
		return nil, nil, err
	}

	g, err := dataset.Build(records)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "can not build graph from %s", source)
	}
	if len(cfg.lines) > 0 {
		g = core.LineView(g, cfg.lines...)
	}
	stats := g.Stats()
	logging.LogOperation(logger, "network_loaded",
		slog.String("source", source),
		slog.Int("records", len(records)),
		slog.Int("stations", stats.StationCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Int("lines", stats.LineCount))

	return g, positions, nil
}

func writeGeoJSON(path string, g *core.Graph, positions map[string]dataset.Position) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "can not create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "can not close %s", path)
		}
	}()

	return geoexport.Write(f, geoexport.FeatureCollection(g, positions))
}

// verify compares the cumulative search against a contraction-hierarchies
// index built on the same graph.
func verify(ctx context.Context, g *core.Graph, cfg config, results []strategy.Result) error {
	logger := logging.FromContext(ctx)

	var cum route.Outcome
	found := false
	for _, r := range results {
		if r.Kind == strategy.Cumulative {
			cum, found = r.Outcome, true
		}
	}
	if !found {
		r, err := strategy.Run(ctx, g, strategy.Cumulative, cfg.from, cfg.to)
		if err != nil {
			return err
		}
		cum = r.Outcome
	}

	idx, err := chindex.Build(g, route.ByDistance)
	if err != nil {
		return err
	}
	total, _, ok := idx.ShortestPath(cfg.from, cfg.to)
	if ok != cum.Found() || (ok && !nearlyEqual(total, cum.Distance)) {
		return errors.Errorf("cumulative search gave %.2f km (found=%t), index gave %.2f km (found=%t)",
			cum.Distance, cum.Found(), total, ok)
	}
	logging.LogOperation(logger, "verification_passed", slog.Float64("distance", total))

	return nil
}

func nearlyEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= 1e-6*(1+a+b)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
