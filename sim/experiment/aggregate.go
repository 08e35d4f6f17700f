package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/callcenter-sim/sim"
	"github.com/inference-sim/callcenter-sim/sim/trace"
)

// ErrInvalidOptions is wrapped by every error returned from Options.Validate.
var ErrInvalidOptions = errors.New("invalid experiment options")

const (
	DefaultReplications = 30
	DefaultBaseSeed     = 42
)

// Options controls how many replications run and how they are seeded.
type Options struct {
	Replications int   // number of independent replications (must be > 0)
	BaseSeed     int64 // replication i is seeded with BaseSeed + i
	Workers      int   // concurrent replications; <= 1 runs them sequentially
	KeepRuns     bool  // retain per-replication results in AggregateResult.Runs
}

// DefaultOptions returns 30 sequential replications seeded from 42.
func DefaultOptions() Options {
	return Options{
		Replications: DefaultReplications,
		BaseSeed:     DefaultBaseSeed,
		Workers:      1,
	}
}

// Validate rejects an empty replication count.
func (o Options) Validate() error {
	if o.Replications <= 0 {
		return fmt.Errorf("%w: replications must be > 0, got %d", ErrInvalidOptions, o.Replications)
	}
	return nil
}

// MetricSummary is the mean and population standard deviation of one metric
// across replications.
type MetricSummary struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stdev" yaml:"stdev"`
}

// AggregateResult summarizes all replications of one scenario.
type AggregateResult struct {
	Scenario        string  `json:"scenario" yaml:"scenario"`
	NumAgents       int     `json:"agents" yaml:"agents"`
	ArrivalsPerHour float64 `json:"arrivals_per_hour" yaml:"arrivals_per_hour"`
	Replications    int     `json:"replications" yaml:"replications"`

	AvgWait     MetricSummary `json:"avg_wait" yaml:"avg_wait"`
	Utilization MetricSummary `json:"utilization" yaml:"utilization"`
	NumServed   MetricSummary `json:"num_served" yaml:"num_served"`
	AvgQueueLen MetricSummary `json:"avg_queue_len" yaml:"avg_queue_len"`

	Runs []sim.ReplicationResult `json:"runs,omitempty" yaml:"runs,omitempty"`
}

// RunScenario runs opts.Replications replications of cfg and reduces them.
// Configuration is validated before any replication starts, and the first
// failing replication aborts the scenario.
func RunScenario(ctx context.Context, name string, cfg sim.Config, opts Options) (*AggregateResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}

	start := time.Now()
	runs := make([]sim.ReplicationResult, opts.Replications)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i := range opts.Replications {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, _, err := RunReplication(cfg, opts.BaseSeed, i, trace.TraceLevelNone)
			if err != nil {
				return fmt.Errorf("replication %d: %w", i, err)
			}
			runs[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}

	agg := Reduce(name, cfg, runs)
	if !opts.KeepRuns {
		agg.Runs = nil
	}
	logrus.Infof("scenario %q: %d replications in %v (avg wait %.4f, util %.4f)",
		name, opts.Replications, time.Since(start), agg.AvgWait.Mean, agg.Utilization.Mean)
	return agg, nil
}

// RunScenarios runs each scenario in order against base, overriding its
// agent count and arrival rate.
func RunScenarios(ctx context.Context, scenarios []Scenario, base sim.Config, opts Options) ([]*AggregateResult, error) {
	results := make([]*AggregateResult, 0, len(scenarios))
	for _, sc := range scenarios {
		agg, err := RunScenario(ctx, sc.Name, sc.Config(base), opts)
		if err != nil {
			return nil, err
		}
		results = append(results, agg)
	}
	return results, nil
}

// Reduce computes per-metric mean and population standard deviation over runs.
// runs must not be empty.
func Reduce(name string, cfg sim.Config, runs []sim.ReplicationResult) *AggregateResult {
	if len(runs) == 0 {
		panic("Reduce: runs must not be empty")
	}
	n := len(runs)
	waits := make([]float64, n)
	utils := make([]float64, n)
	served := make([]float64, n)
	queues := make([]float64, n)
	for i, r := range runs {
		waits[i] = r.AvgWait
		utils[i] = r.Utilization
		served[i] = float64(r.NumServed)
		queues[i] = r.AvgQueueLen
	}
	return &AggregateResult{
		Scenario:        name,
		NumAgents:       cfg.NumAgents,
		ArrivalsPerHour: cfg.ArrivalsPerHour,
		Replications:    n,
		AvgWait:         summarize(waits),
		Utilization:     summarize(utils),
		NumServed:       summarize(served),
		AvgQueueLen:     summarize(queues),
		Runs:            runs,
	}
}

// summarize uses the population standard deviation (divisor N).
func summarize(values []float64) MetricSummary {
	mean, std := stat.PopMeanStdDev(values, nil)
	return MetricSummary{Mean: mean, StdDev: std}
}
