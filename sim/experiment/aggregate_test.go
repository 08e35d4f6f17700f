package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/callcenter-sim/sim"
	"github.com/inference-sim/callcenter-sim/sim/erlang"
)

func TestReduce_PopulationStatistics(t *testing.T) {
	// GIVEN two replications with known metrics
	runs := []sim.ReplicationResult{
		{AvgWait: 1, Utilization: 0.2, NumServed: 10, AvgQueueLen: 4},
		{AvgWait: 3, Utilization: 0.4, NumServed: 14, AvgQueueLen: 8},
	}

	// WHEN reduced
	agg := Reduce("two", baselineConfig(), runs)

	// THEN means and population (divisor N) standard deviations are reported
	assert.Equal(t, 2, agg.Replications)
	assert.InDelta(t, 2.0, agg.AvgWait.Mean, 1e-12)
	assert.InDelta(t, 1.0, agg.AvgWait.StdDev, 1e-12)
	assert.InDelta(t, 0.3, agg.Utilization.Mean, 1e-12)
	assert.InDelta(t, 0.1, agg.Utilization.StdDev, 1e-12)
	assert.InDelta(t, 12.0, agg.NumServed.Mean, 1e-12)
	assert.InDelta(t, 2.0, agg.NumServed.StdDev, 1e-12)
	assert.InDelta(t, 6.0, agg.AvgQueueLen.Mean, 1e-12)
	assert.InDelta(t, 2.0, agg.AvgQueueLen.StdDev, 1e-12)
	assert.Equal(t, 5, agg.NumAgents)
	assert.Equal(t, 10.0, agg.ArrivalsPerHour)
}

func TestReduce_SingleRun_ZeroStdDev(t *testing.T) {
	agg := Reduce("one", baselineConfig(), []sim.ReplicationResult{{AvgWait: 2.5}})
	assert.Equal(t, 2.5, agg.AvgWait.Mean)
	assert.Equal(t, 0.0, agg.AvgWait.StdDev)
}

func TestReduce_Empty_Panics(t *testing.T) {
	assert.Panics(t, func() { Reduce("none", baselineConfig(), nil) })
}

func TestRunScenario_Idempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.Replications = 5
	opts.KeepRuns = true

	a, err := RunScenario(context.Background(), "baseline", baselineConfig(), opts)
	require.NoError(t, err)
	b, err := RunScenario(context.Background(), "baseline", baselineConfig(), opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	require.Len(t, a.Runs, 5)
	for i, r := range a.Runs {
		assert.Equal(t, i, r.Replication)
		assert.Equal(t, opts.BaseSeed+int64(i), r.Seed)
	}
}

func TestRunScenario_WorkerCount_DoesNotChangeResults(t *testing.T) {
	seq := DefaultOptions()
	seq.Replications = 8
	seq.KeepRuns = true
	par := seq
	par.Workers = 4

	a, err := RunScenario(context.Background(), "baseline", baselineConfig(), seq)
	require.NoError(t, err)
	b, err := RunScenario(context.Background(), "baseline", baselineConfig(), par)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunScenario_KeepRunsFalse_DropsRuns(t *testing.T) {
	opts := DefaultOptions()
	opts.Replications = 2

	agg, err := RunScenario(context.Background(), "baseline", baselineConfig(), opts)
	require.NoError(t, err)
	assert.Nil(t, agg.Runs)
}

func TestRunScenario_InvalidInputs_FailBeforeRunning(t *testing.T) {
	bad := baselineConfig()
	bad.NumAgents = 0
	_, err := RunScenario(context.Background(), "bad", bad, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrInvalidConfig))

	opts := DefaultOptions()
	opts.Replications = 0
	_, err = RunScenario(context.Background(), "bad", baselineConfig(), opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOptions))
}

func TestRunScenario_CancelledContext_Aborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunScenario(ctx, "baseline", baselineConfig(), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunScenario_MoreAgents_DoNotIncreaseWait(t *testing.T) {
	// GIVEN the baseline and extra-staffing scenarios at the same arrival rate
	base := DefaultBaseConfig()
	opts := DefaultOptions()

	results, err := RunScenarios(context.Background(), DefaultScenarios()[:2], base, opts)
	require.NoError(t, err)
	baseline, more := results[0], results[1]

	// THEN mean wait does not grow and per-agent utilization falls
	assert.LessOrEqual(t, more.AvgWait.Mean, baseline.AvgWait.Mean)
	assert.Less(t, more.Utilization.Mean, baseline.Utilization.Mean)
	assert.LessOrEqual(t, baseline.Utilization.Mean, 1.0)
}

func TestRunScenario_UtilizationMatchesOfferedLoad(t *testing.T) {
	// Simulated utilization should sit close to ρ = λ/(cμ) for a stable system.
	cfg := baselineConfig()
	agg, err := RunScenario(context.Background(), "baseline", cfg, DefaultOptions())
	require.NoError(t, err)

	model, err := erlang.New(cfg.NumAgents, cfg.ArrivalRate(), cfg.ServiceRate())
	require.NoError(t, err)
	assert.InDelta(t, model.Utilization(), agg.Utilization.Mean, 0.03)
	assert.False(t, math.IsNaN(agg.AvgWait.StdDev))
}

func TestRunScenarios_PreservesOrderAndLabels(t *testing.T) {
	opts := DefaultOptions()
	opts.Replications = 2

	results, err := RunScenarios(context.Background(), DefaultScenarios(), DefaultBaseConfig(), opts)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, sc := range DefaultScenarios() {
		assert.Equal(t, sc.Name, results[i].Scenario)
		assert.Equal(t, sc.Agents, results[i].NumAgents)
		assert.Equal(t, sc.ArrivalsPerHour, results[i].ArrivalsPerHour)
	}
}
