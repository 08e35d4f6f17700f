package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/inference-sim/callcenter-sim/sim"
	"github.com/inference-sim/callcenter-sim/sim/experiment"
	"github.com/inference-sim/callcenter-sim/sim/trace"
)

// envPrefix namespaces environment overrides, e.g. CCSIM_REPLICATIONS=100.
const envPrefix = "CCSIM"

// newRootCmd builds the command tree. Invoked without a subcommand the
// root runs the default scenarios, same as `run`.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "callcenter-sim",
		Short:             "Discrete-event simulator for M/M/c call-center staffing",
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupLogging,
		RunE:              runSimulation,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().String("log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	addRunFlags(rootCmd.Flags())

	// runCmd executes every scenario and prints the aggregate metrics
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run all scenarios and report aggregate metrics",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addRunFlags(runCmd.Flags())

	// scenariosCmd prints the resolved scenario table
	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Print the scenario table as YAML",
		Args:  cobra.NoArgs,
		RunE:  printScenarios,
	}
	scenariosCmd.Flags().String("scenarios", "", "YAML scenario table (defaults to the built-in scenarios)")

	// traceCmd runs a single replication and prints one record per customer
	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "Run one replication and print its per-customer trace",
		Args:  cobra.NoArgs,
		RunE:  traceReplication,
	}
	addCommonFlags(traceCmd.Flags())
	traceCmd.Flags().Int("agents", 5, "Number of agents")
	traceCmd.Flags().Float64("rate", 10, "Arrivals per hour")
	traceCmd.Flags().Int("replication", 0, "Replication index to trace")
	traceCmd.Flags().String("trace-level", string(trace.TraceLevelCustomers), "Trace verbosity (customers, none)")

	rootCmd.AddCommand(runCmd, scenariosCmd, traceCmd)
	return rootCmd
}

// Execute runs the CLI root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newViper binds the command's flags with environment overrides.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	logLevel := v.GetString("log")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
	return nil
}

// runOptions is the resolved configuration of a run.
type runOptions struct {
	Seed          int64
	Replications  int
	Workers       int
	HorizonHours  float64
	MeanService   float64
	StopAtHorizon bool
	ScenariosPath string
	Format        string
	Analytic      bool
	KeepRuns      bool
}

func loadRunOptions(v *viper.Viper) runOptions {
	return runOptions{
		Seed:          v.GetInt64("seed"),
		Replications:  v.GetInt("replications"),
		Workers:       v.GetInt("workers"),
		HorizonHours:  v.GetFloat64("horizon-hours"),
		MeanService:   v.GetFloat64("mean-service"),
		StopAtHorizon: v.GetBool("stop-at-horizon"),
		ScenariosPath: v.GetString("scenarios"),
		Format:        v.GetString("format"),
		Analytic:      v.GetBool("analytic"),
		KeepRuns:      v.GetBool("keep-runs"),
	}
}

// baseConfig returns the shared scenario parameters; agents and arrival
// rate are filled in per scenario.
func (o runOptions) baseConfig() sim.Config {
	return sim.Config{
		HorizonMinutes:     o.HorizonHours * 60,
		MeanServiceMinutes: o.MeanService,
		StopAtHorizon:      o.StopAtHorizon,
	}
}

func (o runOptions) experimentOptions() experiment.Options {
	return experiment.Options{
		Replications: o.Replications,
		BaseSeed:     o.Seed,
		Workers:      o.Workers,
		KeepRuns:     o.KeepRuns,
	}
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	opts := loadRunOptions(v)
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	scenarios, err := resolveScenarios(opts.ScenariosPath)
	if err != nil {
		return err
	}

	base := opts.baseConfig()
	logrus.Infof("Running %d scenarios: horizon=%.1fh, mean service=%.2fmin, seed=%d, replications=%d, workers=%d",
		len(scenarios), opts.HorizonHours, opts.MeanService, opts.Seed, opts.Replications, opts.Workers)

	results, err := experiment.RunScenarios(cmd.Context(), scenarios, base, opts.experimentOptions())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	report, err := buildReport(results, base, opts.Analytic)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), report, opts.Format)
}

func printScenarios(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	scenarios, err := resolveScenarios(v.GetString("scenarios"))
	if err != nil {
		return err
	}
	return writeScenarios(cmd.OutOrStdout(), scenarios)
}

func traceReplication(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	opts := loadRunOptions(v)
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	cfg := opts.baseConfig()
	cfg.NumAgents = v.GetInt("agents")
	cfg.ArrivalsPerHour = v.GetFloat64("rate")
	index := v.GetInt("replication")
	level := v.GetString("trace-level")
	if !trace.IsValidTraceLevel(level) {
		return fmt.Errorf("unknown trace level %q (valid: %s, %s)", level, trace.TraceLevelCustomers, trace.TraceLevelNone)
	}

	res, tr, err := experiment.RunReplication(cfg, opts.Seed, index, trace.TraceLevel(level))
	if err != nil {
		return fmt.Errorf("replication %d failed: %w", index, err)
	}
	return writeTrace(cmd.OutOrStdout(), res, tr, opts.Format)
}

// addCommonFlags registers the parameters shared by run, trace and the root command.
func addCommonFlags(fs *pflag.FlagSet) {
	fs.Int64("seed", experiment.DefaultBaseSeed, "Base seed; replication i is seeded with seed+i")
	fs.Float64("horizon-hours", float64(experiment.DefaultHorizonMinutes)/60, "Admission window (in hours)")
	fs.Float64("mean-service", experiment.DefaultMeanServiceMinutes, "Mean service time (in minutes)")
	fs.Bool("stop-at-horizon", false, "Discard events at or past the horizon instead of draining admitted customers")
	fs.String("format", formatText, "Output format (text, json, yaml)")
}

// addRunFlags registers the flags of a multi-scenario run.
func addRunFlags(fs *pflag.FlagSet) {
	addCommonFlags(fs)
	fs.Int("replications", experiment.DefaultReplications, "Independent replications per scenario")
	fs.Int("workers", 1, "Replications run concurrently")
	fs.String("scenarios", "", "YAML scenario table (defaults to the built-in scenarios)")
	fs.Bool("analytic", false, "Report Erlang C reference values next to simulated ones")
	fs.Bool("keep-runs", false, "Include per-replication results in json/yaml output")
}
