package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/callcenter-sim/sim"
	"github.com/inference-sim/callcenter-sim/sim/erlang"
	"github.com/inference-sim/callcenter-sim/sim/experiment"
	"github.com/inference-sim/callcenter-sim/sim/trace"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// Report is the rendered outcome of a run.
type Report struct {
	HorizonMinutes     float64          `json:"horizon_minutes" yaml:"horizon_minutes"`
	MeanServiceMinutes float64          `json:"mean_service_minutes" yaml:"mean_service_minutes"`
	StopAtHorizon      bool             `json:"stop_at_horizon" yaml:"stop_at_horizon"`
	Scenarios          []ScenarioReport `json:"scenarios" yaml:"scenarios"`
}

// ScenarioReport pairs a scenario's aggregate with optional Erlang C reference values.
type ScenarioReport struct {
	experiment.AggregateResult `yaml:",inline"`
	Analytic                   *AnalyticReport `json:"analytic,omitempty" yaml:"analytic,omitempty"`
}

// AnalyticReport holds closed-form M/M/c values. Waits are omitted for unstable systems.
type AnalyticReport struct {
	Utilization  float64  `json:"utilization" yaml:"utilization"`
	ProbWait     float64  `json:"prob_wait" yaml:"prob_wait"`
	Stable       bool     `json:"stable" yaml:"stable"`
	MeanWait     *float64 `json:"mean_wait,omitempty" yaml:"mean_wait,omitempty"`
	MeanQueueLen *float64 `json:"mean_queue_len,omitempty" yaml:"mean_queue_len,omitempty"`
	MeanResponse *float64 `json:"mean_response,omitempty" yaml:"mean_response,omitempty"`
}

func buildReport(results []*experiment.AggregateResult, base sim.Config, analytic bool) (*Report, error) {
	report := &Report{
		HorizonMinutes:     base.HorizonMinutes,
		MeanServiceMinutes: base.MeanServiceMinutes,
		StopAtHorizon:      base.StopAtHorizon,
		Scenarios:          make([]ScenarioReport, 0, len(results)),
	}
	for _, agg := range results {
		sr := ScenarioReport{AggregateResult: *agg}
		if analytic {
			a, err := analyticFor(agg, base)
			if err != nil {
				return nil, err
			}
			sr.Analytic = a
		}
		report.Scenarios = append(report.Scenarios, sr)
	}
	return report, nil
}

func analyticFor(agg *experiment.AggregateResult, base sim.Config) (*AnalyticReport, error) {
	cfg := experiment.Scenario{Agents: agg.NumAgents, ArrivalsPerHour: agg.ArrivalsPerHour}.Config(base)
	m, err := erlang.New(cfg.NumAgents, cfg.ArrivalRate(), cfg.ServiceRate())
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", agg.Scenario, err)
	}
	a := &AnalyticReport{
		Utilization: m.Utilization(),
		ProbWait:    m.ProbWait(),
		Stable:      m.Stable(),
	}
	if wq := m.MeanWait(); !math.IsInf(wq, 0) {
		lq, w := m.MeanQueueLen(), m.MeanResponse()
		a.MeanWait, a.MeanQueueLen, a.MeanResponse = &wq, &lq, &w
	}
	return a, nil
}

func writeReport(w io.Writer, report *Report, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, report)
	case formatYAML:
		return writeYAML(w, report)
	default:
		return writeText(w, report)
	}
}

// writeText prints one block per scenario.
func writeText(w io.Writer, report *Report) error {
	for _, sc := range report.Scenarios {
		lines := []string{
			fmt.Sprintf("\n%s", sc.Scenario),
			fmt.Sprintf("  Avg wait: %.2f min (stdev %.2f)", sc.AvgWait.Mean, sc.AvgWait.StdDev),
			fmt.Sprintf("  Utilization: %.2f", sc.Utilization.Mean),
			fmt.Sprintf("  Customers served: %.0f", sc.NumServed.Mean),
			fmt.Sprintf("  Avg queue length (approx): %.2f", sc.AvgQueueLen.Mean),
		}
		if a := sc.Analytic; a != nil {
			if a.MeanWait != nil {
				lines = append(lines, fmt.Sprintf("  Erlang C wait: %.2f min (P(wait) %.2f, utilization %.2f)", *a.MeanWait, a.ProbWait, a.Utilization))
			} else {
				lines = append(lines, fmt.Sprintf("  Erlang C: unstable (utilization %.2f)", a.Utilization))
			}
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// TraceReport is the rendered outcome of a traced replication.
type TraceReport struct {
	Result  sim.ReplicationResult  `json:"result" yaml:"result"`
	Summary *trace.TraceSummary    `json:"summary,omitempty" yaml:"summary,omitempty"`
	Trace   *trace.SimulationTrace `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func writeTrace(w io.Writer, res sim.ReplicationResult, tr *trace.SimulationTrace, format string) error {
	report := TraceReport{Result: res, Trace: tr}
	if tr != nil {
		report.Summary = trace.Summarize(tr)
	}
	switch format {
	case formatJSON:
		return writeJSON(w, report)
	case formatYAML:
		return writeYAML(w, report)
	}

	if tr == nil {
		_, err := fmt.Fprintf(w, "Served %d of %d arrived, mean wait %.4f min, max wait %.4f min, utilization %.4f\n",
			res.NumServed, res.NumArrived, res.AvgWait, res.MaxWait, res.Utilization)
		return err
	}

	if _, err := fmt.Fprintf(w, "%-6s %12s %12s %12s %10s %6s\n", "id", "arrival", "start", "end", "wait", "ahead"); err != nil {
		return err
	}
	for _, r := range tr.Customers {
		if _, err := fmt.Fprintf(w, "%-6d %12.4f %12.4f %12.4f %10.4f %6d\n",
			r.CustomerID, r.ArrivalTime, r.ServiceStart, r.ServiceEnd, r.Wait, r.QueueDepth); err != nil {
			return err
		}
	}
	s := report.Summary
	_, err := fmt.Fprintf(w, "\nServed %d (%d queued), mean wait %.4f min, max wait %.4f min, mean service %.4f min, utilization %.4f\n",
		s.TotalCustomers, s.QueuedCount, s.MeanWait, s.MaxWait, s.MeanServiceTime, res.Utilization)
	return err
}
