package experiment

import "github.com/inference-sim/callcenter-sim/sim"

// Scenario is one staffing/load pair to evaluate.
type Scenario struct {
	Name            string  `yaml:"name" json:"name"`
	Agents          int     `yaml:"agents" json:"agents"`
	ArrivalsPerHour float64 `yaml:"arrivals_per_hour" json:"arrivals_per_hour"`
}

// Config returns base with the scenario's agent count and arrival rate.
func (s Scenario) Config(base sim.Config) sim.Config {
	cfg := base
	cfg.NumAgents = s.Agents
	cfg.ArrivalsPerHour = s.ArrivalsPerHour
	return cfg
}

// DefaultScenarios returns the baseline, extra-staffing and higher-load cases.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Baseline (5 agents, 10/hr)", Agents: 5, ArrivalsPerHour: 10},
		{Name: "More Agents (7 agents, 10/hr)", Agents: 7, ArrivalsPerHour: 10},
		{Name: "Higher Load (5 agents, 12/hr)", Agents: 5, ArrivalsPerHour: 12},
	}
}

const (
	DefaultHorizonMinutes     = 8 * 60
	DefaultMeanServiceMinutes = 5
)

// DefaultBaseConfig returns an 8-hour horizon with 5-minute mean service.
// Agents and arrival rate are filled in per scenario.
func DefaultBaseConfig() sim.Config {
	return sim.Config{
		HorizonMinutes:     DefaultHorizonMinutes,
		MeanServiceMinutes: DefaultMeanServiceMinutes,
	}
}
