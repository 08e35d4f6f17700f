package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/callcenter-sim/sim"
	"github.com/inference-sim/callcenter-sim/sim/experiment"
)

// ScenarioFile represents the scenario table YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Scenarios []experiment.Scenario `yaml:"scenarios"`
}

// resolveScenarios loads the scenario table at path, or returns the
// built-in scenarios when path is empty.
func resolveScenarios(path string) ([]experiment.Scenario, error) {
	if path == "" {
		return experiment.DefaultScenarios(), nil
	}
	return loadScenarioFile(path)
}

// loadScenarioFile parses a scenario table with strict field checking:
// typos must cause errors.
func loadScenarioFile(path string) ([]experiment.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	scenarios, err := parseScenarios(data)
	if err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	logrus.Debugf("Loaded %d scenarios from %s", len(scenarios), path)
	return scenarios, nil
}

func parseScenarios(data []byte) ([]experiment.Scenario, error) {
	var file ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios defined")
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i, sc := range file.Scenarios {
		switch {
		case sc.Name == "":
			return nil, fmt.Errorf("scenario %d: name is required", i)
		case seen[sc.Name]:
			return nil, fmt.Errorf("scenario %q: duplicate name", sc.Name)
		case sc.Agents <= 0:
			return nil, fmt.Errorf("scenario %q: agents must be > 0, got %d", sc.Name, sc.Agents)
		case !sim.PositiveFinite(sc.ArrivalsPerHour):
			return nil, fmt.Errorf("scenario %q: arrivals_per_hour must be finite and > 0, got %v", sc.Name, sc.ArrivalsPerHour)
		}
		seen[sc.Name] = true
	}
	return file.Scenarios, nil
}

// writeScenarios renders scenarios in the same format parseScenarios accepts.
func writeScenarios(w io.Writer, scenarios []experiment.Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ScenarioFile{Scenarios: scenarios}); err != nil {
		return fmt.Errorf("encoding scenarios: %w", err)
	}
	return enc.Close()
}
