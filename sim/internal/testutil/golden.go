// Package testutil provides shared test infrastructure for the call-center
// simulator. It consolidates golden fixture types and assertion helpers used
// across sim/ and sim/experiment/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_replications.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase pins the outcome of one replication.
type GoldenTestCase struct {
	Name               string        `json:"name"`
	Agents             int           `json:"agents"`
	ArrivalsPerHour    float64       `json:"arrivals_per_hour"`
	HorizonMinutes     float64       `json:"horizon_minutes"`
	MeanServiceMinutes float64       `json:"mean_service_minutes"`
	BaseSeed           int64         `json:"base_seed"`
	Replication        int           `json:"replication"`
	Metrics            GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected metrics from a golden test case.
type GoldenMetrics struct {
	// Exact match
	NumServed  int `json:"num_served"`
	NumArrived int `json:"num_arrived"`

	// Deterministic floating-point metrics (derived from the simulation clock)
	AvgWait     float64 `json:"avg_wait"`
	Utilization float64 `json:"utilization"`
	AvgQueueLen float64 `json:"avg_queue_len"`
}

// GoldenPath returns the location of the golden fixture.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func GoldenPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_replications.json")
}

// LoadGoldenDataset loads the golden fixture.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()
	data, err := os.ReadFile(GoldenPath(t))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// WriteGoldenDataset captures dataset as the new golden fixture.
func WriteGoldenDataset(t *testing.T, dataset *GoldenDataset) {
	t.Helper()
	path := GoldenPath(t)
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		t.Fatalf("Failed to encode golden dataset: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create testdata dir: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		t.Fatalf("Failed to write golden dataset: %v", err)
	}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
