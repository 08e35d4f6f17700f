package sim

import "gonum.org/v1/gonum/floats"

// BusyInterval is the span during which one customer held an agent.
type BusyInterval struct {
	Start float64
	End   float64
}

// Duration returns End - Start.
func (b BusyInterval) Duration() float64 {
	return b.End - b.Start
}

// ReplicationResult summarizes one replication.
type ReplicationResult struct {
	Replication int   `json:"replication" yaml:"replication"`
	Seed        int64 `json:"seed" yaml:"seed"`

	AvgWait     float64 `json:"avg_wait" yaml:"avg_wait"`
	Utilization float64 `json:"utilization" yaml:"utilization"`
	NumServed   int     `json:"num_served" yaml:"num_served"`
	// AvgQueueLen is total waiting minutes per simulated hour. It approximates
	// queue occupancy; it is not a time-averaged queue length.
	AvgQueueLen float64 `json:"avg_queue_len" yaml:"avg_queue_len"`

	NumArrived   int     `json:"num_arrived" yaml:"num_arrived"`
	MaxWait      float64 `json:"max_wait" yaml:"max_wait"`
	PeakQueueLen int     `json:"peak_queue_len" yaml:"peak_queue_len"`
	EndTime      float64 `json:"end_time" yaml:"end_time"`
}

// Result computes the replication summary. Call after Run.
//
// NumServed counts departed customers. With StopAtHorizon it counts the
// customers granted an agent before the horizon, since customers in service
// at the cutoff never depart.
func (sim *Simulator) Result() ReplicationResult {
	cfg := sim.Config
	res := ReplicationResult{
		Seed:         int64(sim.rng.Key()),
		NumServed:    sim.departed,
		NumArrived:   len(sim.Customers),
		PeakQueueLen: sim.Pool.PeakQueueLen(),
		EndTime:      sim.Clock,
	}
	if cfg.StopAtHorizon {
		res.NumServed = len(sim.Waits)
	}

	if len(sim.Waits) > 0 {
		totalWait := floats.Sum(sim.Waits)
		res.AvgWait = totalWait / float64(len(sim.Waits))
		res.MaxWait = floats.Max(sim.Waits)
		res.AvgQueueLen = totalWait / cfg.HorizonHours()
	}

	busy := 0.0
	for _, b := range sim.BusyIntervals {
		busy += b.Duration()
	}
	res.Utilization = busy / (float64(cfg.NumAgents) * cfg.HorizonMinutes)
	return res
}
