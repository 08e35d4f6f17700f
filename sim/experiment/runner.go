package experiment

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/callcenter-sim/sim"
	"github.com/inference-sim/callcenter-sim/sim/trace"
)

// RunReplication executes replication index of cfg, seeded with
// baseSeed + index. The returned trace is nil unless level enables tracing.
func RunReplication(cfg sim.Config, baseSeed int64, index int, level trace.TraceLevel) (sim.ReplicationResult, *trace.SimulationTrace, error) {
	if err := cfg.Validate(); err != nil {
		return sim.ReplicationResult{}, nil, err
	}

	s := sim.NewSimulator(cfg, sim.ReplicationKey(baseSeed, index))
	if level.Enabled() {
		s.Trace = trace.NewSimulationTrace(level)
	}
	s.Run()

	res := s.Result()
	res.Replication = index
	logrus.Debugf("replication %d (seed %d): served=%d avgWait=%.4f util=%.4f queueLen=%.4f",
		index, res.Seed, res.NumServed, res.AvgWait, res.Utilization, res.AvgQueueLen)
	return res, s.Trace, nil
}
