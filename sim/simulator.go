// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/callcenter-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, the agent pool,
// and the event loop of one replication. It is single-threaded: exactly one
// event executes at a time, so pool state needs no synchronization.
type Simulator struct {
	Clock   float64
	Horizon float64
	Config  Config

	// EventQueue has all pending events, ordered by (time, scheduling order)
	EventQueue *EventQueue
	Pool       *ResourcePool
	Arrivals   *ArrivalGenerator

	// Customers holds every admitted customer in arrival order.
	Customers []*Customer
	// Waits is appended when a customer is granted an agent.
	Waits []float64
	// BusyIntervals is appended when a customer departs.
	BusyIntervals []BusyInterval

	// Trace is optional; nil disables per-customer recording.
	Trace *trace.SimulationTrace

	EventCount int

	rng      *VariateSource
	departed int
	started  bool
}

// NewSimulator builds a replication for cfg seeded by key. cfg must be valid;
// call Config.Validate first.
func NewSimulator(cfg Config, key SimulationKey) *Simulator {
	return &Simulator{
		Clock:      0,
		Horizon:    cfg.HorizonMinutes,
		Config:     cfg,
		EventQueue: NewEventQueue(),
		Pool:       NewResourcePool(cfg.NumAgents),
		Arrivals:   NewArrivalGenerator(cfg),
		rng:        NewVariateSource(key),
	}
}

// Schedule pushes an event into the simulator's EventQueue.
// Events at the same timestamp execute in the order they were scheduled.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Timeout returns the clock time d minutes from now. Negative durations panic.
func (sim *Simulator) Timeout(d float64) float64 {
	if d < 0 {
		panic(fmt.Sprintf("Simulator.Timeout: negative duration %v", d))
	}
	return sim.Clock + d
}

// RNG returns the replication's variate source.
func (sim *Simulator) RNG() *VariateSource {
	return sim.rng
}

// Departed returns the number of customers that completed service.
func (sim *Simulator) Departed() int {
	return sim.departed
}

// Start runs the first iteration of the arrival generator. Run calls it;
// callers driving the loop with Step must call it once first.
func (sim *Simulator) Start() {
	if sim.started {
		panic("Simulator.Start: a replication can only run once")
	}
	sim.started = true
	sim.Arrivals.Start(sim)
}

// Step executes the next event and reports whether one was executed.
// With Config.StopAtHorizon set, events at or past the horizon are left
// unprocessed and the clock is parked at the horizon.
func (sim *Simulator) Step() bool {
	if sim.EventQueue.Len() == 0 {
		return false
	}
	if sim.Config.StopAtHorizon && sim.EventQueue.Peek().Timestamp() >= sim.Horizon {
		logrus.Debugf("[t=%9.3f] Horizon cutoff with %d pending events", sim.Clock, sim.EventQueue.Len())
		sim.Clock = sim.Horizon
		sim.EventQueue = NewEventQueue()
		return false
	}
	ev := sim.EventQueue.PopNext()
	if ev.Timestamp() < sim.Clock {
		panic(fmt.Sprintf("Simulator.Step: event %T at %v precedes clock %v", ev, ev.Timestamp(), sim.Clock))
	}
	sim.Clock = ev.Timestamp()
	logrus.Tracef("[t=%9.3f] Executing %T", sim.Clock, ev)
	ev.Execute(sim)
	sim.EventCount++
	return true
}

// Run starts the arrival generator and processes events until none remain.
func (sim *Simulator) Run() {
	sim.Start()
	for sim.Step() {
	}
	logrus.Debugf("[t=%9.3f] Simulation ended after %d events: %d admitted, %d granted, %d served",
		sim.Clock, sim.EventCount, sim.Arrivals.Admitted(), sim.Pool.Grants(), sim.departed)
}
