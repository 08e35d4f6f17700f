// Defines the Customer struct that models one caller in the simulation.
// Tracks arrival, service start and service end times and the resulting wait.

package sim

import (
	"fmt"
	"slices"

	"github.com/inference-sim/callcenter-sim/sim/trace"
)

// CustomerState represents the lifecycle state of a customer.
type CustomerState string

const (
	StateArrived   CustomerState = "arrived"
	StateQueued    CustomerState = "queued"
	StateInService CustomerState = "in_service"
	StateDeparted  CustomerState = "departed"
)

// customerTransitions lists the legal successor states of each state.
var customerTransitions = map[CustomerState][]CustomerState{
	StateArrived:   {StateQueued, StateInService},
	StateQueued:    {StateInService},
	StateInService: {StateDeparted},
	StateDeparted:  nil,
}

// Customer models a single call's lifecycle:
// arrived → queued (only if every agent is busy) → in_service → departed.
type Customer struct {
	ID int // Sequential identity assigned by the arrival generator

	State CustomerState

	ArrivalTime  float64 // Clock time the customer arrived
	ServiceStart float64 // Clock time an agent was granted
	ServiceEnd   float64 // Clock time the agent was released
	Wait         float64 // ServiceStart - ArrivalTime, set once granted

	QueueDepthOnArrival int // Waiters ahead of this customer when it arrived
}

func newCustomer(id int) *Customer {
	return &Customer{ID: id, State: StateArrived}
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer: (ID: %d, State: %s, ArrivalTime: %.4f, Wait: %.4f)", c.ID, c.State, c.ArrivalTime, c.Wait)
}

// ServiceTime returns the time the customer held an agent.
// Zero until the customer departs.
func (c *Customer) ServiceTime() float64 {
	if c.State != StateDeparted {
		return 0
	}
	return c.ServiceEnd - c.ServiceStart
}

func (c *Customer) transition(to CustomerState) {
	if !slices.Contains(customerTransitions[c.State], to) {
		panic(fmt.Sprintf("customer %d: illegal transition %s -> %s", c.ID, c.State, to))
	}
	c.State = to
}

// arrive records the arrival time and requests an agent. A granted request
// resumes the customer through a GrantEvent at the current time.
func (c *Customer) arrive(sim *Simulator) {
	c.ArrivalTime = sim.Clock
	c.QueueDepthOnArrival = sim.Pool.QueueLen()
	if sim.Pool.Request(c) {
		sim.Schedule(&GrantEvent{time: sim.Clock, Customer: c})
		return
	}
	c.transition(StateQueued)
}

// startService computes the wait, draws a service duration and suspends the
// customer until its departure.
func (c *Customer) startService(sim *Simulator) {
	c.transition(StateInService)
	c.ServiceStart = sim.Clock
	c.Wait = c.ServiceStart - c.ArrivalTime
	sim.Waits = append(sim.Waits, c.Wait)

	service := sim.rng.Exp(sim.Config.ServiceRate())
	sim.Schedule(&DepartureEvent{time: sim.Timeout(service), Customer: c})
}

// depart releases the agent, wakes the next waiter and records the busy interval.
func (c *Customer) depart(sim *Simulator) {
	c.ServiceEnd = sim.Clock
	if next := sim.Pool.Release(); next != nil {
		sim.Schedule(&GrantEvent{time: sim.Clock, Customer: next})
	}
	sim.BusyIntervals = append(sim.BusyIntervals, BusyInterval{Start: c.ServiceStart, End: c.ServiceEnd})
	c.transition(StateDeparted)
	sim.departed++

	if sim.Trace != nil {
		sim.Trace.RecordCustomer(trace.CustomerRecord{
			CustomerID:   c.ID,
			ArrivalTime:  c.ArrivalTime,
			ServiceStart: c.ServiceStart,
			ServiceEnd:   c.ServiceEnd,
			Wait:         c.Wait,
			Queued:       c.Wait > 0,
			QueueDepth:   c.QueueDepthOnArrival,
		})
	}
}
