package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (in simulated minutes) and an Execute
// method that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent is the arrival generator's inter-arrival timeout expiring.
type ArrivalEvent struct {
	time float64 // Simulation time the timeout expires
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute admits a new customer unless the horizon has been reached.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	sim.Arrivals.fire(sim)
}

// CustomerArrivalEvent starts a freshly spawned customer process: it records
// the arrival time and requests an agent.
type CustomerArrivalEvent struct {
	time     float64
	Customer *Customer
}

// Timestamp returns the scheduled time of the CustomerArrivalEvent.
func (e *CustomerArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute runs the customer's arrival step.
func (e *CustomerArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: customer %d at %.4f min", e.Customer.ID, e.time)
	e.Customer.arrive(sim)
}

// GrantEvent resumes a customer whose agent request has been granted.
// Grants are events rather than direct calls so that a waiter woken by a
// release resumes after every event already registered for the same instant.
type GrantEvent struct {
	time     float64
	Customer *Customer
}

// Timestamp returns the scheduled time of the GrantEvent.
func (e *GrantEvent) Timestamp() float64 {
	return e.time
}

// Execute moves the customer into service and schedules its departure.
func (e *GrantEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Grant: customer %d at %.4f min", e.Customer.ID, e.time)
	e.Customer.startService(sim)
}

// DepartureEvent is a customer's service timeout expiring.
type DepartureEvent struct {
	time     float64
	Customer *Customer
}

// Timestamp returns the scheduled time of the DepartureEvent.
func (e *DepartureEvent) Timestamp() float64 {
	return e.time
}

// Execute releases the customer's agent and records its busy interval.
func (e *DepartureEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Departure: customer %d at %.4f min", e.Customer.ID, e.time)
	e.Customer.depart(sim)
}
