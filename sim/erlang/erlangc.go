// Package erlang implements the closed-form M/M/c (Erlang C) queue used as a
// reference point for simulated call-center metrics.
package erlang

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidModel is wrapped by every error returned from New.
var ErrInvalidModel = errors.New("invalid M/M/c model")

// Model is an M/M/c queue with an unbounded FIFO waiting room.
// Rates share a time unit (customers per minute in this module).
type Model struct {
	Servers     int     // c
	ArrivalRate float64 // λ
	ServiceRate float64 // μ, per server
}

// New validates and returns an M/M/c model.
func New(servers int, arrivalRate, serviceRate float64) (Model, error) {
	switch {
	case servers <= 0:
		return Model{}, fmt.Errorf("%w: servers must be > 0, got %d", ErrInvalidModel, servers)
	case !(arrivalRate > 0):
		return Model{}, fmt.Errorf("%w: arrival rate must be > 0, got %v", ErrInvalidModel, arrivalRate)
	case !(serviceRate > 0):
		return Model{}, fmt.Errorf("%w: service rate must be > 0, got %v", ErrInvalidModel, serviceRate)
	}
	return Model{Servers: servers, ArrivalRate: arrivalRate, ServiceRate: serviceRate}, nil
}

// OfferedLoad returns a = λ/μ in Erlangs.
func (m Model) OfferedLoad() float64 {
	return m.ArrivalRate / m.ServiceRate
}

// Utilization returns ρ = a/c.
func (m Model) Utilization() float64 {
	return m.OfferedLoad() / float64(m.Servers)
}

// Stable reports whether ρ < 1.
func (m Model) Stable() bool {
	return m.Utilization() < 1
}

// ErlangB returns the blocking probability of an M/M/c/c system with the
// same offered load, using the recurrence B(k) = a·B(k-1) / (k + a·B(k-1)).
func (m Model) ErlangB() float64 {
	a := m.OfferedLoad()
	b := 1.0
	for k := 1; k <= m.Servers; k++ {
		b = a * b / (float64(k) + a*b)
	}
	return b
}

// ProbWait returns the Erlang C probability that an arrival has to queue.
// Unstable systems return 1.
func (m Model) ProbWait() float64 {
	if !m.Stable() {
		return 1
	}
	a := m.OfferedLoad()
	c := float64(m.Servers)
	b := m.ErlangB()
	return c * b / (c - a*(1-b))
}

// MeanWait returns Wq, the mean time spent queueing. Unstable systems return +Inf.
func (m Model) MeanWait() float64 {
	if !m.Stable() {
		return math.Inf(1)
	}
	return m.ProbWait() / (float64(m.Servers)*m.ServiceRate - m.ArrivalRate)
}

// MeanQueueLen returns Lq = λ·Wq (Little's law).
func (m Model) MeanQueueLen() float64 {
	if !m.Stable() {
		return math.Inf(1)
	}
	return m.ArrivalRate * m.MeanWait()
}

// MeanResponse returns W = Wq + 1/μ.
func (m Model) MeanResponse() float64 {
	return m.MeanWait() + 1/m.ServiceRate
}
