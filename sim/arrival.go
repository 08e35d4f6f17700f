package sim

import "github.com/sirupsen/logrus"

// ArrivalGenerator produces the Poisson stream of customers. Each iteration
// checks the horizon, draws an exponential inter-arrival gap and suspends
// until it expires; a gap that straddles the horizon ends admission.
type ArrivalGenerator struct {
	rate        float64 // customers per minute
	horizon     float64
	maxArrivals int // 0 = unlimited

	nextID int
	done   bool
}

// NewArrivalGenerator creates a generator for cfg. The generator does
// nothing until Start is called.
func NewArrivalGenerator(cfg Config) *ArrivalGenerator {
	return &ArrivalGenerator{
		rate:        cfg.ArrivalRate(),
		horizon:     cfg.HorizonMinutes,
		maxArrivals: cfg.MaxArrivals,
	}
}

// Start runs the first iteration of the generator loop at the current clock time.
func (g *ArrivalGenerator) Start(sim *Simulator) {
	g.next(sim)
}

// Admitted returns the number of customers spawned so far.
func (g *ArrivalGenerator) Admitted() int {
	return g.nextID
}

// Done reports whether the generator has stopped admitting customers.
func (g *ArrivalGenerator) Done() bool {
	return g.done
}

// next is the top of the generator loop.
func (g *ArrivalGenerator) next(sim *Simulator) {
	if sim.Clock >= g.horizon {
		g.stop(sim, "horizon reached")
		return
	}
	if g.maxArrivals > 0 && g.nextID >= g.maxArrivals {
		g.stop(sim, "admission cap reached")
		return
	}
	gap := sim.rng.Exp(g.rate)
	sim.Schedule(&ArrivalEvent{time: sim.Timeout(gap)})
}

// fire spawns a customer when the inter-arrival timeout expires, then loops.
func (g *ArrivalGenerator) fire(sim *Simulator) {
	if sim.Clock >= g.horizon {
		g.stop(sim, "arrival past horizon discarded")
		return
	}
	c := newCustomer(g.nextID)
	g.nextID++
	sim.Customers = append(sim.Customers, c)
	sim.Schedule(&CustomerArrivalEvent{time: sim.Clock, Customer: c})
	g.next(sim)
}

func (g *ArrivalGenerator) stop(sim *Simulator, reason string) {
	g.done = true
	logrus.Debugf("[t=%9.3f] Arrival generator stopped after %d customers: %s", sim.Clock, g.nextID, reason)
}
