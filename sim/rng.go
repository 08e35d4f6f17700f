package sim

import (
	"fmt"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible replication.
// Two replications with the same SimulationKey and identical Config
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// ReplicationKey derives the key of replication index from a base seed.
// Replication i of a scenario is seeded with base + i.
func ReplicationKey(base int64, index int) SimulationKey {
	return SimulationKey(base + int64(index))
}

// === VariateSource ===

// VariateSource is the single random stream owned by one replication.
// Arrival and service draws share it and consume it in the order the
// simulation requests them.
//
// Thread-safety: NOT thread-safe. Must be called from the goroutine running
// the owning Simulator.
type VariateSource struct {
	key   SimulationKey
	rng   *rand.Rand
	draws int
}

// NewVariateSource creates a stream seeded from key.
func NewVariateSource(key SimulationKey) *VariateSource {
	return &VariateSource{
		key: key,
		rng: rand.New(rand.NewSource(int64(key))),
	}
}

// Exp draws from an exponential distribution with the given rate (mean 1/rate).
// A non-positive rate is a programming error and panics.
func (v *VariateSource) Exp(rate float64) float64 {
	if !(rate > 0) {
		panic(fmt.Sprintf("VariateSource.Exp: rate must be > 0, got %v", rate))
	}
	v.draws++
	return v.rng.ExpFloat64() / rate
}

// Key returns the SimulationKey used to seed this stream.
func (v *VariateSource) Key() SimulationKey {
	return v.key
}

// Draws returns how many variates have been drawn so far.
func (v *VariateSource) Draws() int {
	return v.draws
}
