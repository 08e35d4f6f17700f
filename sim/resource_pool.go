package sim

import "fmt"

// ResourcePool models a fixed number of identical agents shared by all
// customers of one replication. Requests that cannot be granted wait in a
// FIFO queue; there is no preemption and no priority class.
//
// Invariants:
//   - InUse() <= Capacity at all times
//   - QueueLen() > 0 only while InUse() == Capacity
//
// The pool is only touched from events run by its Simulator, so it needs no locking.
type ResourcePool struct {
	Capacity int

	inUse   int
	waiters WaitQueue

	peakInUse    int
	peakQueueLen int
	grants       int
}

// NewResourcePool creates a pool with the given capacity. A non-positive
// capacity is a programming error and panics; configs are validated first.
func NewResourcePool(capacity int) *ResourcePool {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewResourcePool: capacity must be > 0, got %d", capacity))
	}
	return &ResourcePool{Capacity: capacity}
}

// Request grants an agent to c if one is free and returns true. Otherwise c
// is appended to the wait queue and Request returns false; c will be
// returned by a later Release.
func (p *ResourcePool) Request(c *Customer) bool {
	if p.inUse < p.Capacity {
		p.grant()
		return true
	}
	p.waiters.Enqueue(c)
	p.peakQueueLen = max(p.peakQueueLen, p.waiters.Len())
	return false
}

// Release returns a held agent. If customers are waiting, the head of the
// queue is granted the freed agent and returned so the caller can resume it.
func (p *ResourcePool) Release() *Customer {
	if p.inUse == 0 {
		panic("ResourcePool.Release: no agent is held")
	}
	p.inUse--
	next := p.waiters.Dequeue()
	if next != nil {
		p.grant()
	}
	return next
}

func (p *ResourcePool) grant() {
	p.inUse++
	p.grants++
	p.peakInUse = max(p.peakInUse, p.inUse)
}

// InUse returns the number of agents currently held.
func (p *ResourcePool) InUse() int {
	return p.inUse
}

// QueueLen returns the number of customers waiting for an agent.
func (p *ResourcePool) QueueLen() int {
	return p.waiters.Len()
}

// PeakInUse returns the highest concurrent holder count observed.
func (p *ResourcePool) PeakInUse() int {
	return p.peakInUse
}

// PeakQueueLen returns the longest wait queue observed.
func (p *ResourcePool) PeakQueueLen() int {
	return p.peakQueueLen
}

// Grants returns the total number of grants issued.
func (p *ResourcePool) Grants() int {
	return p.grants
}

func (p *ResourcePool) String() string {
	return fmt.Sprintf("ResourcePool(capacity=%d, inUse=%d, waiting=%s)", p.Capacity, p.inUse, p.waiters.String())
}
