package sim

import "container/heap"

// scheduledEvent pairs an event with the sequence number it was scheduled under.
type scheduledEvent struct {
	ev  Event
	seq uint64
}

// EventQueue is a priority queue with deterministic ordering.
// Ordering: timestamp → scheduling sequence (FIFO among equal timestamps).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue struct {
	events  []scheduledEvent
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{
		events: make([]scheduledEvent, 0),
	}
	heap.Init(q)
	return q
}

// Len implements heap.Interface
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Less implements heap.Interface with deterministic ordering
func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]
	if ei.ev.Timestamp() != ej.ev.Timestamp() {
		return ei.ev.Timestamp() < ej.ev.Timestamp()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (q *EventQueue) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
}

// Push implements heap.Interface. Use Schedule instead.
func (q *EventQueue) Push(x any) {
	q.events = append(q.events, x.(scheduledEvent))
}

// Pop implements heap.Interface. Use PopNext instead.
func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduledEvent{}
	q.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the queue, stamping it with the next sequence number.
func (q *EventQueue) Schedule(e Event) {
	heap.Push(q, scheduledEvent{ev: e, seq: q.nextSeq})
	q.nextSeq++
}

// PopNext removes and returns the next event, or nil if the queue is empty.
func (q *EventQueue) PopNext() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(scheduledEvent).ev
}

// Peek returns the next event without removing it.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0].ev
}

// Scheduled returns the total number of events ever scheduled on this queue.
func (q *EventQueue) Scheduled() uint64 {
	return q.nextSeq
}
