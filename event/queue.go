package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/parameter"
)

// EventQueue is a lock-free ring buffer carrying turn requests from the host and outcome events from systems
// Producers push with CAS on tail; the scheduler is the only consumer
// A slot is readable once its published flag is set, so a half-written event is never routed
// When full the oldest events are overwritten and counted in Dropped
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
	dropped   atomic.Uint64
}

// NewEventQueue returns an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next slot and publishes the event into it
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		slot := eq.tail.Load()
		if !eq.tail.CompareAndSwap(slot, slot+1) {
			continue
		}

		idx := slot & parameter.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true) // after the write

		// Full ring: advance the reader past the overwritten slot
		readAt := eq.head.Load()
		if slot+1-readAt > parameter.EventQueueSize {
			if eq.head.CompareAndSwap(readAt, slot+1-parameter.EventQueueSize) {
				eq.dropped.Add(1)
			}
		}
		return
	}
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}

// Consume drains every published event in FIFO order
// Stops early at a slot whose producer has not finished writing; it is picked up next call
func (eq *EventQueue) Consume() []GameEvent {
	for {
		readAt := eq.head.Load()
		writeAt := eq.tail.Load()
		if writeAt == readAt {
			return nil
		}

		pending := writeAt - readAt
		if pending > parameter.EventQueueSize {
			pending = parameter.EventQueueSize
			readAt = writeAt - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, pending)
		for i := uint64(0); i < pending; i++ {
			idx := (readAt + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			out = append(out, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if !eq.head.CompareAndSwap(readAt, readAt+uint64(len(out))) {
			continue
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
}

// Len returns the approximate pending count, capped at capacity
func (eq *EventQueue) Len() int {
	readAt, writeAt := eq.head.Load(), eq.tail.Load()
	if writeAt <= readAt {
		return 0
	}
	return min(int(writeAt-readAt), parameter.EventQueueSize)
}
