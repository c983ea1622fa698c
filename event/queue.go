package event

import (
	"sync/atomic"
)

const queueCapacity = 256

// EventQueue is a lock-free ring buffer for simulation events
//
// Push is safe for concurrent producers (CAS loop); Consume is designed for
// a single consumer, the authoritative simulation loop. When the buffer is
// full the oldest events are overwritten.
type EventQueue struct {
	events [queueCapacity]GameEvent
	head   atomic.Uint64 // next position to read
	tail   atomic.Uint64 // next position to write
}

// NewEventQueue creates an empty event queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event to the queue
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			eq.events[currentTail%queueCapacity] = ev

			// Advance head if an unread slot was overwritten; best-effort,
			// the consumer tolerates a failed CAS here
			currentHead := eq.head.Load()
			if nextTail-currentHead > queueCapacity {
				eq.head.CompareAndSwap(currentHead, nextTail-queueCapacity)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and marks them consumed
// Single consumer only
func (eq *EventQueue) Consume() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	available := currentTail - currentHead
	if available == 0 {
		return nil
	}
	if available > queueCapacity {
		available = queueCapacity
		currentHead = currentTail - queueCapacity
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(currentHead+i)%queueCapacity]
	}

	for !eq.head.CompareAndSwap(currentHead, currentTail) {
		currentHead = eq.head.Load()
		currentTail = eq.tail.Load()
		if currentTail == currentHead {
			return result
		}
	}
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	available := currentTail - currentHead
	if available == 0 {
		return nil
	}
	if available > queueCapacity {
		available = queueCapacity
		currentHead = currentTail - queueCapacity
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(currentHead+i)%queueCapacity]
	}
	return result
}

// Len returns the number of pending events (snapshot)
func (eq *EventQueue) Len() int {
	available := eq.tail.Load() - eq.head.Load()
	if available > queueCapacity {
		return queueCapacity
	}
	return int(available)
}
