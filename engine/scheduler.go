package engine

import (
	"sort"
	"time"
)

// DelayScheduler runs keyed one-shot callbacks on the authoritative loop
//
// Scheduling under an existing key replaces the prior entry, which is the
// only cancellation mechanism the simulation needs: growth timers are keyed
// by entity identity, so migrating a plant to a new block entity leaves the
// stale key pointing at a destroyed entity and arms a fresh one.
//
// Callbacks fire during Update, on the caller's goroutine, in deadline order.
type DelayScheduler struct {
	time    TimeProvider
	actions map[string]*delayedAction
	seq     uint64 // tie-break for identical deadlines, preserves schedule order
}

type delayedAction struct {
	key      string
	deadline time.Time
	seq      uint64
	fn       func()
}

// NewDelayScheduler creates a scheduler bound to a time source
func NewDelayScheduler(tp TimeProvider) *DelayScheduler {
	return &DelayScheduler{
		time:    tp,
		actions: make(map[string]*delayedAction),
	}
}

// Schedule arms a one-shot callback after the given delay
// An existing entry under the same key is replaced
func (s *DelayScheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.seq++
	s.actions[key] = &delayedAction{
		key:      key,
		deadline: s.time.Now().Add(delay),
		seq:      s.seq,
		fn:       fn,
	}
}

// Cancel drops a pending entry; unknown keys are ignored
func (s *DelayScheduler) Cancel(key string) {
	delete(s.actions, key)
}

// Pending returns the number of armed entries
func (s *DelayScheduler) Pending() int {
	return len(s.actions)
}

// HasKey reports whether an entry is armed under the key
func (s *DelayScheduler) HasKey(key string) bool {
	_, ok := s.actions[key]
	return ok
}

// Update fires every due callback in deadline order
//
// Due entries are removed before their callbacks run, so a callback may
// re-schedule under the same key. Entries armed by callbacks during this
// Update are not fired until the next one.
func (s *DelayScheduler) Update() {
	now := s.time.Now()

	var due []*delayedAction
	for _, a := range s.actions {
		if !a.deadline.After(now) {
			due = append(due, a)
		}
	}
	if len(due) == 0 {
		return
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})

	for _, a := range due {
		// Skip if the entry was replaced or cancelled by an earlier callback
		if current, ok := s.actions[a.key]; !ok || current != a {
			continue
		}
		delete(s.actions, a.key)
		a.fn()
	}
}
