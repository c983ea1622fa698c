package event

import (
	"testing"
)

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
	relay func(ev GameEvent)
}

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	*h.log = append(*h.log, h.name)
	if h.relay != nil {
		h.relay(ev)
	}
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var log []string
	r.Register(&recordingHandler{name: "first", types: []EventType{EventSeedPlanted}, log: &log})
	r.Register(&recordingHandler{name: "second", types: []EventType{EventSeedPlanted}, log: &log})

	q.Push(GameEvent{Type: EventSeedPlanted})
	r.DispatchAll()

	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("Expected registration-order dispatch [first second], got %v", log)
	}
}

func TestRouterRoutesByType(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var log []string
	r.Register(&recordingHandler{name: "planter", types: []EventType{EventSeedPlanted}, log: &log})
	r.Register(&recordingHandler{name: "harvester", types: []EventType{EventHarvestRequest}, log: &log})

	q.Push(GameEvent{Type: EventHarvestRequest})
	r.DispatchAll()

	if len(log) != 1 || log[0] != "harvester" {
		t.Errorf("Expected only harvester to fire, got %v", log)
	}
}

func TestRouterDeferredCascade(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var log []string
	r.Register(&recordingHandler{
		name:  "breaker",
		types: []EventType{EventBlockBroken},
		log:   &log,
		relay: func(GameEvent) {
			q.Push(GameEvent{Type: EventRemoveBud})
		},
	})
	r.Register(&recordingHandler{name: "detacher", types: []EventType{EventRemoveBud}, log: &log})

	q.Push(GameEvent{Type: EventBlockBroken})

	// First pass handles only the original event
	r.DispatchAll()
	if len(log) != 1 {
		t.Fatalf("Expected 1 handled event after first dispatch, got %d", len(log))
	}

	// The cascaded event is picked up on the next pass
	r.DispatchAll()
	if len(log) != 2 || log[1] != "detacher" {
		t.Errorf("Expected cascaded RemoveBud dispatch, got %v", log)
	}
}

func TestRouterDispatchUntilEmpty(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var log []string
	r.Register(&recordingHandler{
		name:  "breaker",
		types: []EventType{EventBlockBroken},
		log:   &log,
		relay: func(GameEvent) {
			q.Push(GameEvent{Type: EventRemoveBud})
		},
	})
	r.Register(&recordingHandler{name: "detacher", types: []EventType{EventRemoveBud}, log: &log})

	q.Push(GameEvent{Type: EventBlockBroken})
	r.DispatchUntilEmpty(10)

	if len(log) != 2 {
		t.Errorf("Expected both events handled, got %v", log)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d pending", q.Len())
	}
}
