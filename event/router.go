package event

// Handler processes specific event types
// Systems implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Dispatch is single-threaded. Multiple handlers may register for the same
// event type; they are invoked in registration order, so tests can assert
// exact call sequences.
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Handlers may push further events; those are picked up on the next call
func (r *Router) DispatchAll() {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// DispatchUntilEmpty drains the queue repeatedly until no handler produces
// further events. The limit guards against event loops
func (r *Router) DispatchUntilEmpty(limit int) {
	for i := 0; i < limit && r.queue.Len() > 0; i++ {
		r.DispatchAll()
	}
}
