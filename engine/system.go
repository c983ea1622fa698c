package engine

// System is the interface all simulation systems implement
//
// Systems that react to events additionally implement event.Handler and are
// registered on the router; Update covers per-tick work that is not
// event-driven (most plant systems leave it empty).
type System interface {
	// Name returns the system's name for logging
	Name() string

	// Priority orders system updates; lower values run first
	Priority() int

	// Update runs one tick of the system
	Update()
}
