package engine

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/grove/event"
)

// Resource holds singleton simulation resources shared by all systems
// Accessed via World.Resources
type Resource struct {
	// Time is the authoritative time source; tests inject MockTimeProvider
	Time TimeProvider

	// Events is the shared event queue systems publish to
	Events *event.EventQueue

	// Rand is the injected randomness source; seeded per test for
	// reproducibility
	Rand *rand.Rand

	// Log is the structured logger
	Log zerolog.Logger

	// Frame is the current tick number, advanced by the simulation loop
	Frame int64
}

// NewResource assembles the default resource set
func NewResource(time TimeProvider, seed int64, log zerolog.Logger) *Resource {
	return &Resource{
		Time:   time,
		Events: event.NewEventQueue(),
		Rand:   SeededRand(seed),
		Log:    log,
	}
}
