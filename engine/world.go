package engine

import (
	"github.com/lixenwraith/grove/component"
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/event"
)

// AirBlock is the world representation id of an empty slot
const AirBlock = "air"

// World contains all entities and their components using typed stores
//
// All mutation happens on a single authoritative goroutine: events and
// scheduler callbacks are processed sequentially, so the stores carry no
// locks. External collaborators (block storage, inventory transfer) are
// modeled as synchronous calls that must not reenter the world concurrently.
type World struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Components ComponentStore
	Resources  *Resource

	// Block grid: position -> representation entity
	blocks map[core.Vec3i]core.Entity

	systems []System
}

// NewWorld creates a new world with empty stores
func NewWorld(res *Resource) *World {
	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
		Resources:    res,
		blocks:       make(map[core.Vec3i]core.Entity),
	}
}

// CreateEntity reserves a new entity id
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Exists reports whether the entity is currently live
func (w *World) Exists(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes an entity and all its components
func (w *World) DestroyEntity(e core.Entity) {
	if !w.Exists(e) {
		return
	}
	if blk, ok := w.Components.Block.Get(e); ok {
		if w.blocks[blk.Pos] == e {
			delete(w.blocks, blk.Pos)
		}
	}
	w.Components.removeFromAll(e)
	delete(w.alive, e)
}

// SetBlock replaces the world representation at a position
//
// The previous entity at the position, if any, is destroyed; a fresh entity
// carrying a BlockComponent is created and returned. Setting AirBlock leaves
// the position empty and returns the invalid entity. The returned entity is
// always freshly addressable, per the world storage contract.
func (w *World) SetBlock(pos core.Vec3i, block string) core.Entity {
	if old, ok := w.blocks[pos]; ok {
		delete(w.blocks, pos)
		w.Components.removeFromAll(old)
		delete(w.alive, old)
	}
	if block == AirBlock || block == "" {
		return 0
	}
	e := w.CreateEntity()
	w.Components.Block.Set(e, component.BlockComponent{Pos: pos, Block: block})
	w.blocks[pos] = e
	return e
}

// EntityAt returns the representation entity at a position (0 if empty)
func (w *World) EntityAt(pos core.Vec3i) core.Entity {
	return w.blocks[pos]
}

// BlockAt returns the representation id at a position (AirBlock if empty)
func (w *World) BlockAt(pos core.Vec3i) string {
	if e, ok := w.blocks[pos]; ok {
		if blk, ok := w.Components.Block.Get(e); ok {
			return blk.Block
		}
	}
	return AirBlock
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	w.blocks = make(map[core.Vec3i]core.Entity)
	w.Components.clearAll()
}

// AddSystem registers a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort, small N
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() > w.systems[i].Priority() {
			w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
		}
	}
}

// Systems returns a copy of all registered systems in priority order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// PushEvent emits a simulation event onto the shared queue
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.Resources == nil || w.Resources.Events == nil {
		return
	}
	w.Resources.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Frame,
	})
}
