package system

import (
	"github.com/lixenwraith/grove/component"
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
	"github.com/lixenwraith/grove/event"
)

// VineSystem manages vine stems and their attached buds
//
// A stem tracks its buds only for detachment bookkeeping and cascade
// destruction; it does not own their lifecycle. Buds reference the stem via
// PlantComponent.Parent and run the regular bush state machine otherwise.
type VineSystem struct {
	world   *engine.World
	growth  *GrowthSystem
	destroy *DestroySystem
}

// NewVineSystem creates the vine system
func NewVineSystem(world *engine.World, growth *GrowthSystem, destroy *DestroySystem) *VineSystem {
	return &VineSystem{
		world:   world,
		growth:  growth,
		destroy: destroy,
	}
}

// Name returns the system's name
func (s *VineSystem) Name() string {
	return "vine"
}

func (s *VineSystem) Priority() int {
	return PriorityVine
}

// Update is a no-op; vine bookkeeping is event-driven
func (s *VineSystem) Update() {}

// EventTypes declares the events this system consumes
func (s *VineSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRemoveBud,
		event.EventBlockBroken,
	}
}

// HandleEvent routes bud detachment and stem destruction
func (s *VineSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventRemoveBud:
		p, ok := ev.Payload.(*event.RemoveBudPayload)
		if !ok {
			return
		}
		s.detachBud(p.Stem, p.Bud)

	case event.EventBlockBroken:
		p, ok := ev.Payload.(*event.BlockBrokenPayload)
		if !ok || p.Consumed {
			return
		}
		if !s.world.Components.Vine.Has(p.Target) {
			return
		}
		s.destroyStem(p.Target)
		p.Consumed = true
	}
}

// CreateStem places a vine stem block and returns the stem entity
func (s *VineSystem) CreateStem(pos core.Vec3i, block string) core.Entity {
	stem := s.world.SetBlock(pos, block)
	s.world.Components.Vine.Set(stem, component.VineComponent{})
	return stem
}

// AttachBud plants a bud at the position and links it to the stem
// Returns the invalid entity when the stem is gone
func (s *VineSystem) AttachBud(stem core.Entity, pos core.Vec3i, proto component.PlantComponent) core.Entity {
	return s.RestoreBud(stem, pos, proto, 0)
}

// RestoreBud attaches a bud directly at the given growth stage
// Used when rebuilding a vine from a snapshot
func (s *VineSystem) RestoreBud(stem core.Entity, pos core.Vec3i, proto component.PlantComponent, stage int) core.Entity {
	vine, ok := s.world.Components.Vine.Get(stem)
	if !ok {
		return 0
	}
	proto.Parent = stem
	bud := s.growth.RestorePlant(pos, proto, stage)
	if !bud.Valid() {
		return 0
	}
	// The transfer observers only track buds already in the list, so the
	// freshly created bud is appended after the transition completes
	vine, _ = s.world.Components.Vine.Get(stem)
	vine.Buds = append(vine.Buds, bud)
	s.world.Components.Vine.Set(stem, vine)
	return bud
}

// BudCount returns the number of buds attached to the stem
func (s *VineSystem) BudCount(stem core.Entity) int {
	vine, ok := s.world.Components.Vine.Get(stem)
	if !ok {
		return 0
	}
	return len(vine.Buds)
}

// RecordMigration updates the stem's bud list when a bud migrates to a new
// block entity during a stage transition
func (s *VineSystem) RecordMigration(from, to core.Entity) {
	plant, ok := s.world.Components.Plant.Get(to)
	if !ok || !plant.IsBud() {
		return
	}
	vine, ok := s.world.Components.Vine.Get(plant.Parent)
	if !ok {
		return
	}
	for i, bud := range vine.Buds {
		if bud == from {
			vine.Buds[i] = to
			s.world.Components.Vine.Set(plant.Parent, vine)
			return
		}
	}
}

// BeforeTransfer implements GrowthObserver; the stem only needs the
// after-migration identity
func (s *VineSystem) BeforeTransfer(core.Entity) {}

// AfterTransfer implements GrowthObserver, keeping bud links current across
// stage transitions
func (s *VineSystem) AfterTransfer(from, to core.Entity) {
	s.RecordMigration(from, to)
}

// detachBud removes a destroyed bud from the stem's tracking list
// A missing stem means it is already gone; treated as resolved
func (s *VineSystem) detachBud(stem, bud core.Entity) {
	vine, ok := s.world.Components.Vine.Get(stem)
	if !ok {
		return
	}
	for i, b := range vine.Buds {
		if b == bud {
			vine.Buds[i] = vine.Buds[len(vine.Buds)-1]
			vine.Buds = vine.Buds[:len(vine.Buds)-1]
			break
		}
	}
	s.world.Components.Vine.Set(stem, vine)
}

// destroyStem destroys a stem and cascades to its buds
//
// Buds are destroyed with the parent-already-dead flag set so they do not
// re-notify the half-destroyed stem.
func (s *VineSystem) destroyStem(stem core.Entity) {
	vine, ok := s.world.Components.Vine.Get(stem)
	if !ok {
		return
	}
	blk, hasBlock := s.world.Components.Block.Get(stem)

	for _, bud := range vine.Buds {
		if !s.world.Exists(bud) {
			continue
		}
		s.destroy.DestroyPlant(bud, true)
	}

	if hasBlock {
		s.world.SetBlock(blk.Pos, engine.AirBlock)
	} else {
		s.world.DestroyEntity(stem)
	}
}
