package system

import (
	"strconv"

	"github.com/lixenwraith/grove/component"
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
	"github.com/lixenwraith/grove/event"
)

// DefinitionSource resolves plant definition names to instance prototypes
// Implemented by content.Manager
type DefinitionSource interface {
	Plant(name string) (component.PlantComponent, bool)
}

// GrowthObserver receives the inherited-state transfer hooks around a stage
// transition
//
// BeforeTransfer fires while the old representation entity is still live, so
// observers can capture extra state; AfterTransfer fires once the new entity
// carries the migrated plant instance. Observers are invoked synchronously
// in registration order.
type GrowthObserver interface {
	BeforeTransfer(e core.Entity)
	AfterTransfer(from, to core.Entity)
}

// GrowthSystem drives the plant growth state machine
//
// A plant's world representation is a block identity, so every stage
// transition replaces the block entity and migrates the plant instance onto
// the replacement. Timers are keyed per entity identity; the migration
// therefore invalidates the superseded timer and a fresh one is armed on the
// new entity.
type GrowthSystem struct {
	world *engine.World
	sched *engine.DelayScheduler
	defs  DefinitionSource

	observers []GrowthObserver
}

// NewGrowthSystem creates the growth system
func NewGrowthSystem(world *engine.World, sched *engine.DelayScheduler, defs DefinitionSource) *GrowthSystem {
	return &GrowthSystem{
		world: world,
		sched: sched,
		defs:  defs,
	}
}

// Name returns the system's name
func (s *GrowthSystem) Name() string {
	return "growth"
}

func (s *GrowthSystem) Priority() int {
	return PriorityGrowth
}

// Update is a no-op; growth is driven by events and scheduler callbacks
func (s *GrowthSystem) Update() {}

// EventTypes declares the events this system consumes
func (s *GrowthSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSeedPlanted,
		event.EventCheatGrowth,
	}
}

// HandleEvent routes planting and cheat-growth requests
func (s *GrowthSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSeedPlanted:
		p, ok := ev.Payload.(*event.SeedPlantedPayload)
		if !ok || s.defs == nil {
			return
		}
		proto, ok := s.defs.Plant(p.Definition)
		if !ok {
			s.world.Resources.Log.Warn().Str("definition", p.Definition).Msg("unknown plant definition")
			return
		}
		s.PlantSeed(p.Pos, proto)

	case event.EventCheatGrowth:
		p, ok := ev.Payload.(*event.CheatGrowthPayload)
		if !ok {
			return
		}
		s.cheatGrowth(p)
	}
}

// RegisterObserver appends an inherited-state observer
// Must be called during wiring, before the simulation starts
func (s *GrowthSystem) RegisterObserver(ob GrowthObserver) {
	s.observers = append(s.observers, ob)
}

// PlantSeed creates a plant instance at the position and performs the first
// stage transition
//
// The prototype starts at the transient stage -1 and is immediately advanced
// to stage 0, placing the first representation block. Returns the live block
// entity carrying the instance.
func (s *GrowthSystem) PlantSeed(pos core.Vec3i, proto component.PlantComponent) core.Entity {
	return s.RestorePlant(pos, proto, 0)
}

// RestorePlant places a plant instance directly at the given stage, placing
// its representation block and rearming the growth timer. Used both for
// planting (stage 0) and for rebuilding a world from a snapshot.
func (s *GrowthSystem) RestorePlant(pos core.Vec3i, proto component.PlantComponent, stage int) core.Entity {
	if proto.Stages == nil || proto.Stages.Len() == 0 {
		return 0
	}
	// Entering through the transition path places the block and arms the
	// timer exactly as live growth would
	proto.CurrentStage = proto.Stages.ClampIndex(stage) - 1

	seedling := s.world.CreateEntity()
	s.world.Components.Plant.Set(seedling, proto)

	return s.Advance(pos, seedling, 1)
}

// Advance moves a plant by delta growth stages
//
// Forward growth from the final stage is a no-op; negative delta (harvest
// regrowth, cheat un-growth) is always permitted, including from the final
// stage. The stage index is clamped through the stage table, the block at
// pos is replaced with the new stage's representation, and the instance
// migrates onto the replacement entity. Returns the live entity (the
// original when nothing happened).
func (s *GrowthSystem) Advance(pos core.Vec3i, e core.Entity, delta int) core.Entity {
	plant, ok := s.world.Components.Plant.Get(e)
	if !ok {
		return 0
	}
	if plant.AtFinalStage() && delta >= 0 {
		// Final stage is terminal for forward growth; only harvesting or
		// destruction leaves it
		return e
	}

	for _, ob := range s.observers {
		ob.BeforeTransfer(e)
	}

	plant.CurrentStage = plant.Stages.ClampIndex(plant.CurrentStage + delta)
	stage := plant.Stages.Stage(plant.CurrentStage)

	// The old representation entity is discarded with its timer; the
	// instance is the source of truth and moves to the replacement
	s.sched.Cancel(growthKey(e))
	next := s.world.SetBlock(pos, stage.Block)
	s.world.Components.Plant.Set(next, plant)

	if stage.Timed() {
		s.armTimer(pos, next, stage)
	}

	for _, ob := range s.observers {
		ob.AfterTransfer(e, next)
	}

	// A freshly planted seedling entity is not the block at pos; retire it
	if e != next && s.world.Exists(e) {
		s.world.DestroyEntity(e)
	}

	s.world.Resources.Log.Debug().
		Uint64("entity", uint64(next)).
		Int("stage", plant.CurrentStage).
		Str("block", stage.Block).
		Msg("plant stage transition")

	return next
}

// armTimer schedules the next growth step with a randomized duration drawn
// from the stage bounds, inclusive
func (s *GrowthSystem) armTimer(pos core.Vec3i, e core.Entity, stage component.GrowthStage) {
	delay := engine.RandDuration(s.world.Resources.Rand, stage.MinTime, stage.MaxTime)
	s.sched.Schedule(growthKey(e), delay, func() {
		// The entity may have been harvested or destroyed since arming
		if !s.world.Exists(e) {
			return
		}
		s.Advance(pos, e, 1)
	})
}

// cheatGrowth forces a plant one stage in either direction, reusing the
// regular advance path
func (s *GrowthSystem) cheatGrowth(p *event.CheatGrowthPayload) {
	if !validPlantTarget(s.world, p.Target) || !s.world.Exists(p.Harvester) {
		return
	}
	blk, _ := s.world.Components.Block.Get(p.Target)
	delta := 1
	if p.UnGrowth {
		delta = -1
	}
	// The cheat item's own component wins over the payload flag
	if cheat, ok := s.world.Components.Cheat.Get(p.Item); ok && cheat.CausesUnGrowth {
		delta = -1
	}
	s.Advance(blk.Pos, p.Target, delta)
}

// validPlantTarget checks that the entity exists and is a plant with a world
// representation
func validPlantTarget(w *engine.World, e core.Entity) bool {
	return w.Exists(e) && w.Components.Plant.Has(e) && w.Components.Block.Has(e)
}

func growthKey(e core.Entity) string {
	return "grove:growth:" + strconv.FormatUint(uint64(e), 10)
}
