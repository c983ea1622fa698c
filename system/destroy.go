package system

import (
	"math/rand/v2"

	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
	"github.com/lixenwraith/grove/event"
)

// DestroySystem handles plant destruction from every path: non-sustainable
// harvest, external block breaks, and cascade from a dying vine stem
//
// All paths converge on DestroyPlant so seed-drop behavior stays consistent.
type DestroySystem struct {
	world   *engine.World
	dropper *ItemDropper
}

// NewDestroySystem creates the destruction system
func NewDestroySystem(world *engine.World, dropper *ItemDropper) *DestroySystem {
	return &DestroySystem{world: world, dropper: dropper}
}

// Name returns the system's name
func (s *DestroySystem) Name() string {
	return "destroy"
}

func (s *DestroySystem) Priority() int {
	return PriorityDestroy
}

// Update is a no-op; destruction is event-driven
func (s *DestroySystem) Update() {}

// EventTypes declares the events this system consumes
func (s *DestroySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventBlockBroken}
}

// HandleEvent reacts to external destruction of a plant block
func (s *DestroySystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.BlockBrokenPayload)
	if !ok || p.Consumed {
		return
	}
	if !validPlantTarget(s.world, p.Target) {
		return
	}
	blk, _ := s.world.Components.Block.Get(p.Target)

	s.DestroyPlant(p.Target, false)
	s.world.SetBlock(blk.Pos, engine.AirBlock)
	p.Consumed = true
}

// DestroyPlant runs the destruction semantics for a bush or bud
//
// Standalone bushes drop a weighted random quantity of seeds, but only when
// destroyed in their final stage; immature bushes yield nothing. Buds always
// drop exactly one seed regardless of stage, clear their representation, and
// notify their stem to detach them unless the stem itself is already dead.
// The caller remains responsible for removing a bush's representation.
func (s *DestroySystem) DestroyPlant(e core.Entity, parentDead bool) {
	plant, ok := s.world.Components.Plant.Get(e)
	if !ok {
		return
	}
	blk, ok := s.world.Components.Block.Get(e)
	if !ok {
		return
	}
	pos := blk.Pos

	if !plant.IsBud() {
		if plant.AtFinalStage() {
			s.dropSeeds(seedCount(s.world.Resources.Rand, plant.SeedDropWeights), plant.SeedItem(), pos, e)
		}
		s.world.PushEvent(event.EventPlantDestroyed, &event.PlantDestroyedPayload{Plant: e, Pos: pos})
		return
	}

	if !parentDead {
		s.world.PushEvent(event.EventRemoveBud, &event.RemoveBudPayload{Stem: plant.Parent, Bud: e})
	}
	s.world.SetBlock(pos, engine.AirBlock)
	s.dropSeeds(1, plant.SeedItem(), pos, e)
	s.world.PushEvent(event.EventPlantDestroyed, &event.PlantDestroyedPayload{Plant: e, Pos: pos, ParentDead: parentDead})
}

// dropSeeds releases n seed items above the position
func (s *DestroySystem) dropSeeds(n int, seed string, pos core.Vec3i, plant core.Entity) {
	for i := 0; i < n; i++ {
		item := s.dropper.CreateItem(seed)
		s.dropper.DropAt(item, pos)
		s.world.PushEvent(event.EventProduceCreated, &event.ProduceCreatedPayload{Plant: plant, Item: item})
	}
}

// seedCount draws a seed quantity from the weighted distribution
//
// Index i carries the relative weight of dropping i seeds. The draw walks
// the weights in index order subtracting each from r; no division is ever
// performed, so a zero total degenerates to index 0 rather than failing.
func seedCount(rng *rand.Rand, weights []int) int {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return 0
	}

	r := rng.IntN(sum)
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return 0
}
