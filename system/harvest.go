package system

import (
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
	"github.com/lixenwraith/grove/event"
)

// HarvestSystem validates harvest attempts, hands produce to the harvester,
// and dispatches either regrowth or destruction
//
// Harvest requests may race with concurrent destruction, so every failed
// precondition is a silent no-op rather than an error; "nothing happened" is
// the intended outcome for harmless races.
type HarvestSystem struct {
	world     *engine.World
	growth    *GrowthSystem
	destroy   *DestroySystem
	inventory *InventorySystem
	dropper   *ItemDropper
}

// NewHarvestSystem creates the harvest system
func NewHarvestSystem(world *engine.World, growth *GrowthSystem, destroy *DestroySystem,
	inventory *InventorySystem, dropper *ItemDropper) *HarvestSystem {
	return &HarvestSystem{
		world:     world,
		growth:    growth,
		destroy:   destroy,
		inventory: inventory,
		dropper:   dropper,
	}
}

// Name returns the system's name
func (s *HarvestSystem) Name() string {
	return "harvest"
}

func (s *HarvestSystem) Priority() int {
	return PriorityHarvest
}

// Update is a no-op; harvesting is event-driven
func (s *HarvestSystem) Update() {}

// EventTypes declares the events this system consumes
func (s *HarvestSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventHarvestRequest}
}

// HandleEvent processes harvest requests
func (s *HarvestSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.HarvestRequestPayload)
	if !ok || p.Consumed {
		return
	}
	s.Harvest(p)
}

// Harvest performs a harvest attempt
//
// Produce is only given in the final growth stage. The produce item goes to
// the harvester's inventory; when the inventory refuses it, the item is
// released as a physical drop instead. Sustainable plants revert one stage,
// others are destroyed and their representation replaced with air. The
// request is marked consumed so no other handler processes it.
func (s *HarvestSystem) Harvest(p *event.HarvestRequestPayload) {
	if !validPlantTarget(s.world, p.Target) || !s.world.Exists(p.Harvester) {
		return
	}
	plant, _ := s.world.Components.Plant.Get(p.Target)
	if !plant.AtFinalStage() {
		return
	}
	blk, _ := s.world.Components.Block.Get(p.Target)
	pos := blk.Pos

	item := s.dropProduce(plant.Produce, pos, p.Harvester, p.Target)
	s.world.PushEvent(event.EventProduceCreated, &event.ProduceCreatedPayload{Plant: p.Target, Item: item})

	if plant.Sustainable {
		s.growth.Advance(pos, p.Target, -1)
	} else {
		s.destroy.DestroyPlant(p.Target, false)
		s.world.SetBlock(pos, engine.AirBlock)
	}

	p.Consumed = true
}

// dropProduce creates the produce item and gives it to the harvester, or
// releases it physically when the inventory refuses
func (s *HarvestSystem) dropProduce(produce string, pos core.Vec3i, harvester, target core.Entity) core.Entity {
	item := s.dropper.CreateItem(produce)
	if !s.inventory.Give(harvester, target, item) {
		s.dropper.DropAt(item, pos)
	}
	return item
}
