package system

import (
	"github.com/lixenwraith/grove/component"
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
	"github.com/lixenwraith/grove/event"
)

// DropImpulseMax is the maximum single-axis impulse for seed and produce drops
const DropImpulseMax = 22.0

// ItemDropper creates item entities and releases them as physical drops
type ItemDropper struct {
	world *engine.World
}

// NewItemDropper creates a dropper bound to a world
func NewItemDropper(world *engine.World) *ItemDropper {
	return &ItemDropper{world: world}
}

// CreateItem creates a bare item entity for the given prefab id
func (d *ItemDropper) CreateItem(prefab string) core.Entity {
	e := d.world.CreateEntity()
	d.world.Components.Item.Set(e, component.ItemComponent{Prefab: prefab})
	return e
}

// DropAt releases an item into the world just above the given position with
// a small randomized outward impulse
//
// The drop is fire and forget: nothing verifies the item survives, matching
// the behavior for items already handed to physics.
func (d *ItemDropper) DropAt(item core.Entity, pos core.Vec3i) {
	rng := d.world.Resources.Rand
	at := pos.ToVec3f().Add(core.Vec3f{Y: 0.5})
	d.world.Components.Kinetic.Set(item, component.KineticComponent{
		Pos: at,
		Vel: core.Vec3f{
			X: engine.RandImpulse(rng, DropImpulseMax),
			Y: engine.RandImpulse(rng, DropImpulseMax),
			Z: engine.RandImpulse(rng, DropImpulseMax),
		},
	})
	d.world.PushEvent(event.EventItemDropped, &event.ItemDroppedPayload{Item: item, Pos: at})
}
