package system

import (
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
)

// InventorySystem transfers items into actor inventories
type InventorySystem struct {
	world *engine.World
}

// NewInventorySystem creates the inventory system
func NewInventorySystem(world *engine.World) *InventorySystem {
	return &InventorySystem{world: world}
}

// Name returns the system's name
func (s *InventorySystem) Name() string {
	return "inventory"
}

func (s *InventorySystem) Priority() int {
	return PriorityInventory
}

// Update is a no-op; inventory transfer is synchronous
func (s *InventorySystem) Update() {}

// Give attempts to place an item into the receiver's inventory
// Returns false when the receiver is gone, has no inventory, or is full;
// the caller must then drop the item physically
func (s *InventorySystem) Give(receiver, source, item core.Entity) bool {
	if !s.world.Exists(receiver) || !s.world.Exists(item) {
		return false
	}
	inv, ok := s.world.Components.Inventory.Get(receiver)
	if !ok || inv.Full() {
		return false
	}
	inv.Slots = append(inv.Slots, item)
	s.world.Components.Inventory.Set(receiver, inv)
	return true
}
