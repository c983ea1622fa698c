package component

import (
	"github.com/lixenwraith/grove/core"
)

// InventoryComponent is a fixed-capacity item container on a harvesting actor
type InventoryComponent struct {
	Slots    []core.Entity
	Capacity int
}

// Full reports whether the inventory cannot accept another item
func (inv InventoryComponent) Full() bool {
	return len(inv.Slots) >= inv.Capacity
}
