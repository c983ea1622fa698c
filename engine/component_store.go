package engine

import (
	"github.com/lixenwraith/grove/component"
	"github.com/lixenwraith/grove/core"
)

// ComponentStore holds the typed stores for every component kind
// Initialized once per world; fields stay valid for the world's lifetime
type ComponentStore struct {
	// World representation
	Block *Store[component.BlockComponent]

	// Plant lifecycle
	Plant  *Store[component.PlantComponent]
	Vine   *Store[component.VineComponent]
	Genome *Store[component.GenomeComponent]
	Cheat  *Store[component.CheatGrowthComponent]

	// Items and actors
	Item      *Store[component.ItemComponent]
	Inventory *Store[component.InventoryComponent]
	Kinetic   *Store[component.KineticComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Block:     NewStore[component.BlockComponent](),
		Plant:     NewStore[component.PlantComponent](),
		Vine:      NewStore[component.VineComponent](),
		Genome:    NewStore[component.GenomeComponent](),
		Cheat:     NewStore[component.CheatGrowthComponent](),
		Item:      NewStore[component.ItemComponent](),
		Inventory: NewStore[component.InventoryComponent](),
		Kinetic:   NewStore[component.KineticComponent](),
	}
}

// removeFromAll strips every component the entity has
func (cs *ComponentStore) removeFromAll(e core.Entity) {
	cs.Block.Remove(e)
	cs.Plant.Remove(e)
	cs.Vine.Remove(e)
	cs.Genome.Remove(e)
	cs.Cheat.Remove(e)
	cs.Item.Remove(e)
	cs.Inventory.Remove(e)
	cs.Kinetic.Remove(e)
}

func (cs *ComponentStore) clearAll() {
	cs.Block.Clear()
	cs.Plant.Clear()
	cs.Vine.Clear()
	cs.Genome.Clear()
	cs.Cheat.Clear()
	cs.Item.Clear()
	cs.Inventory.Clear()
	cs.Kinetic.Clear()
}
