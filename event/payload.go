package event

import (
	"github.com/lixenwraith/grove/core"
)

// SeedPlantedPayload carries the planting position and the definition name
// to instantiate. The GrowthSystem resolves the name against loaded content.
type SeedPlantedPayload struct {
	Pos        core.Vec3i
	Definition string
}

// HarvestRequestPayload carries a harvest attempt
// Consumed is set by the first handler that fully processes the request,
// so no other handler acts on it
type HarvestRequestPayload struct {
	Target    core.Entity
	Harvester core.Entity
	Consumed  bool
}

// CheatGrowthPayload forces stage movement on the target plant
// Item optionally references the cheat item used; a CheatGrowthComponent on
// it with CausesUnGrowth set reverts instead of advancing
type CheatGrowthPayload struct {
	Target    core.Entity
	UnGrowth  bool // true reverts one stage instead of advancing
	Item      core.Entity
	Harvester core.Entity
}

// BlockBrokenPayload signals external removal of a plant's world representation
// Consumed is set once the destruction has been handled
type BlockBrokenPayload struct {
	Target   core.Entity
	Consumed bool
}

// RemoveBudPayload tells a stem to forget a destroyed bud
type RemoveBudPayload struct {
	Stem core.Entity
	Bud  core.Entity
}

// PlantDestroyedPayload announces a destroyed plant instance
// ParentDead marks buds destroyed as part of a stem cascade
type PlantDestroyedPayload struct {
	Plant      core.Entity
	Pos        core.Vec3i
	ParentDead bool
}

// ProduceCreatedPayload references the originating plant and the created item
type ProduceCreatedPayload struct {
	Plant core.Entity
	Item  core.Entity
}

// ItemDroppedPayload references an item released as a physical drop
type ItemDroppedPayload struct {
	Item core.Entity
	Pos  core.Vec3f
}
