package component

import (
	"github.com/lixenwraith/grove/core"
)

// PlantComponent is the mutable per-instance state of a bush or vine bud
//
// The component is logically owned by whichever block entity currently
// represents the plant. Every stage transition replaces that entity, so the
// component migrates: it is copied onto the new block entity and the old
// entity is discarded, never aliased.
type PlantComponent struct {
	// Definition is the name of the plant definition this instance was
	// created from, kept for snapshot round-trips
	Definition string

	// CurrentStage indexes into Stages; -1 is a valid transient value
	// meaning "not yet placed" (a freshly planted seed)
	CurrentStage int

	// Stages is a shared read-only reference to the type's stage table
	Stages *StageTable

	// Parent references the vine stem this bud is attached to
	// Zero for a standalone bush
	Parent core.Entity

	// Sustainable plants revert one stage on harvest instead of being destroyed
	Sustainable bool

	// Seed is the item created when the plant drops seeds; empty means the
	// produce item is dropped instead
	Seed string

	// Produce is the item created on harvest
	Produce string

	// SeedDropWeights holds relative weights; index i is the weight of
	// dropping i seeds. Used only for standalone bushes, buds always drop
	// exactly one seed
	SeedDropWeights []int
}

// IsBud reports whether this instance is attached to a vine stem
func (p PlantComponent) IsBud() bool {
	return p.Parent.Valid()
}

// AtFinalStage reports whether the plant is in its last growth stage
func (p PlantComponent) AtFinalStage() bool {
	return p.Stages != nil && p.CurrentStage == p.Stages.Last()
}

// SeedItem returns the item id dropped as a seed, falling back to the
// produce id when the type has no distinct seed
func (p PlantComponent) SeedItem() string {
	if p.Seed == "" {
		return p.Produce
	}
	return p.Seed
}
