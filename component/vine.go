package component

import (
	"github.com/lixenwraith/grove/core"
)

// VineComponent is the stem-side record of a vine's attached buds
//
// The stem does not own its buds; it only tracks them so destruction can
// cascade and detachment can be recorded. Buds point back via
// PlantComponent.Parent.
type VineComponent struct {
	Buds []core.Entity
}
