package component

import (
	"github.com/lixenwraith/grove/core"
)

// KineticComponent carries position and velocity for physically dropped items
// The simulation only sets the initial impulse; integration is an external
// physics concern
type KineticComponent struct {
	Pos core.Vec3f
	Vel core.Vec3f
}
