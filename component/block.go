package component

import (
	"github.com/lixenwraith/grove/core"
)

// BlockComponent marks an entity as the world representation at a position
type BlockComponent struct {
	Pos   core.Vec3i
	Block string
}
