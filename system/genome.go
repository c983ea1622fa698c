package system

import (
	"github.com/lixenwraith/grove/component"
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
)

// GenomeSystem carries inherited genetic state across stage transitions
//
// The world representation entity is replaced at every transition, so the
// genome must be captured from the old entity before the swap and reattached
// to the replacement afterwards. Implements GrowthObserver.
type GenomeSystem struct {
	world *engine.World

	// pending holds genomes captured between the transfer hooks of a
	// transition in flight
	pending map[core.Entity]component.GenomeComponent
}

// NewGenomeSystem creates the genome system
func NewGenomeSystem(world *engine.World) *GenomeSystem {
	return &GenomeSystem{
		world:   world,
		pending: make(map[core.Entity]component.GenomeComponent),
	}
}

// Name returns the system's name
func (s *GenomeSystem) Name() string {
	return "genome"
}

func (s *GenomeSystem) Priority() int {
	return PriorityGenome
}

// Update is a no-op; genome transfer rides the growth observer hooks
func (s *GenomeSystem) Update() {}

// BeforeTransfer captures the genome while the old entity is still live
func (s *GenomeSystem) BeforeTransfer(e core.Entity) {
	if genome, ok := s.world.Components.Genome.Get(e); ok {
		s.pending[e] = genome
	}
}

// AfterTransfer reattaches a captured genome to the replacement entity
func (s *GenomeSystem) AfterTransfer(from, to core.Entity) {
	genome, ok := s.pending[from]
	if !ok {
		return
	}
	delete(s.pending, from)
	if to.Valid() {
		s.world.Components.Genome.Set(to, genome)
	}
}
