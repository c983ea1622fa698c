package component

import (
	"fmt"
	"time"
)

// GrowthStage describes one discrete step in a plant's growth progression
//
// Block is the world representation id placed while the plant is in this
// stage. MinTime and MaxTime bound the randomized duration before the plant
// advances; both zero means the stage never advances on its own (terminal
// pending external action, e.g. the final stage).
type GrowthStage struct {
	Block   string
	MinTime time.Duration
	MaxTime time.Duration
}

// Timed reports whether this stage arms a growth timer
func (g GrowthStage) Timed() bool {
	return g.MinTime > 0 && g.MaxTime > 0
}

// StageTable is an ordered, immutable sequence of growth stages
//
// Built once at plant-type registration and shared read-only by every
// instance of that type. Insertion order at construction time is the stage
// index order.
type StageTable struct {
	stages []GrowthStage
}

// NewStageTable builds a stage table, validating the per-type invariants
func NewStageTable(stages []GrowthStage) (*StageTable, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("stage table must not be empty")
	}
	for i, st := range stages {
		if st.MinTime < 0 || st.MaxTime < 0 {
			return nil, fmt.Errorf("stage %d: negative duration", i)
		}
		if st.MinTime > st.MaxTime {
			return nil, fmt.Errorf("stage %d: min duration %v exceeds max %v", i, st.MinTime, st.MaxTime)
		}
		if st.Block == "" {
			return nil, fmt.Errorf("stage %d: missing block id", i)
		}
	}
	table := &StageTable{stages: make([]GrowthStage, len(stages))}
	copy(table.stages, stages)
	return table, nil
}

// Stage returns the descriptor at the given index
// Out-of-range indices saturate to the first or last stage; never fails
func (t *StageTable) Stage(i int) GrowthStage {
	return t.stages[t.ClampIndex(i)]
}

// ClampIndex saturates an index into [0, Len-1]
func (t *StageTable) ClampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(t.stages) {
		return len(t.stages) - 1
	}
	return i
}

// Len returns the number of stages
func (t *StageTable) Len() int {
	return len(t.stages)
}

// Last returns the index of the final stage
func (t *StageTable) Last() int {
	return len(t.stages) - 1
}
