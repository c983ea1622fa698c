package save

import (
	"github.com/lixenwraith/grove/component"
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
	"github.com/lixenwraith/grove/system"
)

// PlantRecord is the persisted state of one plant instance
//
// Only the definition name and stage index are saved; the stage table and
// drop weights are re-resolved from definitions on restore, so content
// updates apply to loaded worlds.
type PlantRecord struct {
	Pos        core.Vec3i `yaml:"pos"`
	Definition string     `yaml:"definition"`
	Stage      int        `yaml:"stage"`
	Genes      string     `yaml:"genes,omitempty"`
}

// StemRecord is the persisted state of a vine stem and its buds
type StemRecord struct {
	Pos   core.Vec3i    `yaml:"pos"`
	Block string        `yaml:"block"`
	Buds  []PlantRecord `yaml:"buds,omitempty"`
}

// Snapshot is a full persisted world state
type Snapshot struct {
	Frame  int64         `yaml:"frame"`
	Bushes []PlantRecord `yaml:"bushes,omitempty"`
	Stems  []StemRecord  `yaml:"stems,omitempty"`
}

// Capture builds a snapshot from the live world
// Timer deadlines are not persisted; restore re-rolls them from stage bounds
func Capture(w *engine.World) Snapshot {
	snap := Snapshot{Frame: w.Resources.Frame}

	for _, e := range w.Components.Plant.Entities() {
		plant, _ := w.Components.Plant.Get(e)
		if plant.IsBud() || plant.CurrentStage < 0 {
			continue
		}
		if rec, ok := plantRecord(w, e, plant); ok {
			snap.Bushes = append(snap.Bushes, rec)
		}
	}

	for _, stem := range w.Components.Vine.Entities() {
		blk, ok := w.Components.Block.Get(stem)
		if !ok {
			continue
		}
		vine, _ := w.Components.Vine.Get(stem)
		rec := StemRecord{Pos: blk.Pos, Block: blk.Block}
		for _, bud := range vine.Buds {
			plant, ok := w.Components.Plant.Get(bud)
			if !ok || plant.CurrentStage < 0 {
				continue
			}
			if budRec, ok := plantRecord(w, bud, plant); ok {
				rec.Buds = append(rec.Buds, budRec)
			}
		}
		snap.Stems = append(snap.Stems, rec)
	}

	return snap
}

// Restore rebuilds the world's plants from a snapshot
//
// Each record re-resolves its definition and re-enters the regular stage
// transition path, so blocks are placed and growth timers rearmed exactly as
// live growth would. Records naming unknown definitions are skipped.
func Restore(snap Snapshot, w *engine.World, growth *system.GrowthSystem,
	vine *system.VineSystem, defs system.DefinitionSource) {
	w.Resources.Frame = snap.Frame

	for _, rec := range snap.Bushes {
		proto, ok := defs.Plant(rec.Definition)
		if !ok {
			w.Resources.Log.Warn().Str("definition", rec.Definition).Msg("snapshot references unknown plant definition")
			continue
		}
		e := growth.RestorePlant(rec.Pos, proto, rec.Stage)
		restoreGenome(w, e, rec.Genes)
	}

	for _, rec := range snap.Stems {
		stem := vine.CreateStem(rec.Pos, rec.Block)
		for _, budRec := range rec.Buds {
			proto, ok := defs.Plant(budRec.Definition)
			if !ok {
				w.Resources.Log.Warn().Str("definition", budRec.Definition).Msg("snapshot references unknown plant definition")
				continue
			}
			bud := vine.RestoreBud(stem, budRec.Pos, proto, budRec.Stage)
			restoreGenome(w, bud, budRec.Genes)
		}
	}
}

func plantRecord(w *engine.World, e core.Entity, plant component.PlantComponent) (PlantRecord, bool) {
	blk, ok := w.Components.Block.Get(e)
	if !ok {
		return PlantRecord{}, false
	}
	rec := PlantRecord{
		Pos:        blk.Pos,
		Definition: plant.Definition,
		Stage:      plant.CurrentStage,
	}
	if genome, ok := w.Components.Genome.Get(e); ok {
		rec.Genes = genome.Genes
	}
	return rec, true
}

func restoreGenome(w *engine.World, e core.Entity, genes string) {
	if genes == "" || !e.Valid() {
		return
	}
	w.Components.Genome.Set(e, component.GenomeComponent{Genes: genes})
}
