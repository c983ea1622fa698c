package save

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/grove/core"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	appName := fmt.Sprintf("grove_test_%s_%d", t.Name(), time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("platform storage unavailable: %v", err)
	}
	return NewStore(manager, "world", zerolog.Nop())
}

func TestStoreSaveLoad(t *testing.T) {
	store := testStore(t)

	snap := Snapshot{
		Frame: 42,
		Bushes: []PlantRecord{
			{Pos: core.Vec3i{X: 1, Y: 2, Z: 3}, Definition: "berry", Stage: 1, Genes: "Aa"},
		},
		Stems: []StemRecord{
			{
				Pos:   core.Vec3i{X: 5},
				Block: "vine_trunk",
				Buds:  []PlantRecord{{Pos: core.Vec3i{X: 6}, Definition: "berry", Stage: 0}},
			},
		},
	}

	if err := store.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected a snapshot to exist after save")
	}
	if loaded.Frame != 42 {
		t.Errorf("Expected frame 42, got %d", loaded.Frame)
	}
	if len(loaded.Bushes) != 1 || loaded.Bushes[0] != snap.Bushes[0] {
		t.Errorf("Expected bush record round-trip, got %+v", loaded.Bushes)
	}
	if len(loaded.Stems) != 1 || loaded.Stems[0].Block != "vine_trunk" || len(loaded.Stems[0].Buds) != 1 {
		t.Errorf("Expected stem record round-trip, got %+v", loaded.Stems)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := testStore(t)

	_, ok, err := store.Load()
	if err != nil {
		t.Errorf("Expected no error for a missing snapshot, got %v", err)
	}
	if ok {
		t.Error("Expected no snapshot before the first save")
	}
}

func TestStoreDegradedMode(t *testing.T) {
	store := NewStore(nil, "world", zerolog.Nop())

	if err := store.Save(Snapshot{Frame: 1}); err != nil {
		t.Errorf("Expected degraded save to be a no-op, got %v", err)
	}
	_, ok, err := store.Load()
	if err != nil || ok {
		t.Errorf("Expected degraded load to report nothing, got ok=%v err=%v", ok, err)
	}
}
