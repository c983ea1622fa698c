package system

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/grove/component"
	"github.com/lixenwraith/grove/core"
	"github.com/lixenwraith/grove/engine"
	"github.com/lixenwraith/grove/event"
)

// stubDefs is a fixed-map definition source for tests
type stubDefs map[string]component.PlantComponent

func (d stubDefs) Plant(name string) (component.PlantComponent, bool) {
	p, ok := d[name]
	return p, ok
}

// rig wires a full simulation for tests with deterministic time and RNG
type rig struct {
	world     *engine.World
	mock      *engine.MockTimeProvider
	sched     *engine.DelayScheduler
	router    *event.Router
	dropper   *ItemDropper
	inventory *InventorySystem
	destroy   *DestroySystem
	growth    *GrowthSystem
	harvest   *HarvestSystem
	vine      *VineSystem
	genome    *GenomeSystem
}

func newRig(defs stubDefs) *rig {
	mock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	res := engine.NewResource(mock, 42, zerolog.Nop())
	world := engine.NewWorld(res)
	sched := engine.NewDelayScheduler(mock)
	router := event.NewRouter(res.Events)

	r := &rig{
		world:  world,
		mock:   mock,
		sched:  sched,
		router: router,
	}
	r.dropper = NewItemDropper(world)
	r.inventory = NewInventorySystem(world)
	r.destroy = NewDestroySystem(world, r.dropper)
	r.growth = NewGrowthSystem(world, sched, defs)
	r.harvest = NewHarvestSystem(world, r.growth, r.destroy, r.inventory, r.dropper)
	r.vine = NewVineSystem(world, r.growth, r.destroy)
	r.genome = NewGenomeSystem(world)

	r.growth.RegisterObserver(r.genome)
	r.growth.RegisterObserver(r.vine)

	router.Register(r.growth)
	router.Register(r.harvest)
	router.Register(r.destroy)
	router.Register(r.vine)
	return r
}

// tick advances mock time and runs one simulation step
func (r *rig) tick(d time.Duration) {
	r.mock.Advance(d)
	r.router.DispatchAll()
	r.sched.Update()
	r.world.Resources.Frame++
}

// plantAt returns the plant instance at a position
func (r *rig) plantAt(t *testing.T, pos core.Vec3i) (core.Entity, component.PlantComponent) {
	t.Helper()
	e := r.world.EntityAt(pos)
	if !e.Valid() {
		t.Fatalf("Expected a plant entity at %v, found none", pos)
	}
	plant, ok := r.world.Components.Plant.Get(e)
	if !ok {
		t.Fatalf("Expected entity %d at %v to carry a plant", e, pos)
	}
	return e, plant
}

// consumedEvents drains the event queue and returns events of the given type
func (r *rig) consumedEvents(want event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.world.Resources.Events.Consume() {
		if ev.Type == want {
			out = append(out, ev)
		}
	}
	return out
}

func testStages(t *testing.T, stages ...component.GrowthStage) *component.StageTable {
	t.Helper()
	table, err := component.NewStageTable(stages)
	if err != nil {
		t.Fatalf("NewStageTable failed: %v", err)
	}
	return table
}

// threeStageBush builds a bush with two timed stages and a terminal one
func threeStageBush(t *testing.T) component.PlantComponent {
	t.Helper()
	return component.PlantComponent{
		Definition: "berry",
		Stages: testStages(t,
			component.GrowthStage{Block: "berry_sprout", MinTime: time.Second, MaxTime: time.Second},
			component.GrowthStage{Block: "berry_young", MinTime: time.Second, MaxTime: time.Second},
			component.GrowthStage{Block: "berry_mature"},
		),
		Sustainable:     false,
		Seed:            "berry_seed",
		Produce:         "berry",
		SeedDropWeights: []int{0, 1},
	}
}
