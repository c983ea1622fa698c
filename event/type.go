package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventSeedPlanted requests that a plant instance be created at a position
	// Trigger: planting action (cmd loop, vine bud spawn)
	// Consumer: GrowthSystem | Payload: *SeedPlantedPayload
	EventSeedPlanted EventType = iota

	// EventHarvestRequest signals a harvest attempt on a plant block
	// Trigger: harvesting actor activation
	// Consumer: HarvestSystem | Payload: *HarvestRequestPayload
	EventHarvestRequest

	// EventCheatGrowth forces a plant one stage forward or backward
	// Trigger: privileged debug action
	// Consumer: GrowthSystem | Payload: *CheatGrowthPayload
	EventCheatGrowth

	// EventBlockBroken signals external destruction of a plant block
	// Trigger: world (explosion, block break by other means)
	// Consumer: DestroySystem, VineSystem | Payload: *BlockBrokenPayload
	EventBlockBroken

	// EventRemoveBud notifies a vine stem that one of its buds was destroyed
	// Trigger: DestroySystem on bud destruction (unless the stem is already dead)
	// Consumer: VineSystem | Payload: *RemoveBudPayload
	EventRemoveBud

	// EventPlantDestroyed announces that a plant instance ceased to exist
	// Trigger: DestroySystem | Consumer: external observers
	// Payload: *PlantDestroyedPayload
	EventPlantDestroyed

	// EventProduceCreated announces a produce or seed item coming into existence
	// Trigger: HarvestSystem, DestroySystem seed drops
	// Consumer: external observers (achievements, quests) | Payload: *ProduceCreatedPayload
	EventProduceCreated

	// EventItemDropped announces an item released into the world as a physical drop
	// Trigger: DestroySystem, HarvestSystem on inventory refusal
	// Consumer: external observers | Payload: *ItemDroppedPayload
	EventItemDropped
)

// String returns the name of the event type for logging and debugging
func (e EventType) String() string {
	switch e {
	case EventSeedPlanted:
		return "SeedPlanted"
	case EventHarvestRequest:
		return "HarvestRequest"
	case EventCheatGrowth:
		return "CheatGrowth"
	case EventBlockBroken:
		return "BlockBroken"
	case EventRemoveBud:
		return "RemoveBud"
	case EventPlantDestroyed:
		return "PlantDestroyed"
	case EventProduceCreated:
		return "ProduceCreated"
	case EventItemDropped:
		return "ItemDropped"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // For deduplication by consumers
}
