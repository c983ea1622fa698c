package system

// System update priorities; lower values run first
const (
	PriorityGrowth    = 10
	PriorityHarvest   = 20
	PriorityDestroy   = 30
	PriorityVine      = 40
	PriorityGenome    = 50
	PriorityInventory = 60
)
