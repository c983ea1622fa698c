package component

// CheatGrowthComponent marks a debug item that forces stage movement
type CheatGrowthComponent struct {
	CausesUnGrowth bool
}
