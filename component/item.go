package component

// ItemComponent identifies an item entity (produce or seed)
type ItemComponent struct {
	Prefab string
}
