package core

// Entity is a unique identifier for a world entity
// Zero is reserved as the invalid entity
type Entity uint64

// Valid reports whether the identifier refers to an allocated entity
func (e Entity) Valid() bool {
	return e != 0
}
