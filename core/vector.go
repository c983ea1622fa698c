package core

// Vec3i is an integer block position in the world grid
type Vec3i struct {
	X, Y, Z int
}

// Vec3f is a float vector used for drop positions and impulses
type Vec3f struct {
	X, Y, Z float64
}

// ToVec3f converts a block position to its float equivalent
func (v Vec3i) ToVec3f() Vec3f {
	return Vec3f{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Add returns the component-wise sum of two vectors
func (v Vec3f) Add(o Vec3f) Vec3f {
	return Vec3f{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}
