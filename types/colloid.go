package types

// Colloid is the per-particle view the engine exposes to the training core.
// Colloids are owned by the engine, the core only reads them per dispatch
// call. Group membership by Type may change between steps.
type Colloid struct {
	ID       int
	Pos      Vec3
	Director Vec3
	Velocity Vec3
	Type     int
}
