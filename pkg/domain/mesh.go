package domain

// Mesh describes the topology of the device grid a plan is applied
// against. The applier only inspects its dimensionality and RNG support;
// the concrete mesh type (and whatever it indexes into) belongs to the
// host system.
type Mesh interface {
	// NDim returns the number of mesh dimensions. Plans only accept
	// 1-dimensional meshes; slice higher-dimensional meshes down before
	// applying.
	NDim() int

	// DeviceKind identifies the device class the mesh spans (e.g. "cpu",
	// "cuda"). Used to construct the coordinated RNG tracker.
	DeviceKind() string

	// SupportsCoordinatedRNG reports whether a mesh-aware RNG tracker can
	// coordinate random state across this mesh's devices.
	SupportsCoordinatedRNG() bool
}
