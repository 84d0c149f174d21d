// Package rng holds the coordinated random-state tracker shared by
// everything that applies plans in a process.
//
// The tracker is process-wide by convention, not by hidden globals: it
// lives in a Registry handle that hosts can share, and a package Default
// registry exists for the common single-registry case. Ensure is
// idempotent, so every apply (including recursive ones) can call it
// cheaply.
package rng

import (
	"sync"

	"github.com/aretw0/lattice/pkg/domain"
)

// DefaultBaseSeed is the base seed used when the host does not supply one.
const DefaultBaseSeed uint64 = 1234

// Tracker coordinates random state across devices. Hosts may install
// their own implementation; Ensure replaces anything that is not a
// *PartitionTracker.
type Tracker interface {
	// Seed derives the tracker's state deterministically from the mesh
	// and a base seed.
	Seed(mesh domain.Mesh, baseSeed uint64)

	// SetDistributeRegion toggles whether random ops run in the
	// mesh-partitioned region.
	SetDistributeRegion(enabled bool)

	// DistributeRegionEnabled reports the current region flag.
	DistributeRegionEnabled() bool
}

// PartitionTracker is the mesh-aware tracker variant installed by Ensure.
// It records the device kind it was built for and the seed it was given;
// the host's RNG machinery consumes that state.
type PartitionTracker struct {
	mu               sync.Mutex
	deviceKind       string
	baseSeed         uint64
	seeded           bool
	distributeRegion bool
}

// NewPartitionTracker creates a tracker bound to a device kind.
func NewPartitionTracker(deviceKind string) *PartitionTracker {
	return &PartitionTracker{deviceKind: deviceKind}
}

// DeviceKind returns the device class the tracker was built for.
func (t *PartitionTracker) DeviceKind() string {
	return t.deviceKind
}

// Seed records the deterministic seed state for the mesh.
func (t *PartitionTracker) Seed(_ domain.Mesh, baseSeed uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.baseSeed = baseSeed
	t.seeded = true
}

// Seeded reports whether Seed has been called.
func (t *PartitionTracker) Seeded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seeded
}

// BaseSeed returns the base seed the tracker was seeded with.
func (t *PartitionTracker) BaseSeed() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.baseSeed
}

// SetDistributeRegion toggles the partitioned-region flag.
func (t *PartitionTracker) SetDistributeRegion(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.distributeRegion = enabled
}

// DistributeRegionEnabled reports the partitioned-region flag.
func (t *PartitionTracker) DistributeRegionEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.distributeRegion
}

// Registry owns the shared tracker slot. The check-then-install sequence
// in Ensure runs under the registry mutex, so concurrent top-level applies
// are safe.
type Registry struct {
	mu      sync.Mutex
	tracker Tracker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide default registry.
func Default() *Registry {
	return defaultRegistry
}

// Tracker returns the currently installed tracker, or nil.
func (r *Registry) Tracker() Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker
}

// Install replaces the registry's tracker unconditionally.
func (r *Registry) Install(t Tracker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tracker = t
}

// Ensure makes the registry ready for plan application against the mesh:
//
//  1. If the mesh does not support coordinated RNG, nothing happens.
//  2. If the installed tracker is already a *PartitionTracker, nothing
//     happens: no reseeding, no flag reset.
//  3. Otherwise a new PartitionTracker bound to the mesh's device kind is
//     installed, seeded from the mesh and baseSeed, and its
//     distribute-region flag is reset to false.
func (r *Registry) Ensure(mesh domain.Mesh, baseSeed uint64) {
	if !mesh.SupportsCoordinatedRNG() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tracker.(*PartitionTracker); ok {
		return
	}

	tracker := NewPartitionTracker(mesh.DeviceKind())
	tracker.Seed(mesh, baseSeed)
	// Random ops run outside the partitioned region until the host opts in
	// after applying its plan.
	tracker.SetDistributeRegion(false)
	r.tracker = tracker
}
