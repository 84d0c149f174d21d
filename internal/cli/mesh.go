package cli

import "github.com/aretw0/lattice/pkg/domain"

// inspectionMesh is the 1-dimensional stand-in mesh used for dry runs.
// It never supports coordinated RNG, so inspection commands cannot disturb
// a host tracker registry.
type inspectionMesh struct{}

func (inspectionMesh) NDim() int                    { return 1 }
func (inspectionMesh) DeviceKind() string           { return "inspection" }
func (inspectionMesh) SupportsCoordinatedRNG() bool { return false }

var _ domain.Mesh = inspectionMesh{}
