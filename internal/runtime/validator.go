package runtime

import (
	"github.com/aretw0/lattice/pkg/domain"
)

// ValidateMesh checks that the mesh is usable for plan application.
// Plans only accept 1-dimensional meshes; hosts with N-dimensional meshes
// slice out the dimension they parallelize over first.
func ValidateMesh(mesh domain.Mesh) error {
	if ndim := mesh.NDim(); ndim != 1 {
		return &domain.InvalidMeshError{NDim: ndim}
	}
	return nil
}
