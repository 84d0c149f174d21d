package lattice_test

import (
	"testing"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/dsl"
	"github.com/aretw0/lattice/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMesh struct {
	ndim int
	rng  bool
}

func (m stubMesh) NDim() int                    { return m.ndim }
func (m stubMesh) DeviceKind() string           { return "cpu" }
func (m stubMesh) SupportsCoordinatedRNG() bool { return m.rng }

type wrapped struct{ domain.Module }

func wrap() domain.Transform {
	return domain.TransformFunc(func(m domain.Module, _ domain.Mesh) (domain.Module, error) {
		return &wrapped{Module: m}, nil
	})
}

func TestApplier_Facade(t *testing.T) {
	mesh := stubMesh{ndim: 1, rng: true}

	t.Run("Path Plan Mutates In Place", func(t *testing.T) {
		root := dsl.New("model").
			Group("enc", func(b *dsl.Node) { b.Leaf("proj") }).
			Build()

		applier := lattice.New(lattice.WithRNG(rng.NewRegistry()))
		out, err := applier.Apply(root, mesh, domain.ByPath().On("enc.proj", wrap()))
		require.NoError(t, err)
		require.Same(t, domain.Module(root), out)

		enc, err := root.Child("enc")
		require.NoError(t, err)
		proj, err := enc.Child("proj")
		require.NoError(t, err)
		_, ok := proj.(*wrapped)
		assert.True(t, ok)
	})

	t.Run("Direct Plan Returns Transform Result", func(t *testing.T) {
		root := dsl.New("model").Leaf("a").Build()

		applier := lattice.New(lattice.WithRNG(rng.NewRegistry()))
		out, err := applier.Apply(root, mesh, domain.Direct(wrap()))
		require.NoError(t, err)
		_, ok := out.(*wrapped)
		assert.True(t, ok)
	})

	t.Run("Hooks Fire Through Facade", func(t *testing.T) {
		root := dsl.New("model").
			Group("layers", func(b *dsl.Node) { b.Leaf("0"); b.Leaf("1") }).
			Build()

		var replaced []string
		applier := lattice.New(
			lattice.WithRNG(rng.NewRegistry()),
			lattice.WithHooks(domain.Hooks{
				OnReplace: func(ev domain.ReplaceEvent) { replaced = append(replaced, ev.Node) },
			}),
		)

		_, err := applier.Apply(root, mesh, domain.ByPath().On("layers.*", wrap()))
		require.NoError(t, err)
		assert.Equal(t, []string{"layers.0", "layers.1"}, replaced)
	})

	t.Run("Custom Base Seed", func(t *testing.T) {
		registry := rng.NewRegistry()
		root := dsl.New("model").Leaf("a").Build()

		applier := lattice.New(lattice.WithRNG(registry), lattice.WithBaseSeed(7))
		_, err := applier.Apply(root, mesh, domain.ByPath().On("a", wrap()))
		require.NoError(t, err)

		tracker, ok := registry.Tracker().(*rng.PartitionTracker)
		require.True(t, ok)
		assert.Equal(t, uint64(7), tracker.BaseSeed())
	})

	t.Run("Rejects Higher Dimensional Mesh", func(t *testing.T) {
		root := dsl.New("model").Leaf("a").Build()

		_, err := lattice.New(lattice.WithRNG(rng.NewRegistry())).
			Apply(root, stubMesh{ndim: 2, rng: true}, domain.Direct(wrap()))

		var meshErr *domain.InvalidMeshError
		assert.ErrorAs(t, err, &meshErr)
	})
}

func TestApply_PackageLevelDefault(t *testing.T) {
	// The package-level helper uses the process-default registry; mesh
	// without RNG support keeps it untouched.
	root := dsl.New("model").Leaf("a").Build()
	out, err := lattice.Apply(root, stubMesh{ndim: 1}, domain.ByPath().On("a", wrap()))
	require.NoError(t, err)
	assert.Same(t, domain.Module(root), out)
}
