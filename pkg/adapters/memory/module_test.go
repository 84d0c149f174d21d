package memory

import (
	"errors"
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_ChildrenOrder(t *testing.T) {
	m := New("root").
		AddChild("b", New("b")).
		AddChild("a", New("a")).
		AddChild("c", New("c"))

	names := make([]string, 0, 3)
	for _, nc := range m.Children() {
		names = append(names, nc.Name)
	}

	// Declared order, not lexical order.
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestModule_Child(t *testing.T) {
	child := New("leaf")
	m := New("root").AddChild("leaf", child)

	got, err := m.Child("leaf")
	require.NoError(t, err)
	assert.Same(t, child, got)

	_, err = m.Child("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrChildNotFound))
}

func TestModule_ReplaceChild(t *testing.T) {
	m := New("root").AddChild("x", New("old"))

	replacement := New("new")
	require.NoError(t, m.ReplaceChild("x", replacement))

	got, err := m.Child("x")
	require.NoError(t, err)
	assert.Same(t, replacement, got)

	// Replacement keeps the original position.
	m.AddChild("y", New("y"))
	require.NoError(t, m.ReplaceChild("x", New("newer")))
	assert.Equal(t, "x", m.Children()[0].Name)

	// Replace never inserts.
	err = m.ReplaceChild("ghost", New("ghost"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrChildNotFound))
}

func TestModule_AddChildOverwrite(t *testing.T) {
	m := New("root").
		AddChild("x", New("first")).
		AddChild("x", New("second"))

	require.Len(t, m.Children(), 1)
	got, err := m.Child("x")
	require.NoError(t, err)
	assert.Equal(t, "second", got.(*Module).Name())
}
