package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTree = `
name: model
children:
  - name: layers
    children:
      - name: "0"
        children:
          - name: attn
          - name: mlp
      - name: "1"
        children:
          - name: mlp
  - name: head
`

func writeTree(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testTree), 0644))
	return path
}

func TestMatch(t *testing.T) {
	path := writeTree(t)

	t.Run("Wildcard With Continuation", func(t *testing.T) {
		var buf strings.Builder
		err := Match(MatchOptions{
			TreePath: path,
			Patterns: []string{"layers.*.attn"},
			NoColor:  true,
		}, &buf)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "layers.*.attn")
		assert.Contains(t, out, "model.layers.0.attn")
		// layers.1 has no attn child; silently skipped.
		assert.NotContains(t, out, "model.layers.1.attn")
	})

	t.Run("No Match Reported", func(t *testing.T) {
		var buf strings.Builder
		err := Match(MatchOptions{
			TreePath: path,
			Patterns: []string{"decoder.proj"},
			NoColor:  true,
		}, &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "(no match)")
	})

	t.Run("Invalid Pattern Fails", func(t *testing.T) {
		var buf strings.Builder
		err := Match(MatchOptions{
			TreePath: path,
			Patterns: []string{""},
			NoColor:  true,
		}, &buf)
		assert.Error(t, err)
	})

	t.Run("Missing Tree File", func(t *testing.T) {
		var buf strings.Builder
		err := Match(MatchOptions{TreePath: "does-not-exist.yaml"}, &buf)
		assert.Error(t, err)
	})
}

func TestGraph(t *testing.T) {
	path := writeTree(t)

	t.Run("Plain Diagram", func(t *testing.T) {
		var buf strings.Builder
		err := Graph(GraphOptions{TreePath: path}, &buf)
		require.NoError(t, err)

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "graph TD\n"))
		assert.Contains(t, out, "model --> model_layers")
		assert.Contains(t, out, "model_layers_0 --> model_layers_0_attn")
	})

	t.Run("Highlight Overlay", func(t *testing.T) {
		var buf strings.Builder
		err := Graph(GraphOptions{TreePath: path, Highlight: []string{"layers.*.mlp"}}, &buf)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "class model_layers_0_mlp matched;")
		assert.Contains(t, out, "class model_layers_1_mlp matched;")
	})
}
