package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTree(t *testing.T) {
	t.Run("jsonc", func(t *testing.T) {
		tree, err := parseTree([]byte(`{
			// comments and trailing commas are fine
			"name": "Root",
			"children": [
				{"name": "Left"},
				{"name": "Right", "children": [{"name": "Leaf"}]},
			],
		}`))
		require.NoError(t, err)
		assert.Equal(t, TreeSpec{
			Name: "Root",
			Children: []TreeSpec{
				{Name: "Left"},
				{Name: "Right", Children: []TreeSpec{{Name: "Leaf"}}},
			},
		}, tree)
	})

	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{name: "syntax", input: `{"name": `, msg: "invalid JSONC"},
		{name: "type", input: `{"name": 1}`, msg: "invalid JSON"},
		{name: "missing name", input: `{"name": "r", "children": [{}]}`, msg: "node without name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTree([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadTree(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "tree.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "R", /* inline */ "children": [{"name": "K"}]}`), 0o600))

	tree, err := LoadTree(path)
	require.NoError(t, err)
	assert.Equal(t, "R", tree.Name)
	require.Len(t, tree.Children, 1)

	bad := filepath.Join(dir, "bad.jsonc")
	require.NoError(t, os.WriteFile(bad, []byte(`{}`), 0o600))
	_, err = LoadTree(bad)
	assert.ErrorIs(t, err, ErrTreeInvalid)

	_, err = LoadTree(filepath.Join(dir, "missing.jsonc"))
	assert.Error(t, err)
}
