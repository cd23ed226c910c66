package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, Run(&out, &errOut, []string{"genmem"}))
	assert.Contains(t, errOut.String(), "Usage:")

	errOut.Reset()
	assert.Equal(t, 2, Run(&out, &errOut, []string{"genmem", "bogus"}))

	assert.Equal(t, 0, Run(&out, &errOut, []string{"genmem", "help"}))
	assert.Contains(t, out.String(), "genmem demo")
}

func TestRun_Demo(t *testing.T) {
	dir := t.TempDir()
	treePath := filepath.Join(dir, "tree.jsonc")
	outPath := filepath.Join(dir, "transcript.txt")
	require.NoError(t, os.WriteFile(treePath, []byte(`{
		// custom root
		"name": "Trunk",
		"children": [{"name": "Branch"}],
	}`), 0o600))

	var out, errOut bytes.Buffer
	code := Run(&out, &errOut, []string{
		"genmem", "demo",
		"--example", "tree,variant",
		"--tree", treePath,
		"-o", outPath,
		"--log-level", "info",
		"--log-format", "json",
	})
	require.Equal(t, 0, code, errOut.String())

	assert.Contains(t, out.String(), "Root node: Trunk")
	assert.Contains(t, out.String(), "Child: Branch (parent: Trunk)")
	assert.Contains(t, out.String(), "1. Tree Structure")
	assert.Contains(t, out.String(), "2. Variant Changing Type")
	assert.NotContains(t, out.String(), "Graph")

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(written))
	assert.Contains(t, errOut.String(), `"msg":"transcript written"`)
}

func TestRun_DemoDefaultLogLevelIsQuiet(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 0, Run(&out, &errOut, []string{"genmem", "demo"}))

	assert.Contains(t, out.String(), "<stale 1v0>")
	assert.Empty(t, errOut.String())
}

func TestRun_DemoErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "bad level", args: []string{"--log-level", "loud"}, msg: `invalid --log-level "loud"`},
		{name: "bad format", args: []string{"--log-format", "xml"}, msg: `invalid --log-format "xml"`},
		{name: "missing tree", args: []string{"--tree", "/nonexistent/tree.jsonc"}, msg: "reading tree"},
		{name: "bad example", args: []string{"--example", "nope"}, msg: "unknown example"},
		{name: "bad flag", args: []string{"--nope"}, msg: "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := Run(&out, &errOut, append([]string{"genmem", "demo"}, tt.args...))
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut.String(), tt.msg)
		})
	}
}

func TestRun_DemoHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 0, Run(&out, &errOut, []string{"genmem", "demo", "--help"}))
	assert.Contains(t, errOut.String(), "--example")
}
