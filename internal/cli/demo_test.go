package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRunDemo_Default(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunDemo(context.Background(), &buf, DemoOptions{}))

	want := []string{
		"=== Generational References Demo ===",
		"",
		"1. Tree Structure with Generational References",
		"==============================================",
		"Root node: Root",
		"  Child: Child1 (parent: Root)",
		"  Child: Child2 (parent: Root)",
		"Removed subtree of 1 node(s); view of old child handle 1v0 valid: false",
		"Slots: 3, live nodes: 2",
		"",
		"2. Graph with Node References",
		"=============================",
		"Created graph with 3 nodes and 2 edges",
		"Node A: Node A",
		"  edge 0v0: Node A -> Node B",
		"  edge 1v0: Node B -> Node C",
		"Removed Node B",
		"  edge 0v0: Node A -> <stale 1v0>",
		"  edge 1v0: <stale 1v0> -> Node C",
		"Cleared edges: 2 slot(s), 0 live",
		"",
		"3. Content Mutation Invalidating References",
		"===========================================",
		"Created node with content: Original Content",
		"Content modified to: Modified Content",
		"Weak reference created: Modified Content",
		"Handle generation before replace: 0",
		"Content replaced (generation bumped): Replaced Content",
		"New handle generation: 1",
		"Old weak reference is invalid (as expected after generation bump)",
		"New weak reference is valid: Replaced Content",
		"",
		"4. Variant Changing Type",
		"========================",
		"Slot holds Int(42) at generation 0",
		"Handle from generation 0 no longer resolves",
		`Slot now holds Text("forty-two") (text) at generation 1`,
		"",
		"Arena activity: 9 inserts (0 reused slots), 5 invalidations, 4 stale lookups",
	}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Errorf("demo output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDemo_DeepTree(t *testing.T) {
	tree := TreeSpec{
		Name: "A",
		Children: []TreeSpec{
			{Name: "B", Children: []TreeSpec{{Name: "B1"}, {Name: "B2", Children: []TreeSpec{{Name: "B2a"}}}}},
			{Name: "C"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RunDemo(context.Background(), &buf, DemoOptions{
		Examples: []string{ExampleTree},
		Tree:     tree,
	}))

	got := lines(buf.String())
	want := []string{
		"Root node: A",
		"  Child: B (parent: A)",
		"    Child: B1 (parent: B)",
		"    Child: B2 (parent: B)",
		"      Child: B2a (parent: B2)",
		"  Child: C (parent: A)",
		"Removed subtree of 4 node(s); view of old child handle 1v0 valid: false",
		"Slots: 6, live nodes: 2",
	}
	if diff := cmp.Diff(want, got[4:12]); diff != "" {
		t.Errorf("tree output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDemo_UnknownExample(t *testing.T) {
	var buf bytes.Buffer
	err := RunDemo(context.Background(), &buf, DemoOptions{Examples: []string{"nope"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown example "nope"`)
}
