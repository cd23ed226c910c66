package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	genmem "github.com/TESTMECS/generatitonal-mem"
	"github.com/TESTMECS/generatitonal-mem/arena"
	"github.com/TESTMECS/generatitonal-mem/variant"
)

// Demo example names.
const (
	ExampleTree     = "tree"
	ExampleGraph    = "graph"
	ExampleMutation = "mutation"
	ExampleVariant  = "variant"
)

// AllExamples lists every example in run order.
var AllExamples = []string{ExampleTree, ExampleGraph, ExampleMutation, ExampleVariant}

// DemoOptions configures RunDemo.
type DemoOptions struct {
	Examples []string
	Tree     TreeSpec
	Logger   *genmem.Logger
}

// treeNode is a tree element stored in an arena. Parent is arena.Nil for the root.
type treeNode struct {
	Name     string
	Parent   arena.Handle
	Children []arena.Handle
}

type demo struct {
	ctx     context.Context
	w       io.Writer
	logger  *genmem.Logger
	metrics *arena.BasicMetricsObserver
}

// RunDemo prints the selected demonstrations to w.
func RunDemo(ctx context.Context, w io.Writer, opts DemoOptions) error {
	if opts.Logger == nil {
		opts.Logger = genmem.NoopLogger()
	}
	if len(opts.Examples) == 0 {
		opts.Examples = AllExamples
	}
	if opts.Tree.Name == "" {
		opts.Tree = DefaultTree
	}

	d := &demo{
		ctx:     ctx,
		w:       w,
		logger:  opts.Logger,
		metrics: &arena.BasicMetricsObserver{},
	}

	fmt.Fprintln(w, "=== Generational References Demo ===")
	fmt.Fprintln(w)

	for i, name := range opts.Examples {
		switch name {
		case ExampleTree:
			d.tree(i+1, opts.Tree)
		case ExampleGraph:
			d.graph(i + 1)
		case ExampleMutation:
			d.mutation(i + 1)
		case ExampleVariant:
			d.variantSlot(i + 1)
		default:
			return fmt.Errorf("unknown example %q (want one of %s)", name, strings.Join(AllExamples, ", "))
		}
	}

	snap := d.metrics.Snapshot()
	fmt.Fprintf(w, "Arena activity: %d inserts (%d reused slots), %d invalidations, %d stale lookups\n",
		snap.Inserts, snap.Reuses, snap.Invalidations(), snap.Stale)
	return nil
}

func newArena[T any](d *demo, name string) *arena.Arena[T] {
	return arena.New[T](
		arena.WithLogger(d.logger.WithArena(name).Logger),
		arena.WithMetricsObserver(d.metrics),
	)
}

func (d *demo) heading(n int, title string) {
	line := fmt.Sprintf("%d. %s", n, title)
	fmt.Fprintln(d.w, line)
	fmt.Fprintln(d.w, strings.Repeat("=", len(line)))
}

func (d *demo) tree(n int, def TreeSpec) {
	d.heading(n, "Tree Structure with Generational References")

	nodes := newArena[treeNode](d, "tree")
	root := d.buildTree(nodes, def, arena.Nil)

	rootView, ok := arena.NewView(nodes, root)
	if !ok {
		fmt.Fprintln(d.w, "Root node is unreachable")
		return
	}
	fmt.Fprintf(d.w, "Root node: %s\n", rootView.Deref().Name)
	d.printChildren(nodes, rootView.Deref().Children, 1)

	// Detach the first child: its subtree handles go stale.
	if children := rootView.Deref().Children; len(children) > 0 {
		first := children[0]
		removed := d.removeSubtree(nodes, first)
		nodes.Update(root, func(r *treeNode) {
			r.Children = r.Children[1:]
		})
		_, ok := arena.NewView(nodes, first)
		fmt.Fprintf(d.w, "Removed subtree of %d node(s); view of old child handle %s valid: %v\n", removed, first, ok)
	}
	fmt.Fprintf(d.w, "Slots: %d, live nodes: %d\n", nodes.Len(), nodes.Live())
	fmt.Fprintln(d.w)
}

func (d *demo) buildTree(nodes *arena.Arena[treeNode], def TreeSpec, parent arena.Handle) arena.Handle {
	h := nodes.Insert(treeNode{Name: def.Name, Parent: parent})
	d.logger.LogInsert(d.ctx, h)
	for _, c := range def.Children {
		child := d.buildTree(nodes, c, h)
		nodes.Update(h, func(n *treeNode) {
			n.Children = append(n.Children, child)
		})
	}
	return h
}

func (d *demo) printChildren(nodes *arena.Arena[treeNode], children []arena.Handle, depth int) {
	for _, ch := range children {
		child, ok := arena.NewView(nodes, ch)
		if !ok {
			continue
		}
		node := child.Deref()
		parent, ok := nodes.Get(node.Parent)
		if !ok {
			continue
		}
		fmt.Fprintf(d.w, "%sChild: %s (parent: %s)\n", strings.Repeat("  ", depth), node.Name, parent.Name)
		d.printChildren(nodes, node.Children, depth+1)
	}
}

func (d *demo) removeSubtree(nodes *arena.Arena[treeNode], h arena.Handle) int {
	node, ok := nodes.Remove(h)
	d.logger.LogRemove(d.ctx, h, ok)
	if !ok {
		return 0
	}
	n := 1
	for _, c := range node.Children {
		n += d.removeSubtree(nodes, c)
	}
	return n
}

func (d *demo) graph(n int) {
	d.heading(n, "Graph with Node References")

	nodes := newArena[string](d, "graph_nodes")
	a := nodes.Insert("Node A")
	b := nodes.Insert("Node B")
	c := nodes.Insert("Node C")

	edges := newArena[[2]arena.Handle](d, "graph_edges")
	edges.Insert([2]arena.Handle{a, b})
	edges.Insert([2]arena.Handle{b, c})

	fmt.Fprintf(d.w, "Created graph with %d nodes and %d edges\n", nodes.Len(), edges.Len())
	if name, ok := nodes.Get(a); ok {
		fmt.Fprintf(d.w, "Node A: %s\n", name)
	}
	d.printEdges(nodes, edges)

	nodes.Remove(b)
	fmt.Fprintln(d.w, "Removed Node B")
	d.printEdges(nodes, edges)

	live := edges.Live()
	edges.Clear()
	d.logger.LogClear(d.ctx, edges.Len(), live)
	fmt.Fprintf(d.w, "Cleared edges: %d slot(s), %d live\n", edges.Len(), edges.Live())
	fmt.Fprintln(d.w)
}

func (d *demo) printEdges(nodes *arena.Arena[string], edges *arena.Arena[[2]arena.Handle]) {
	name := func(h arena.Handle) string {
		if v, ok := nodes.Get(h); ok {
			return v
		}
		return "<stale " + h.String() + ">"
	}
	for h, e := range edges.All() {
		fmt.Fprintf(d.w, "  edge %s: %s -> %s\n", h, name(e[0]), name(e[1]))
	}
}

func (d *demo) mutation(n int) {
	d.heading(n, "Content Mutation Invalidating References")

	nodes := newArena[string](d, "content")
	h := nodes.Insert("Original Content")
	v, _ := nodes.Get(h)
	fmt.Fprintf(d.w, "Created node with content: %s\n", v)

	// In-place mutation keeps the generation.
	nodes.Update(h, func(s *string) { *s = "Modified Content" })
	v, _ = nodes.Get(h)
	fmt.Fprintf(d.w, "Content modified to: %s\n", v)

	if view, ok := arena.NewView(nodes, h); ok {
		fmt.Fprintf(d.w, "Weak reference created: %s\n", view.Deref())
	}

	fmt.Fprintf(d.w, "Handle generation before replace: %d\n", h.Gen)
	next, err := nodes.Replace(h, "Replaced Content")
	d.logger.LogReplace(d.ctx, h, next, err)
	if err != nil {
		fmt.Fprintf(d.w, "Replace failed: %v\n", err)
		return
	}
	v, _ = nodes.Get(next)
	fmt.Fprintf(d.w, "Content replaced (generation bumped): %s\n", v)
	fmt.Fprintf(d.w, "New handle generation: %d\n", next.Gen)

	if old, ok := arena.NewView(nodes, h); ok {
		fmt.Fprintf(d.w, "Old weak reference still valid: %s\n", old.Deref())
	} else {
		fmt.Fprintln(d.w, "Old weak reference is invalid (as expected after generation bump)")
	}
	if view, ok := arena.NewView(nodes, next); ok {
		fmt.Fprintf(d.w, "New weak reference is valid: %s\n", view.Deref())
	}
	fmt.Fprintln(d.w)
}

func (d *demo) variantSlot(n int) {
	d.heading(n, "Variant Changing Type")

	slot := variant.New(variant.Int(42))
	h := slot.Handle()
	v, _ := slot.Get(h)
	fmt.Fprintf(d.w, "Slot holds %s at generation %d\n", v, h.Gen)

	slot.Set(variant.Text("forty-two"))
	if _, ok := slot.Get(h); !ok {
		fmt.Fprintf(d.w, "Handle from generation %d no longer resolves\n", h.Gen)
	}
	v, _ = slot.Get(slot.Handle())
	fmt.Fprintf(d.w, "Slot now holds %s (%s) at generation %d\n", v, v.Kind(), slot.Generation())
	fmt.Fprintln(d.w)
}
