package query

import (
	"fmt"
	"strings"

	"github.com/go-drift/q/pkg/dom"
	"github.com/go-drift/q/pkg/runtime"
	"github.com/go-drift/q/pkg/style"
)

// Result is an immutable handle on an ordered set of matched render
// nodes. Traversal and filter methods return new Results; a Result is
// never mutated after construction.
//
// Mutating the tree from inside a Filter or Each callback is unsupported:
// interaction handlers always run through the runtime dispatch queue, and
// queries assume the tree holds still while they walk it.
type Result struct {
	nodes []*dom.Node
	rt    *runtime.Runtime
}

// NewResult wraps an explicit node set. The nodes must belong to the
// given runtime's tree; callers normally get Results from Render or a
// traversal rather than constructing them.
func NewResult(rt *runtime.Runtime, nodes []*dom.Node) Result {
	owned := make([]*dom.Node, len(nodes))
	copy(owned, nodes)
	return Result{nodes: owned, rt: rt}
}

// Len returns the number of matched nodes.
func (r Result) Len() int {
	return len(r.nodes)
}

// Exists returns true if at least one node is matched.
func (r Result) Exists() bool {
	return len(r.nodes) > 0
}

// All returns the matched nodes in document order. The slice is a copy.
func (r Result) All() []*dom.Node {
	out := make([]*dom.Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// Get returns the matched node at index. Index -1 denotes the last
// element; any other index outside [0, Len-1] panics with a bounds
// message, catching test-author mistakes early.
func (r Result) Get(index int) *dom.Node {
	resolved := index
	if index == -1 {
		resolved = len(r.nodes) - 1
	}
	if resolved < 0 || resolved >= len(r.nodes) {
		panic(fmt.Sprintf("query: Get(%d) out of range (matched %d)", index, len(r.nodes)))
	}
	return r.nodes[resolved]
}

// First returns the first matched node. Panics if nothing matched.
func (r Result) First() *dom.Node {
	if len(r.nodes) == 0 {
		panic("query: First on empty result")
	}
	return r.nodes[0]
}

// Text returns the concatenated rendered text of all matched nodes in
// document order. An empty matched set yields "", not a failure, so
// chains stay composable.
func (r Result) Text() string {
	var sb strings.Builder
	for _, n := range r.nodes {
		sb.WriteString(n.TextContent())
	}
	return sb.String()
}

// Children returns a new Result over the direct children of every
// matched node, flattened in document order and deduplicated by node
// identity. This is the operation that crosses from "the matched set"
// to its descendants: a result over a container matches only the
// container until Children (or Find) is invoked.
func (r Result) Children() Result {
	var out []*dom.Node
	seen := make(map[*dom.Node]bool)
	for _, n := range r.nodes {
		for _, c := range n.Children() {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return Result{nodes: out, rt: r.rt}
}

// Find returns a new Result over the descendants of the matched nodes
// satisfying sel, in document order, deduplicated by node identity. The
// matched nodes themselves are not candidates.
func (r Result) Find(sel Selector) Result {
	var out []*dom.Node
	seen := make(map[*dom.Node]bool)
	for _, n := range r.nodes {
		for _, c := range n.Children() {
			c.Walk(func(cand *dom.Node) bool {
				if sel.Match(cand) && !seen[cand] {
					seen[cand] = true
					out = append(out, cand)
				}
				return true
			})
		}
	}
	return Result{nodes: out, rt: r.rt}
}

// Filter returns a new Result containing only the matched nodes for
// which predicate holds, order preserved. An empty input yields an
// empty output, not an error.
func (r Result) Filter(predicate func(*dom.Node) bool) Result {
	var out []*dom.Node
	for _, n := range r.nodes {
		if predicate(n) {
			out = append(out, n)
		}
	}
	return Result{nodes: out, rt: r.rt}
}

// Each calls fn for every matched node in document order.
func (r Result) Each(fn func(index int, node *dom.Node)) {
	for i, n := range r.nodes {
		fn(i, n)
	}
}

// Click dispatches a simulated tap to every matched node and returns
// once the runtime has settled: every state update and rebuild the taps
// trigger is visible before Click returns, so the caller can assert on
// Text or Get immediately. Taps bubble to the nearest ancestor handler.
//
// An empty matched set is a no-op. The Result itself is structurally
// unchanged — it does not re-resolve its nodes; if the click altered the
// tree's shape, re-query (see Requery).
func (r Result) Click() error {
	if len(r.nodes) == 0 {
		return nil
	}
	for _, n := range r.nodes {
		if err := r.rt.Tap(n); err != nil {
			return err
		}
	}
	return nil
}

// Style returns the style of the first matched node. The second result
// is false when nothing matched. First-match is the documented policy
// for scalar accessors over multi-node sets.
func (r Result) Style() (style.Style, bool) {
	if len(r.nodes) == 0 {
		return style.Style{}, false
	}
	return r.nodes[0].Style, true
}

// Attr returns the named attribute of the first matched node. The second
// result is false when nothing matched or the attribute is absent.
func (r Result) Attr(name string) (string, bool) {
	if len(r.nodes) == 0 {
		return "", false
	}
	return r.nodes[0].Attr(name)
}

// Requery returns a fresh Result over the runtime's current root node.
// Use it after an interaction that changed the tree's structure, where
// the captured node pointers of older Results may reference detached
// nodes.
func (r Result) Requery() Result {
	if r.rt == nil || r.rt.Root() == nil {
		return Result{rt: r.rt}
	}
	return Result{nodes: []*dom.Node{r.rt.Root()}, rt: r.rt}
}

// Runtime returns the runtime owning the matched nodes' tree.
func (r Result) Runtime() *runtime.Runtime {
	return r.rt
}
