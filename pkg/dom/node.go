// Package dom defines the render-node tree produced by the runtime.
//
// The tree is owned by the mounting runtime: elements create nodes, update
// them in place across rebuilds, and splice children as the widget tree
// changes. Query results hold pointers into this tree and never copy or
// mutate it; the sole sanctioned mutation path is the runtime's interaction
// dispatch.
package dom

import (
	"strings"

	"github.com/go-drift/q/pkg/style"
)

// Node is a single rendered node.
type Node struct {
	// Kind names the host widget that produced the node ("text", "box", ...).
	Kind string
	// Text is the node's own text content. Leaf text nodes set this;
	// containers leave it empty and carry text in descendants.
	Text string
	// Style is the node's resolved style.
	Style style.Style
	// Attrs carries string attributes exposed to queries and matchers.
	Attrs map[string]string
	// OnTap, when non-nil, is invoked by the runtime's tap dispatch.
	OnTap func()

	parent   *Node
	children []*Node
}

// New creates a node of the given kind.
func New(kind string) *Node {
	return &Node{Kind: kind}
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's direct children in document order.
// The returned slice is a copy; mutating it does not alter the tree.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// AppendChild adds child as the last child of n.
// A child already attached elsewhere is detached first.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n. Unknown children are ignored.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// SetChildren replaces the node's children, reparenting each entry.
// Used by elements when the widget child list changes shape.
func (n *Node) SetChildren(children []*Node) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil && c.parent != n {
			c.parent.RemoveChild(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Walk performs a depth-first pre-order traversal starting at n.
// The visitor returns false to stop the traversal.
func (n *Node) Walk(visitor func(*Node) bool) {
	walk(n, visitor)
}

func walk(n *Node, visitor func(*Node) bool) bool {
	if !visitor(n) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, visitor) {
			return false
		}
	}
	return true
}

// TextContent returns the node's rendered text: its own Text followed by
// the text of all descendants in document order.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.Walk(func(node *Node) bool {
		sb.WriteString(node.Text)
		return true
	})
	return sb.String()
}

// Attr returns the named attribute. The second result is false when the
// attribute is absent.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// SetAttr sets an attribute, allocating the map on first use.
func (n *Node) SetAttr(name, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	found := false
	n.Walk(func(node *Node) bool {
		if node == other {
			found = true
			return false
		}
		return true
	})
	return found
}
