package query

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-drift/q/pkg/dom"
	"github.com/go-drift/q/pkg/style"
)

// Snapshot is a JSON-serializable capture of a matched set and the
// subtrees under it. Used for golden-file tests and JSONPath selection.
type Snapshot struct {
	// Runtime identifies the owning runtime instance.
	Runtime string `json:"runtime,omitempty"`
	// Nodes are the matched nodes' serialized subtrees in document order.
	Nodes []*SnapshotNode `json:"nodes"`
}

// SnapshotNode is a serialized render node.
type SnapshotNode struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Style    map[string]any    `json:"style,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*SnapshotNode   `json:"children,omitempty"`
}

// Snapshot captures the current state of the matched nodes and their
// subtrees. IDs are stable per capture ("text#0", "text#1", ...) so
// goldens do not churn across runs.
func (r Result) Snapshot() *Snapshot {
	snap := &Snapshot{}
	if r.rt != nil {
		snap.Runtime = r.rt.ID().String()
	}
	counter := &kindCounter{}
	for _, n := range r.nodes {
		snap.Nodes = append(snap.Nodes, captureNode(n, counter))
	}
	return snap
}

// Bytes renders the snapshot as two-space-indented JSON with a trailing
// newline, the layout golden files are stored in.
func (s *Snapshot) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// kindCounter assigns stable IDs like "box#0", "text#1".
type kindCounter struct {
	counts map[string]int
}

func (c *kindCounter) next(kind string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[kind]
	c.counts[kind] = n + 1
	return fmt.Sprintf("%s#%d", kind, n)
}

func captureNode(n *dom.Node, counter *kindCounter) *SnapshotNode {
	node := &SnapshotNode{
		ID:   counter.next(n.Kind),
		Kind: n.Kind,
		Text: n.Text,
	}
	if props := captureStyle(n.Style); len(props) > 0 {
		node.Style = props
	}
	if len(n.Attrs) > 0 {
		node.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			node.Attrs[k] = v
		}
	}
	for _, c := range n.Children() {
		node.Children = append(node.Children, captureNode(c, counter))
	}
	return node
}

// captureStyle serializes only the properties the style carries, so
// unstyled nodes stay compact in goldens.
func captureStyle(s style.Style) map[string]any {
	if s.IsZero() {
		return nil
	}
	props := make(map[string]any)
	if s.Color != 0 {
		props["color"] = s.Color.String()
	}
	if s.Background != 0 {
		props["background"] = s.Background.String()
	}
	if s.FontSize != 0 {
		props["fontSize"] = s.FontSize
	}
	if s.FontWeight != "" {
		props["fontWeight"] = string(s.FontWeight)
	}
	if s.Padding != 0 {
		props["padding"] = s.Padding
	}
	return props
}
