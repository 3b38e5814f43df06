package widgets

import (
	"github.com/go-drift/q/pkg/core"
	"github.com/go-drift/q/pkg/dom"
	"github.com/go-drift/q/pkg/style"
)

// Node kinds produced by the widgets in this package.
const (
	KindText     = "text"
	KindBox      = "box"
	KindTappable = "tappable"
)

// Text displays a string with a single style. It renders to a leaf node
// whose Text field carries the content.
//
//	Text{Content: "Hello"}
//	Text{Content: "Hello", Style: sheet.MustResolve("title")}
type Text struct {
	// Content is the text string to display.
	Content string
	// Style controls color, font size, and weight.
	Style style.Style
}

func (t Text) CreateElement() core.Element {
	return core.NewHostElement(t, nil)
}

func (t Text) Key() any {
	return nil
}

func (t Text) CreateNode() *dom.Node {
	node := dom.New(KindText)
	t.UpdateNode(node)
	return node
}

func (t Text) UpdateNode(node *dom.Node) {
	node.Text = t.Content
	node.Style = t.Style
}
