package widgets

import (
	"github.com/go-drift/q/pkg/core"
	"github.com/go-drift/q/pkg/dom"
	"github.com/go-drift/q/pkg/style"
)

// Box is a styled container with an ordered child list.
//
//	Box{
//	    Style:    style.Style{Background: style.ColorWhite, Padding: 8},
//	    Children: []core.Widget{Text{Content: "A"}, Text{Content: "B"}},
//	}
type Box struct {
	// Style is the container's resolved style.
	Style style.Style
	// Attrs are string attributes exposed to queries and matchers.
	Attrs map[string]string
	// ChildKey is the widget identity key used for reconciliation.
	ChildKey any
	// Children is the ordered child list.
	Children []core.Widget
}

func (b Box) CreateElement() core.Element {
	return core.NewHostElement(b, nil)
}

func (b Box) Key() any {
	return b.ChildKey
}

func (b Box) ChildWidgets() []core.Widget {
	return b.Children
}

func (b Box) CreateNode() *dom.Node {
	node := dom.New(KindBox)
	b.UpdateNode(node)
	return node
}

func (b Box) UpdateNode(node *dom.Node) {
	node.Style = b.Style
	node.Attrs = nil
	for name, value := range b.Attrs {
		node.SetAttr(name, value)
	}
}
