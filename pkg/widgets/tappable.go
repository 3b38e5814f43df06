package widgets

import (
	"github.com/go-drift/q/pkg/core"
	"github.com/go-drift/q/pkg/dom"
)

// Tappable wraps a child widget with a tap callback. The runtime's tap
// dispatch invokes OnTap through its dispatch queue, never inline.
//
//	Tappable{
//	    OnTap: func() { handleTap() },
//	    Child: Text{Content: "+"},
//	}
type Tappable struct {
	// OnTap is invoked when the node receives a simulated tap.
	OnTap func()
	// Child is the wrapped widget.
	Child core.Widget
}

func (t Tappable) CreateElement() core.Element {
	return core.NewHostElement(t, nil)
}

func (t Tappable) Key() any {
	return nil
}

func (t Tappable) ChildWidget() core.Widget {
	return t.Child
}

func (t Tappable) CreateNode() *dom.Node {
	node := dom.New(KindTappable)
	t.UpdateNode(node)
	return node
}

func (t Tappable) UpdateNode(node *dom.Node) {
	node.OnTap = t.OnTap
}
