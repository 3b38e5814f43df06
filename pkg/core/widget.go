package core

import (
	"github.com/go-drift/q/pkg/dom"
)

// Widget is an immutable description of part of the tree. Widgets are
// lightweight configuration values; the framework instantiates an Element
// for each widget position and keeps it alive across rebuilds when the
// widget type and key match.
type Widget interface {
	// CreateElement instantiates the element hosting this widget.
	CreateElement() Element
	// Key returns the widget's identity key, or nil.
	Key() any
}

// StatelessWidget builds a child widget from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable companion of a StatefulWidget.
type State interface {
	// InitState is called once after the state is attached to its element.
	InitState()
	// Build returns the widget subtree for the current state.
	Build(ctx BuildContext) Widget
	// DidUpdateWidget is called when the element receives a new widget
	// configuration of the same type.
	DidUpdateWidget(oldWidget StatefulWidget)
	// Dispose releases resources when the element unmounts.
	Dispose()
}

// HostWidget produces a concrete render node. Host widgets with children
// additionally implement ChildWidget() or ChildWidgets().
type HostWidget interface {
	Widget
	// CreateNode allocates the node for a fresh mount.
	CreateNode() *dom.Node
	// UpdateNode reconfigures an existing node in place.
	UpdateNode(node *dom.Node)
}

// SingleChildWidget is implemented by host widgets wrapping one child.
type SingleChildWidget interface {
	ChildWidget() Widget
}

// MultiChildWidget is implemented by host widgets with an ordered child list.
type MultiChildWidget interface {
	ChildWidgets() []Widget
}

// BuildContext is handed to Build methods. It is the element itself.
type BuildContext interface {
	// Widget returns the widget currently configured on this position.
	Widget() Widget
	// FindAncestor walks up the element tree for the first ancestor
	// satisfying the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement(nil, nil) }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets.
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement(nil, nil) }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// HostBase provides default CreateElement and Key implementations for
// host widgets.
type HostBase struct{}

// CreateElement returns a new HostElement.
func (HostBase) CreateElement() Element { return NewHostElement(nil, nil) }

// Key returns nil (no key).
func (HostBase) Key() any { return nil }
