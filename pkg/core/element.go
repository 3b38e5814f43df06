package core

import (
	"reflect"

	"github.com/go-drift/q/pkg/dom"
)

// Element is the instantiation of a Widget at a particular tree position.
// Elements manage widget lifecycle and identity across rebuilds.
type Element interface {
	// Widget returns the widget currently configured on this element.
	Widget() Widget
	// Depth returns the element's depth from the root.
	Depth() int
	// Mount attaches the element under parent and builds its subtree.
	Mount(parent Element, slot any)
	// Update reconfigures the element with a new widget of the same type.
	Update(newWidget Widget)
	// Unmount tears down the element and its subtree.
	Unmount()
	// RebuildIfNeeded rebuilds the element if it was marked dirty.
	RebuildIfNeeded()
	// MarkNeedsBuild schedules the element for rebuild.
	MarkNeedsBuild()
	// VisitChildren calls visitor for each child element in order.
	// The visitor returns false to stop iteration.
	VisitChildren(visitor func(Element) bool)
	// Node returns the render node produced by this element's nearest
	// host descendant, or nil if the subtree renders nothing.
	Node() *dom.Node
	// FindAncestor walks up for the first ancestor satisfying predicate.
	FindAncestor(predicate func(Element) bool) Element
}

type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	mounted    bool
	hostParent *HostElement // nearest ancestor that owns a render node
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setWidget(widget Widget) {
	e.widget = widget
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) isMounted() bool {
	return e.mounted
}

// findHostParent walks up the element tree to find the nearest HostElement.
func (e *elementBase) findHostParent() *HostElement {
	current := e.parent
	for current != nil {
		if host, ok := current.(*HostElement); ok {
			return host
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

func (e *elementBase) findAncestorFrom(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
	child Element
}

func NewStatelessElement(widget StatelessWidget, owner *BuildOwner) *StatelessElement {
	element := &StatelessElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.hostParent = e.findHostParent()
	e.mounted = true
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(StatelessWidget)
	built := widget.Build(e)
	e.child = updateChild(e.child, built, e, e.buildOwner)
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// Node returns the render node from the first host descendant.
func (e *StatelessElement) Node() *dom.Node {
	if e.child == nil {
		return nil
	}
	return e.child.Node()
}

func (e *StatelessElement) FindAncestor(predicate func(Element) bool) Element {
	return e.findAncestorFrom(predicate)
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

func NewStatefulElement(widget StatefulWidget, owner *BuildOwner) *StatefulElement {
	element := &StatefulElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

// State returns the element's state object.
func (e *StatefulElement) State() State {
	return e.state
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.hostParent = e.findHostParent()
	e.mounted = true
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.MarkNeedsBuild()
}

func (e *StatefulElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	built := e.state.Build(e)
	e.child = updateChild(e.child, built, e, e.buildOwner)
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// Node returns the render node from the first host descendant.
func (e *StatefulElement) Node() *dom.Node {
	if e.child == nil {
		return nil
	}
	return e.child.Node()
}

func (e *StatefulElement) FindAncestor(predicate func(Element) bool) Element {
	return e.findAncestorFrom(predicate)
}

// HostElement hosts a HostWidget and its render node.
type HostElement struct {
	elementBase
	node     *dom.Node
	children []Element
}

func NewHostElement(widget HostWidget, owner *BuildOwner) *HostElement {
	element := &HostElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

func (e *HostElement) Mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true

	widget := e.widget.(HostWidget)
	e.node = widget.CreateNode()

	// Attach to the node tree before building children, so descendants
	// find their host parent during their own Mount.
	e.attachNode()

	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *HostElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *HostElement) Unmount() {
	e.mounted = false

	// Unmount children first; they detach their own nodes.
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil

	e.detachNode()
}

func (e *HostElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	widget := e.widget.(HostWidget)
	widget.UpdateNode(e.node)

	switch typed := e.widget.(type) {
	case SingleChildWidget:
		childWidget := typed.ChildWidget()
		var child Element
		if len(e.children) > 0 {
			child = e.children[0]
		}
		child = updateChild(child, childWidget, e, e.buildOwner)
		if child != nil {
			e.children = []Element{child}
		} else {
			e.children = nil
		}
		e.rebuildChildNodeList()

	case MultiChildWidget:
		childWidgets := typed.ChildWidgets()
		updated := make([]Element, 0, len(childWidgets))
		for index, childWidget := range childWidgets {
			var existing Element
			if index < len(e.children) {
				existing = e.children[index]
			}
			child := updateChild(existing, childWidget, e, e.buildOwner)
			if child != nil {
				updated = append(updated, child)
			}
		}
		for i := len(childWidgets); i < len(e.children); i++ {
			e.children[i].Unmount()
		}
		e.children = updated
		// Rebuild the node child list now that e.children is fully
		// populated; insertion during child mounts cannot know the
		// final order.
		e.rebuildChildNodeList()
	}
}

func (e *HostElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// Node exposes the render node owned by this element.
func (e *HostElement) Node() *dom.Node {
	return e.node
}

func (e *HostElement) FindAncestor(predicate func(Element) bool) Element {
	return e.findAncestorFrom(predicate)
}

// attachNode inserts this element's node under the nearest host ancestor.
func (e *HostElement) attachNode() {
	e.hostParent = e.findHostParent()
	if e.hostParent != nil && e.hostParent.node != nil {
		e.hostParent.node.AppendChild(e.node)
	}
}

// detachNode removes this element's node from its parent node.
func (e *HostElement) detachNode() {
	if e.hostParent != nil && e.hostParent.node != nil {
		e.hostParent.node.RemoveChild(e.node)
		e.hostParent = nil
	}
}

// rebuildChildNodeList re-derives the node's children from element order.
// Intermediate stateless/stateful elements contribute the node of their
// first host descendant.
func (e *HostElement) rebuildChildNodeList() {
	nodes := make([]*dom.Node, 0, len(e.children))
	for _, child := range e.children {
		if n := child.Node(); n != nil {
			nodes = append(nodes, n)
		}
	}
	e.node.SetChildren(nodes)
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, nil)
	return element
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}

// MountRoot inflates widget as the tree root and mounts it.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element == nil {
		return nil
	}
	element.Mount(nil, nil)
	return element
}
