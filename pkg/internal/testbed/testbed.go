// Package testbed provides sample widgets used by tests across the
// library. Not part of the public API.
package testbed

import (
	"strconv"

	"github.com/go-drift/q/pkg/core"
	"github.com/go-drift/q/pkg/style"
	"github.com/go-drift/q/pkg/widgets"
)

// Counter renders its count as text and increments on tap.
type Counter struct {
	core.StatefulBase
	Initial int
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	count int
}

func (s *counterState) InitState() {
	s.count = s.Element().Widget().(Counter).Initial
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	return widgets.Tappable{
		OnTap: func() {
			s.SetState(func() { s.count++ })
		},
		Child: widgets.Text{Content: strconv.Itoa(s.count)},
	}
}

// ListStyle is the container style List renders with.
var ListStyle = style.Style{
	Background: style.RGB(0x33, 0x66, 0x99),
	Padding:    8,
}

// List renders items as text children of a single container node.
type List struct {
	core.StatelessBase
	Items []string
}

func (l List) Build(ctx core.BuildContext) core.Widget {
	children := make([]core.Widget, 0, len(l.Items))
	for _, item := range l.Items {
		children = append(children, widgets.Text{Content: item})
	}
	return widgets.Box{
		Style:    ListStyle,
		Attrs:    map[string]string{"role": "list"},
		Children: children,
	}
}

// Label renders a single styled text node.
type Label struct {
	core.StatelessBase
	Content string
	Style   style.Style
}

func (l Label) Build(ctx core.BuildContext) core.Widget {
	return widgets.Text{Content: l.Content, Style: l.Style}
}

// Toggler swaps its subtree shape on tap: a single "off" text node
// before the first tap, a two-item box after it.
type Toggler struct {
	core.StatefulBase
}

func (t Toggler) CreateState() core.State {
	return &togglerState{}
}

type togglerState struct {
	core.StateBase
	on bool
}

func (s *togglerState) Build(ctx core.BuildContext) core.Widget {
	var child core.Widget
	if s.on {
		child = widgets.Box{Children: []core.Widget{
			widgets.Text{Content: "on1"},
			widgets.Text{Content: "on2"},
		}}
	} else {
		child = widgets.Text{Content: "off"}
	}
	return widgets.Tappable{
		OnTap: func() {
			s.SetState(func() { s.on = !s.on })
		},
		Child: child,
	}
}

// Panicker panics during build, for error-propagation tests.
type Panicker struct {
	core.StatelessBase
	Message string
}

func (p Panicker) Build(ctx core.BuildContext) core.Widget {
	panic(p.Message)
}
