// Package core provides the widget and element framework the runtime
// mounts and the query layer inspects.
//
// Widget is an immutable description of part of the tree. Widgets are
// lightweight configuration values that can be created freely. Element is
// the instantiation of a Widget at a particular tree position; elements
// manage lifecycle and identity across rebuilds.
//
// Host widgets (those implementing [HostWidget]) produce render nodes in
// the dom package; everything above them composes. For widgets that need
// mutable state, embed [StateBase] in the state struct:
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: strconv.Itoa(s.count)}
//	}
//
// For small self-contained fragments, [Stateful] builds a widget from an
// init closure and a build closure without a named state type.
package core
