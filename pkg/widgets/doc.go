// Package widgets provides the host widgets that produce render nodes:
// Text for leaf text content, Box for styled containers, and Tappable for
// interaction targets. Widgets are value structs configured with struct
// literals; they are immutable descriptions, not live objects.
package widgets
