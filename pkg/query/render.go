package query

import (
	"github.com/go-drift/q/pkg/core"
	"github.com/go-drift/q/pkg/dom"
	"github.com/go-drift/q/pkg/runtime"
)

// Render mounts the widget on a fresh runtime and returns a Result
// matching exactly the rendered root node — not its descendants. Build
// failures from the widget propagate unmodified in the returned error.
//
// The runtime lives as long as the Result chain derived from it; there
// is no explicit teardown for plain Render (the tree is garbage once the
// Results go out of scope). Tests should prefer RenderT, which unmounts
// during cleanup.
func Render(widget core.Widget) (Result, error) {
	rt := runtime.New()
	if err := rt.Mount(widget); err != nil {
		return Result{}, err
	}
	if rt.Root() == nil {
		// Widget rendered nothing; an empty matched set, not a failure.
		return Result{rt: rt}, nil
	}
	return Result{nodes: []*dom.Node{rt.Root()}, rt: rt}, nil
}

// Q is Render under its jQuery-style short name. One function, two
// bindings; the behavior is identical by construction:
//
//	res, err := query.Q(testbed.Counter{})
var Q = Render

// TestingT is the subset of *testing.T used by RenderT.
type TestingT = runtime.TestingT

// RenderT renders the widget, failing the test on render errors and
// unmounting the tree via t.Cleanup.
func RenderT(t TestingT, widget core.Widget) Result {
	t.Helper()
	rt := runtime.NewWithT(t)
	if err := rt.Mount(widget); err != nil {
		t.Fatalf("query: render failed: %v", err)
		return Result{}
	}
	if rt.Root() == nil {
		return Result{rt: rt}
	}
	return Result{nodes: []*dom.Node{rt.Root()}, rt: rt}
}
