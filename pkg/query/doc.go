// Package query provides the jQuery-flavored matched-set wrapper for
// asserting against rendered widget trees.
//
// # Quick start
//
//	func TestCounter(t *testing.T) {
//	    res := query.RenderT(t, testbed.Counter{})
//	    if res.Text() != "0" {
//	        t.Fatalf("want 0, got %q", res.Text())
//	    }
//	    if err := res.Click(); err != nil {
//	        t.Fatal(err)
//	    }
//	    // Post-click state is fully visible; no extra synchronization.
//	    if res.Text() != "1" {
//	        t.Fatalf("want 1, got %q", res.Text())
//	    }
//	}
//
// # The matched set
//
// A [Result] wraps zero or more render nodes in document order. A result
// over a container matches only that container — never its descendants —
// until Children or Find is called explicitly:
//
//	root := query.RenderT(t, testbed.List{Items: []string{"A", "B"}})
//	items := root.Children()          // two nodes: "A", "B"
//	items.Get(-1)                     // the "B" node
//
// Every traversal returns a new Result; results are never mutated in
// place, so holding an earlier result across a Children call is safe.
// Results capture node pointers at construction. In-place updates (a
// counter label changing text) remain visible through them; if a click
// changes the tree's shape, re-query via [Result.Requery].
//
// # Entry points
//
// [Render] mounts a widget and returns a Result over its root node.
// [Q] is the same function under its jQuery-style short name; the two
// bindings behave identically. [RenderT] additionally fails the test on
// render errors and unmounts during test cleanup.
package query
