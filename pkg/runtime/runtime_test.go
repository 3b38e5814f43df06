package runtime

import (
	"errors"
	"testing"

	qerrors "github.com/go-drift/q/pkg/errors"
	"github.com/go-drift/q/pkg/internal/testbed"
)

func TestMountBuildsNodeTree(t *testing.T) {
	rt := NewWithT(t)
	if err := rt.Mount(testbed.Counter{Initial: 3}); err != nil {
		t.Fatal(err)
	}

	root := rt.Root()
	if root == nil {
		t.Fatal("expected a root node")
	}
	if root.Kind != "tappable" {
		t.Errorf("counter root should be the tappable node, got %q", root.Kind)
	}
	if got := root.TextContent(); got != "3" {
		t.Errorf("expected text 3, got %q", got)
	}
}

func TestMountReplacesPreviousTree(t *testing.T) {
	rt := NewWithT(t)
	if err := rt.Mount(testbed.Counter{Initial: 0}); err != nil {
		t.Fatal(err)
	}
	first := rt.Root()

	if err := rt.Mount(testbed.List{Items: []string{"A"}}); err != nil {
		t.Fatal(err)
	}
	if rt.Root() == first {
		t.Error("remount should produce a fresh root node")
	}
	if rt.Root().Kind != "box" {
		t.Errorf("expected box root after remount, got %q", rt.Root().Kind)
	}
}

func TestMountPropagatesBuildPanic(t *testing.T) {
	prev := qerrors.DefaultHandler
	collect := &qerrors.CollectHandler{}
	qerrors.SetHandler(collect)
	defer qerrors.SetHandler(prev)

	rt := NewWithT(t)
	err := rt.Mount(testbed.Panicker{Message: "boom"})
	if err == nil {
		t.Fatal("expected a build error")
	}

	var qerr *qerrors.Error
	if !errors.As(err, &qerr) || qerr.Kind != qerrors.KindBuild {
		t.Errorf("expected build-kind error, got %v", err)
	}
	var buildErr *qerrors.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("expected wrapped BuildError, got %v", err)
	}
	if buildErr.Recovered != "boom" {
		t.Errorf("panic value should propagate unmodified, got %v", buildErr.Recovered)
	}
	if len(collect.Errors()) == 0 {
		t.Error("build failure should be reported to the error handler")
	}
}

func TestTapRunsHandlerAndSettles(t *testing.T) {
	rt := NewWithT(t)
	if err := rt.Mount(testbed.Counter{Initial: 0}); err != nil {
		t.Fatal(err)
	}

	if err := rt.Tap(rt.Root()); err != nil {
		t.Fatal(err)
	}
	// Settled before return: the rebuilt text is already visible.
	if got := rt.Root().TextContent(); got != "1" {
		t.Errorf("expected 1 after tap, got %q", got)
	}
}

func TestTapBubblesToAncestorHandler(t *testing.T) {
	rt := NewWithT(t)
	if err := rt.Mount(testbed.Counter{Initial: 0}); err != nil {
		t.Fatal(err)
	}

	// Tap the inner text node; the handler lives on the tappable above it.
	label := rt.Root().Children()[0]
	if label.Kind != "text" {
		t.Fatalf("expected text child, got %q", label.Kind)
	}
	if err := rt.Tap(label); err != nil {
		t.Fatal(err)
	}
	if got := rt.Root().TextContent(); got != "1" {
		t.Errorf("expected 1 after bubbled tap, got %q", got)
	}
}

func TestTapWithoutHandlerFails(t *testing.T) {
	rt := NewWithT(t)
	if err := rt.Mount(testbed.List{Items: []string{"A"}}); err != nil {
		t.Fatal(err)
	}

	err := rt.Tap(rt.Root())
	if err == nil {
		t.Fatal("tapping an inert node should fail")
	}
	var qerr *qerrors.Error
	if !errors.As(err, &qerr) || qerr.Kind != qerrors.KindDispatch {
		t.Errorf("expected dispatch-kind error, got %v", err)
	}
}

func TestTapWithoutMountFails(t *testing.T) {
	rt := NewWithT(t)
	if err := rt.Tap(nil); err == nil {
		t.Error("tap before mount should fail")
	}
}

func TestDispatchDefersUntilFlush(t *testing.T) {
	rt := NewWithT(t)
	if err := rt.Mount(testbed.Counter{Initial: 0}); err != nil {
		t.Fatal(err)
	}

	ran := false
	rt.Dispatch(func() { ran = true })
	if ran {
		t.Fatal("dispatched work must not run inline")
	}
	if err := rt.Flush(); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("flush should drain the dispatch queue")
	}
}

func TestCleanupUnmounts(t *testing.T) {
	rt := New()
	if err := rt.Mount(testbed.Counter{Initial: 0}); err != nil {
		t.Fatal(err)
	}
	rt.Cleanup()
	if rt.Root() != nil {
		t.Error("cleanup should drop the node tree")
	}
	if rt.RootElement() != nil {
		t.Error("cleanup should drop the element tree")
	}
}

func TestRuntimeIDsAreDistinct(t *testing.T) {
	a, b := New(), New()
	if a.ID() == b.ID() {
		t.Error("each runtime should have its own instance id")
	}
}
