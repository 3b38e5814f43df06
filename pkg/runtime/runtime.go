// Package runtime mounts widget trees headlessly and owns the dispatch
// queue that sequences state updates. It is the rendering collaborator of
// the query layer: queries read the node tree, and the runtime's tap
// dispatch is the only sanctioned way to mutate it.
package runtime

import (
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/go-drift/q/pkg/core"
	"github.com/go-drift/q/pkg/dom"
	"github.com/go-drift/q/pkg/errors"
)

// maxSettleFlushes bounds Settle. Each flush drains the dispatch queue and
// rebuilds everything dirty, so a healthy tree settles in a handful.
const maxSettleFlushes = 100

// ErrSettleTimeout is returned when Settle exceeds its flush budget,
// which indicates a rebuild loop (a build scheduling itself forever).
var ErrSettleTimeout = stderrors.New("runtime: tree did not settle")

// TestingT is the subset of *testing.T used by NewWithT.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// Runtime owns a mounted widget tree and its render nodes.
//
// A Runtime is single-goroutine: all mounting, flushing, and tapping must
// happen from the same goroutine, cooperative-scheduling style. Dispatch
// is the seam for feeding work in from elsewhere.
type Runtime struct {
	id         uuid.UUID
	buildOwner *core.BuildOwner
	root       core.Element
	rootNode   *dom.Node
	dispatches []func()
}

// New creates an empty runtime. Call Cleanup when done, or use NewWithT.
func New() *Runtime {
	return &Runtime{
		id:         uuid.New(),
		buildOwner: core.NewBuildOwner(),
	}
}

// NewWithT creates a runtime that unmounts automatically via t.Cleanup.
// This is the recommended constructor for tests.
func NewWithT(t TestingT) *Runtime {
	r := New()
	t.Cleanup(r.Cleanup)
	return r
}

// ID returns the runtime's instance identity, used in diagnostics and
// snapshot metadata to tell concurrent test runtimes apart.
func (r *Runtime) ID() uuid.UUID {
	return r.id
}

// Cleanup unmounts the current tree, releasing element state.
func (r *Runtime) Cleanup() {
	if r.root != nil {
		r.root.Unmount()
		r.root = nil
		r.rootNode = nil
	}
	r.dispatches = nil
}

// Mount mounts (or remounts) a widget and flushes until settled.
// A panic raised by a widget build propagates to the caller as a
// build-kind error carrying the panic value.
func (r *Runtime) Mount(widget core.Widget) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			buildErr := &errors.BuildError{
				Widget:     fmt.Sprintf("%T", widget),
				Recovered:  rec,
				StackTrace: errors.CaptureStack(),
			}
			errors.ReportBuildError(buildErr)
			err = &errors.Error{Op: "runtime.Mount", Kind: errors.KindBuild, Err: buildErr}
		}
	}()

	if r.root != nil {
		r.root.Unmount()
		r.root = nil
		r.rootNode = nil
	}

	r.root = core.MountRoot(widget, r.buildOwner)
	if r.root != nil {
		r.rootNode = r.root.Node()
	}
	return r.Settle()
}

// Root returns the root render node of the mounted tree, or nil.
func (r *Runtime) Root() *dom.Node {
	return r.rootNode
}

// RootElement returns the root element of the mounted tree, or nil.
func (r *Runtime) RootElement() core.Element {
	return r.root
}

// Dispatch queues a callback for the next flush. Handlers fed through
// Dispatch never run inline with a traversal in progress.
func (r *Runtime) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	r.dispatches = append(r.dispatches, fn)
}

// Flush runs a single cycle: drains the dispatch queue, then rebuilds all
// dirty elements. Panics raised by dispatched handlers or rebuilds
// propagate as dispatch-kind errors.
func (r *Runtime) Flush() (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			panicErr := &errors.PanicError{
				Op:         "runtime.Flush",
				Value:      rec,
				StackTrace: errors.CaptureStack(),
			}
			errors.ReportPanic(panicErr)
			err = &errors.Error{Op: "runtime.Flush", Kind: errors.KindDispatch, Err: panicErr}
		}
	}()

	dispatches := r.dispatches
	r.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	r.buildOwner.FlushBuild()
	return nil
}

// Settle flushes until no work remains. All state updates queued before
// Settle returns are fully applied and visible in the node tree; this
// ordering guarantee is what lets callers assert immediately after an
// interaction.
func (r *Runtime) Settle() error {
	for i := 0; i < maxSettleFlushes; i++ {
		if err := r.Flush(); err != nil {
			return err
		}
		if !r.needsWork() {
			return nil
		}
	}
	return &errors.Error{Op: "runtime.Settle", Kind: errors.KindSettle, Err: ErrSettleTimeout}
}

func (r *Runtime) needsWork() bool {
	return r.buildOwner.NeedsWork() || len(r.dispatches) > 0
}

// Tap simulates a tap on node. The handler is resolved by walking from
// node up the tree to the nearest ancestor with an OnTap callback (taps
// bubble, so tapping a label inside a Tappable hits the Tappable). The
// handler runs from the dispatch queue and Tap returns only after the
// tree has settled, so the caller observes post-tap state directly.
//
// A node with no tap handler anywhere above it is an error: the test
// tapped something inert, which is almost always a test bug.
func (r *Runtime) Tap(node *dom.Node) error {
	if r.root == nil {
		return &errors.Error{
			Op:   "runtime.Tap",
			Kind: errors.KindDispatch,
			Err:  stderrors.New("no widget mounted"),
		}
	}

	handler := resolveTapHandler(node)
	if handler == nil {
		return &errors.Error{
			Op:   "runtime.Tap",
			Kind: errors.KindDispatch,
			Err:  fmt.Errorf("no tap handler on %q or its ancestors", node.Kind),
		}
	}

	r.Dispatch(handler)
	return r.Settle()
}

// resolveTapHandler walks from node to the root looking for a handler.
func resolveTapHandler(node *dom.Node) func() {
	for cur := node; cur != nil; cur = cur.Parent() {
		if cur.OnTap != nil {
			return cur.OnTap
		}
	}
	return nil
}
