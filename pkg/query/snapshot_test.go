package query_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/q/pkg/internal/testbed"
	"github.com/go-drift/q/pkg/query"
)

func TestSnapshotGolden(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A", "B"}})

	snap := res.Snapshot()
	require.NotEmpty(t, snap.Runtime)
	// The runtime id is random per instance; blank it so the golden is stable.
	snap.Runtime = ""

	data, err := snap.Bytes()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list", data)
}

func TestSnapshotIDsAreStablePerCapture(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A", "B", "C"}})

	snap := res.Snapshot()
	require.Len(t, snap.Nodes, 1)
	root := snap.Nodes[0]
	assert.Equal(t, "box#0", root.ID)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "text#0", root.Children[0].ID)
	assert.Equal(t, "text#1", root.Children[1].ID)
	assert.Equal(t, "text#2", root.Children[2].ID)

	// A second capture starts counting from zero again.
	again := res.Snapshot()
	assert.Equal(t, "text#0", again.Nodes[0].Children[0].ID)
}

func TestSnapshotIsACapture(t *testing.T) {
	res := query.RenderT(t, testbed.Counter{Initial: 0})

	snap := res.Snapshot()
	require.NoError(t, res.Click())

	// The capture reflects the tree at snapshot time, not the live tree.
	assert.Equal(t, "0", snap.Nodes[0].Children[0].Text)
	assert.Equal(t, "1", res.Text())
}

func TestSnapshotOmitsEmptyFields(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A"}})

	snap := res.Snapshot()
	root := snap.Nodes[0]
	assert.Empty(t, root.Text)
	assert.Equal(t, map[string]string{"role": "list"}, root.Attrs)
	assert.Equal(t, "#FF336699", root.Style["background"])
	assert.Equal(t, 8.0, root.Style["padding"])
	assert.NotContains(t, root.Style, "color")

	leaf := root.Children[0]
	assert.Nil(t, leaf.Style)
	assert.Nil(t, leaf.Attrs)
	assert.Nil(t, leaf.Children)
}
